package wallet_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/wallet"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	require.Equal(t, "₹1234.50", wallet.FormatCurrency(1234.5))
	require.Equal(t, "₹0.00", wallet.FormatCurrency(0))
	require.Equal(t, "₹10.01", wallet.FormatCurrency(10.005+0.000001))
}

func TestFormatSignedAmount(t *testing.T) {
	require.Equal(t, "-₹50.00", wallet.FormatSignedAmount(apiclient.DirectionSent, 50))
	require.Equal(t, "+₹50.00", wallet.FormatSignedAmount(apiclient.DirectionReceived, 50))
	require.Equal(t, "↑", wallet.DirectionIcon(apiclient.DirectionSent))
	require.Equal(t, "↓", wallet.DirectionIcon(apiclient.DirectionReceived))
	require.Equal(t, "sent", wallet.DirectionClass(apiclient.DirectionSent))
	require.Equal(t, "received", wallet.DirectionClass(apiclient.DirectionReceived))
}

func TestFormatDateAndTime(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	require.Equal(t, "1/5/2024", wallet.FormatDate("2024-01-05T14:03:09.123456", loc))
	require.Equal(t, "2:03:09 PM", wallet.FormatTime("2024-01-05T14:03:09.123456", loc))
	require.Equal(t, "12:00:00 AM", wallet.FormatTime("2024-01-05T00:00:00", loc))

	// zoned values are converted into the display location
	require.Equal(t, "1/6/2024", wallet.FormatDate("2024-01-05T20:00:00Z", loc))
	require.Equal(t, "1:30:00 AM", wallet.FormatTime("2024-01-05T20:00:00Z", loc))

	require.Equal(t, wallet.InvalidDate, wallet.FormatDate("yesterday", loc))
}

func TestFilterPhone(t *testing.T) {
	require.Equal(t, "1234567890", wallet.FilterPhone("12a3-456!7890999"))
	require.Equal(t, "98765", wallet.FilterPhone("+98 765"))
	require.Equal(t, "", wallet.FilterPhone("abc"))
	require.Equal(t, "2", wallet.FilterPhone("１2"))
}

func TestParseAmount(t *testing.T) {
	f, err := wallet.ParseAmount(" 250.75 ")
	require.NoError(t, err)
	require.InDelta(t, 250.75, f, 1e-9)

	for _, in := range []string{"", "abc", "NaN", "Inf", "-5", "0"} {
		_, err := wallet.ParseAmount(in)
		require.ErrorIs(t, err, werrors.ErrInvalidAmount, in)
	}
}

func TestMinorUnits(t *testing.T) {
	require.Equal(t, int64(50000), wallet.MinorUnits(500))
	require.Equal(t, int64(1999), wallet.MinorUnits(19.99))
	require.Equal(t, int64(29), wallet.MinorUnits(0.29))
}

func TestPlainText(t *testing.T) {
	require.Equal(t, "Dinner & drinks", wallet.PlainText("<b>Dinner</b> &amp; drinks"))
	require.Equal(t, "hi", wallet.PlainText(`<script>alert(1)</script>hi`))
}
