// Package wallet turns backend responses into display values: currency, direction markers,
// dates, the paged history view and the input filters shared by the web and CLI front ends.
package wallet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
)

const (
	CurrencySymbol = "₹"
	// PhoneDigits is the length of a domestic mobile number
	PhoneDigits = 10

	dateLayout = "1/2/2006"
	timeLayout = "3:04:05 PM"
	// InvalidDate is shown for timestamps that cannot be parsed
	InvalidDate = "Invalid Date"
)

// FormatCurrency renders an amount as ₹ with two decimals, e.g. 1234.5 -> ₹1234.50
func FormatCurrency(amount float64) string {
	return CurrencySymbol + strconv.FormatFloat(amount, 'f', 2, 64)
}

// DirectionIcon is the arrow drawn next to a transaction
func DirectionIcon(d apiclient.Direction) string {
	if d == apiclient.DirectionSent {
		return "↑"
	}
	return "↓"
}

func DirectionSign(d apiclient.Direction) string {
	if d == apiclient.DirectionSent {
		return "-"
	}
	return "+"
}

// DirectionClass is the CSS class of the icon and amount
func DirectionClass(d apiclient.Direction) string {
	return strings.ToLower(string(d))
}

// FormatSignedAmount renders SENT 50 as -₹50.00 and RECEIVED 50 as +₹50.00
func FormatSignedAmount(d apiclient.Direction, amount float64) string {
	return DirectionSign(d) + FormatCurrency(amount)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp reads the backend's ISO-8601 timestamps. Values without a zone offset are
// taken to be in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("[ParseTimestamp] unrecognised timestamp %q", s)
}

// FormatDate renders M/D/YYYY in loc
func FormatDate(s string, loc *time.Location) string {
	t, err := ParseTimestamp(s, loc)
	if err != nil {
		return InvalidDate
	}
	return t.Format(dateLayout)
}

// FormatTime renders h:mm:ss AM/PM in loc
func FormatTime(s string, loc *time.Location) string {
	t, err := ParseTimestamp(s, loc)
	if err != nil {
		return InvalidDate
	}
	return t.Format(timeLayout)
}

// FilterPhone keeps digits only and truncates to PhoneDigits
func FilterPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() >= PhoneDigits {
			break
		}
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount reads a user-entered amount. Anything that is not a finite positive number
// is rejected.
func ParseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, werrors.Wrapf(werrors.ErrInvalidAmount, "[ParseAmount] %q", s)
	}
	return f, nil
}

// MinorUnits converts an amount to the smallest currency unit (paise)
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
