package ui_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := ui.NewRecorder()

	_, navigated := r.Navigation()
	require.False(t, navigated)

	r.SetLoading(true)
	r.Show("Login successful!", notify.KindSuccess)
	r.Navigate(ui.PathDashboard, time.Second)
	r.Mount("checkout", map[string]string{"order_id": "order_1"})

	nav, navigated := r.Navigation()
	require.True(t, navigated)
	require.Equal(t, ui.PathDashboard, nav.Path)
	require.False(t, nav.Immediate())
	require.True(t, r.Loading())
	require.Equal(t, []bool{true}, r.LoadingHistory())
	require.Equal(t, "Login successful!", r.Items()[0].Message)

	data, ok := r.Mounted("checkout")
	require.True(t, ok)
	require.Equal(t, "order_1", data.(map[string]string)["order_id"])

	r.Navigate(ui.PathEntry, 0)
	nav, _ = r.Navigation()
	require.Equal(t, ui.PathEntry, nav.Path)
	require.True(t, nav.Immediate())
}
