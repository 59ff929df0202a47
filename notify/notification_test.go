package notify_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/stretchr/testify/require"
)

func TestSurface_ShowStacksNewestFirst(t *testing.T) {
	s := notify.NewSurface()
	s.Show("first", notify.KindSuccess)
	s.Show("second", notify.KindError)
	s.Show("second", notify.KindError)

	items := s.Items()
	require.Len(t, items, 3)
	require.Equal(t, "second", items[0].Message)
	require.Equal(t, "first", items[2].Message)
	require.Equal(t, "alert alert-error", items[0].CSSClass())
	require.Equal(t, int64(5000), items[0].DismissAfterMillis())
}

func TestSurface_DefaultKindIsSuccess(t *testing.T) {
	s := notify.NewSurface()
	s.Show("done", "")
	require.Equal(t, notify.KindSuccess, s.Items()[0].Kind)
}

func TestSurface_ActiveDropsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := notify.NewSurfaceWithClock(func() time.Time { return now })

	s.Show("old", notify.KindSuccess)
	now = now.Add(4 * time.Second)
	s.Show("new", notify.KindSuccess)
	require.Len(t, s.Active(), 2)

	now = now.Add(1 * time.Second)
	active := s.Active()
	require.Len(t, active, 1)
	require.Equal(t, "new", active[0].Message)
}
