// Package notify holds the transient, auto-dismissing messages shown at the top of a page.
package notify

import (
	"time"
)

// DismissAfter is how long a notification stays visible.
const DismissAfter = 5 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// CSSClass is the class list of the rendered alert element
func (n Notification) CSSClass() string {
	return "alert alert-" + string(n.Kind)
}

// DismissAfterMillis feeds the data-dismiss-after attribute read by app.js
func (n Notification) DismissAfterMillis() int64 {
	return DismissAfter.Milliseconds()
}

func (n Notification) ExpiredAt(now time.Time) bool {
	return !now.Before(n.CreatedAt.Add(DismissAfter))
}

// Surface stacks notifications newest first. It is not safe for concurrent use;
// each page render owns its own Surface.
type Surface struct {
	items []Notification
	now   func() time.Time
}

func NewSurface() *Surface {
	return &Surface{now: time.Now}
}

// NewSurfaceWithClock is used by tests that need to control expiry
func NewSurfaceWithClock(now func() time.Time) *Surface {
	return &Surface{now: now}
}

// Show inserts the message at the top of the surface. No queueing or de-duplication.
func (s *Surface) Show(message string, kind Kind) {
	if kind == "" {
		kind = KindSuccess
	}
	n := Notification{Message: message, Kind: kind, CreatedAt: s.now()}
	s.items = append([]Notification{n}, s.items...)
}

// Items returns every notification, newest first
func (s *Surface) Items() []Notification {
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Active drops notifications that have passed their dismiss delay
func (s *Surface) Active() []Notification {
	now := s.now()
	var out []Notification
	for _, n := range s.items {
		if !n.ExpiredAt(now) {
			out = append(out, n)
		}
	}
	return out
}
