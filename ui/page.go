// Package ui describes the page surface that controllers drive, independently of how it is rendered.
package ui

import (
	"time"

	"github.com/jrsteele09/go-wallet-web/notify"
)

// Navigation targets shared by controllers and the HTTP routes that serve them
const (
	PathEntry         = "/"
	PathDashboard     = "/dashboard"
	PathProfile       = "/profile"
	PathResetPassword = "/reset-password"
)

// Navigator moves the user to another page, optionally after a delay so a notification can be read first
type Navigator interface {
	Navigate(path string, after time.Duration)
}

// Page is everything a controller may do to the screen it was invoked from
type Page interface {
	Navigator
	Show(message string, kind notify.Kind)
	// SetLoading toggles the submit control between its disabled "loading" state and its interactive state
	SetLoading(loading bool)
	// Mount attaches a named component (e.g. the checkout widget options) to the page
	Mount(name string, data any)
}

type Navigation struct {
	Path  string
	After time.Duration
}

// Immediate reports whether the navigation should happen without rendering the page first
func (n Navigation) Immediate() bool {
	return n.After <= 0
}
