// Package controllers implements the wallet's page actions. Each controller validates its input,
// makes at most one backend call and reports the outcome to a ui.Page: notifications, the
// loading state of the submit control and the follow-up navigation.
package controllers

import (
	"time"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	"github.com/jrsteele09/go-wallet-web/checkout"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/ui"
)

const (
	// AuthRedirectDelay leaves the login/registration notification on screen briefly
	AuthRedirectDelay = 1 * time.Second
	// ActionRedirectDelay is used after transfers, payments and password changes
	ActionRedirectDelay = 2 * time.Second
)

// Notification texts
const (
	MsgLoginSuccess       = "Login successful!"
	MsgLoginFailed        = "Login failed. Please check your credentials."
	MsgRegisterSuccess    = "Registration successful!"
	MsgRegisterFailed     = "Registration failed"
	MsgPasswordMismatch   = "Passwords do not match"
	MsgBalanceFailed      = "Failed to load balance"
	MsgHistoryFailed      = "Failed to load transactions"
	MsgTransactionFailed  = "Failed to load transaction"
	MsgReceiptFailed      = "Failed to download receipt"
	MsgTransferFailed     = "Transfer failed"
	MsgInvalidAmount      = "Enter a valid amount"
	MsgInvalidPhone       = "Enter a valid 10 digit phone number"
	MsgOrderFailed        = "Failed to create payment order"
	MsgPaymentSuccess     = "Payment successful! Your wallet will be credited shortly."
	MsgPaymentFailed      = "Payment failed. Please try again."
	MsgProfileFailed      = "Failed to load profile"
	MsgChangePassFailed   = "Failed to change password"
	MsgForgotPassFailed   = "Failed to request password reset"
	MsgResetPassFailed    = "Failed to reset password"
	MsgResetTokenRequired = "Reset link is missing or invalid"
)

// CheckoutSettings are the merchant details shown in the hosted checkout
type CheckoutSettings struct {
	Name        string
	Description string
	Currency    string
	ThemeColor  string
}

type Controllers struct {
	api      *apiclient.Client
	widget   checkout.Widget
	checkout CheckoutSettings
	location *time.Location
}

// New creates the controllers. loc is the display location for dates; nil means time.Local.
func New(api *apiclient.Client, widget checkout.Widget, settings CheckoutSettings, loc *time.Location) *Controllers {
	if loc == nil {
		loc = time.Local
	}
	return &Controllers{
		api:      api,
		widget:   widget,
		checkout: settings,
		location: loc,
	}
}

// client returns the API client authenticated as the session's user
func (c *Controllers) client(store *sessions.Store) *apiclient.Client {
	return c.api.WithTokens(store)
}

// failAction reports a failed form submission and restores its control
func failAction(page ui.Page, err error, fallback string) error {
	page.Show(apiclient.UserMessage(err, fallback), notify.KindError)
	page.SetLoading(false)
	return err
}
