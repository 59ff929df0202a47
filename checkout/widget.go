// Package checkout integrates the payment gateway's hosted checkout. The widget itself runs in the
// browser; the server hands it the order options and receives its success and failure events back.
package checkout

import (
	"github.com/jrsteele09/go-wallet-web/ui"
)

// MountName is the page component the checkout options are mounted under
const MountName = "checkout"

type Prefill struct {
	Email string `json:"email,omitempty"`
}

type Theme struct {
	Color string `json:"color,omitempty"`
}

// Options configure one checkout. Amount is in minor units (paise).
type Options struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
	Theme       Theme   `json:"theme"`

	// Owner is the session allowed to report the outcome. It never reaches the browser.
	Owner string `json:"-"`
}

// Payment is the gateway's success payload
type Payment struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// Failure is the error payload of the gateway's payment.failed event
type Failure struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// SuccessHandler runs once the payment completes. page is the page of the callback request.
type SuccessHandler func(page ui.Page, payment Payment)

// FailureHandler runs each time the gateway reports a failed attempt
type FailureHandler func(page ui.Page, failure Failure)

// Widget is the hosted checkout capability. Open returns once the checkout is presented; the
// outcome arrives later through the handlers.
type Widget interface {
	Open(page ui.Page, opts Options, onSuccess SuccessHandler, onFailure FailureHandler) error
}
