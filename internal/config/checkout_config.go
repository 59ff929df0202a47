package config

import "time"

type CheckoutConfig interface {
	GetCheckoutName() string
	GetCheckoutDescription() string
	GetCheckoutCurrency() string
	GetCheckoutThemeColor() string
	GetCheckoutScriptURL() string
	GetCheckoutPendingTTL() time.Duration
}

type Checkout struct{}

var _ CheckoutConfig = Checkout{}

func (Checkout) GetCheckoutName() string {
	return GetEnv("CHECKOUT_NAME", "PayFlow Wallet")
}

func (Checkout) GetCheckoutDescription() string {
	return GetEnv("CHECKOUT_DESCRIPTION", "Add money to wallet")
}

func (Checkout) GetCheckoutCurrency() string {
	return GetEnv("CHECKOUT_CURRENCY", "INR")
}

func (Checkout) GetCheckoutThemeColor() string {
	return GetEnv("CHECKOUT_THEME_COLOR", "#e91e63")
}

func (Checkout) GetCheckoutScriptURL() string {
	return GetEnv("CHECKOUT_SCRIPT_URL", "https://checkout.razorpay.com/v1/checkout.js")
}

// GetCheckoutPendingTTL bounds how long an opened checkout waits for its browser callback
func (Checkout) GetCheckoutPendingTTL() time.Duration {
	return GetEnvDuration("CHECKOUT_PENDING_TTL", 30*time.Minute)
}
