package controllers

import (
	"context"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	"github.com/jrsteele09/go-wallet-web/checkout"
	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/jrsteele09/go-wallet-web/wallet"
	"github.com/rs/zerolog/log"
)

type AddMoneyForm struct {
	Amount string
}

// AddMoney creates a payment order and opens the hosted checkout for it. The submit control is
// re-enabled as soon as the checkout is open; the outcome arrives through the widget handlers.
func (c *Controllers) AddMoney(ctx context.Context, page ui.Page, store *sessions.Store, form AddMoneyForm) error {
	if !store.RequireAuth(page) {
		return werrors.ErrNotAuthenticated
	}
	amount, err := wallet.ParseAmount(form.Amount)
	if err != nil {
		page.Show(MsgInvalidAmount, notify.KindError)
		return err
	}

	page.SetLoading(true)

	order, err := c.client(store).CreateOrder(ctx, apiclient.CreateOrderRequest{Amount: amount})
	if err != nil {
		return failAction(page, err, MsgOrderFailed)
	}

	opts := checkout.Options{
		Key:         order.KeyID,
		Amount:      wallet.MinorUnits(amount),
		Currency:    c.checkout.Currency,
		Name:        c.checkout.Name,
		Description: c.checkout.Description,
		OrderID:     order.OrderID,
		Theme:       checkout.Theme{Color: c.checkout.ThemeColor},
		Owner:       store.Owner(),
	}
	if profile, ok := store.GetUserProfile(); ok {
		opts.Prefill.Email = profile.Email
	}

	if err := c.widget.Open(page, opts, paymentSucceeded, paymentFailed); err != nil {
		log.Err(err).Str("order_id", order.OrderID).Msg("Failed to open checkout")
		return failAction(page, err, MsgOrderFailed)
	}
	page.SetLoading(false)
	return nil
}

func paymentSucceeded(page ui.Page, _ checkout.Payment) {
	page.Show(MsgPaymentSuccess, notify.KindSuccess)
	page.Navigate(ui.PathDashboard, ActionRedirectDelay)
}

func paymentFailed(page ui.Page, _ checkout.Failure) {
	page.Show(MsgPaymentFailed, notify.KindError)
	page.SetLoading(false)
}
