package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/jrsteele09/go-wallet-web/wallet"
)

// DashboardView is the signed-in landing page. Balance is empty when it could not be loaded.
type DashboardView struct {
	UserName     string
	Balance      string
	TokenExpires time.Time
}

func (c *Controllers) Dashboard(ctx context.Context, page ui.Page, store *sessions.Store) (*DashboardView, error) {
	if !store.RequireAuth(page) {
		return nil, werrors.ErrNotAuthenticated
	}

	view := &DashboardView{}
	if profile, ok := store.GetUserProfile(); ok {
		view.UserName = profile.Name
	}
	if exp, ok := store.TokenExpiry(); ok {
		view.TokenExpires = exp.In(c.location)
	}

	balance, err := c.client(store).Balance(ctx)
	if err != nil {
		page.Show(MsgBalanceFailed, notify.KindError)
		return view, err
	}
	view.Balance = wallet.FormatCurrency(balance.Balance.Float64())
	return view, nil
}

// TransactionHistory loads one zero-based page of history
func (c *Controllers) TransactionHistory(ctx context.Context, page ui.Page, store *sessions.Store, pageNum int) (*wallet.HistoryView, error) {
	if !store.RequireAuth(page) {
		return nil, werrors.ErrNotAuthenticated
	}
	if pageNum < 0 {
		pageNum = 0
	}

	resp, err := c.client(store).Transactions(ctx, pageNum, wallet.PageSize)
	if err != nil {
		page.Show(MsgHistoryFailed, notify.KindError)
		return nil, err
	}
	view := wallet.BuildHistory(pageNum, resp, c.location)
	return &view, nil
}

func (c *Controllers) TransactionDetail(ctx context.Context, page ui.Page, store *sessions.Store, txnRef string) (*wallet.TransactionView, error) {
	if !store.RequireAuth(page) {
		return nil, werrors.ErrNotAuthenticated
	}

	txn, err := c.client(store).Transaction(ctx, txnRef)
	if err != nil {
		page.Show(MsgTransactionFailed, notify.KindError)
		return nil, err
	}
	view := wallet.NewTransactionView(*txn, c.location)
	return &view, nil
}

// Receipt is a downloadable PDF
type Receipt struct {
	Filename string
	apiclient.Document
}

func (c *Controllers) Receipt(ctx context.Context, page ui.Page, store *sessions.Store, txnRef string) (*Receipt, error) {
	if !store.RequireAuth(page) {
		return nil, werrors.ErrNotAuthenticated
	}

	doc, err := c.client(store).Receipt(ctx, txnRef)
	if err != nil {
		page.Show(MsgReceiptFailed, notify.KindError)
		return nil, err
	}
	return &Receipt{Filename: "receipt_" + txnRef + ".pdf", Document: doc}, nil
}

type TransferForm struct {
	RecipientPhone string
	Amount         string
	Note           string
}

// Transfer sends money to another user identified by phone number
func (c *Controllers) Transfer(ctx context.Context, page ui.Page, store *sessions.Store, form TransferForm) error {
	if !store.RequireAuth(page) {
		return werrors.ErrNotAuthenticated
	}

	phone := wallet.FilterPhone(form.RecipientPhone)
	if len(phone) != wallet.PhoneDigits {
		page.Show(MsgInvalidPhone, notify.KindError)
		return werrors.Wrapf(werrors.ErrInvalidPhone, "[Transfer] %q", form.RecipientPhone)
	}
	amount, err := wallet.ParseAmount(form.Amount)
	if err != nil {
		page.Show(MsgInvalidAmount, notify.KindError)
		return err
	}

	page.SetLoading(true)

	resp, err := c.client(store).Transfer(ctx, apiclient.TransferRequest{
		RecipientPhone: phone,
		Amount:         amount,
		Note:           strings.TrimSpace(form.Note),
	})
	if err != nil {
		return failAction(page, err, MsgTransferFailed)
	}

	recipient := wallet.PlainText(resp.RecipientName)
	page.Show(fmt.Sprintf("Successfully sent %s%s to %s", wallet.CurrencySymbol, strings.TrimSpace(form.Amount), recipient), notify.KindSuccess)
	page.Navigate(ui.PathDashboard, ActionRedirectDelay)
	return nil
}

// RecipientView is the hint shown under the recipient phone field
type RecipientView struct {
	Found bool
	Name  string
	Phone string
}

// LookupRecipient resolves a complete phone number to a user. An unknown number gives the
// "not found" hint; any other failure leaves the hint empty.
func (c *Controllers) LookupRecipient(ctx context.Context, store *sessions.Store, phone string) RecipientView {
	phone = wallet.FilterPhone(phone)
	if !store.IsAuthenticated() || len(phone) != wallet.PhoneDigits {
		return RecipientView{}
	}

	user, err := c.client(store).LookupUser(ctx, phone)
	switch {
	case apiclient.IsNotFound(err):
		return RecipientView{Phone: phone}
	case err != nil:
		return RecipientView{}
	case !user.Exists:
		return RecipientView{Phone: phone}
	}
	return RecipientView{Found: true, Name: wallet.PlainText(user.Name), Phone: phone}
}
