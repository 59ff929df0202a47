package controllers

import (
	"context"
	"time"

	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/jrsteele09/go-wallet-web/wallet"
)

type ProfileView struct {
	Name         string
	Email        string
	Phone        string
	MemberSince  string
	TokenExpires time.Time
}

func (c *Controllers) Profile(ctx context.Context, page ui.Page, store *sessions.Store) (*ProfileView, error) {
	if !store.RequireAuth(page) {
		return nil, werrors.ErrNotAuthenticated
	}

	resp, err := c.client(store).Profile(ctx)
	if err != nil {
		page.Show(MsgProfileFailed, notify.KindError)
		return nil, err
	}

	view := &ProfileView{
		Name:        wallet.PlainText(resp.Name),
		Email:       resp.Email,
		Phone:       resp.Phone,
		MemberSince: resp.MemberSince,
	}
	if resp.MemberSince != "" {
		if d := wallet.FormatDate(resp.MemberSince, c.location); d != wallet.InvalidDate {
			view.MemberSince = d
		}
	}
	if exp, ok := store.TokenExpiry(); ok {
		view.TokenExpires = exp.In(c.location)
	}
	return view, nil
}
