package controllers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/jrsteele09/go-wallet-web/wallet"
	"github.com/rs/zerolog/log"
)

type LoginForm struct {
	Email    string
	Password string
}

type RegisterForm struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Login signs the user in and stores the token and profile
func (c *Controllers) Login(ctx context.Context, page ui.Page, store *sessions.Store, form LoginForm) error {
	page.SetLoading(true)

	resp, err := c.client(store).Login(ctx, apiclient.LoginRequest{Email: strings.TrimSpace(form.Email), Password: form.Password})
	if err != nil {
		return failAction(page, err, MsgLoginFailed)
	}
	if err := startSession(store, resp); err != nil {
		return failAction(page, err, MsgLoginFailed)
	}

	page.Show(MsgLoginSuccess, notify.KindSuccess)
	page.Navigate(ui.PathDashboard, AuthRedirectDelay)
	return nil
}

// Register creates an account. Mismatched passwords are rejected before any backend call.
func (c *Controllers) Register(ctx context.Context, page ui.Page, store *sessions.Store, form RegisterForm) error {
	if form.Password != form.ConfirmPassword {
		page.Show(MsgPasswordMismatch, notify.KindError)
		return werrors.ErrPasswordMismatch
	}

	page.SetLoading(true)

	resp, err := c.client(store).Register(ctx, apiclient.RegisterRequest{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Phone:    wallet.FilterPhone(form.Phone),
		Password: form.Password,
	})
	if err != nil {
		return failAction(page, err, MsgRegisterFailed)
	}
	if err := startSession(store, resp); err != nil {
		return failAction(page, err, MsgRegisterFailed)
	}

	page.Show(MsgRegisterSuccess, notify.KindSuccess)
	page.Navigate(ui.PathDashboard, AuthRedirectDelay)
	return nil
}

func startSession(store *sessions.Store, resp *apiclient.AuthResponse) error {
	if err := store.SetToken(resp.Token); err != nil {
		log.Err(err).Msg("Failed to store session token")
		return fmt.Errorf("[startSession] %w", err)
	}
	profile := sessions.Profile{Email: resp.Email, UserID: resp.UserID, Name: resp.Name}
	if err := store.SetUserProfile(profile); err != nil {
		log.Err(err).Msg("Failed to store user profile")
		return fmt.Errorf("[startSession] %w", err)
	}
	return nil
}

// Logout clears the session and returns to the entry page
func (c *Controllers) Logout(page ui.Page, store *sessions.Store) error {
	return store.Logout(page)
}

type ChangePasswordForm struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (c *Controllers) ChangePassword(ctx context.Context, page ui.Page, store *sessions.Store, form ChangePasswordForm) error {
	if !store.RequireAuth(page) {
		return werrors.ErrNotAuthenticated
	}
	if form.NewPassword != form.ConfirmPassword {
		page.Show(MsgPasswordMismatch, notify.KindError)
		return werrors.ErrPasswordMismatch
	}

	page.SetLoading(true)

	resp, err := c.client(store).ChangePassword(ctx, apiclient.ChangePasswordRequest{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	if err != nil {
		return failAction(page, err, MsgChangePassFailed)
	}

	page.Show(resp.Message, notify.KindSuccess)
	page.Navigate(ui.PathProfile, ActionRedirectDelay)
	return nil
}

type ForgotPasswordForm struct {
	Email string
	Phone string
}

// ForgotPassword requests a reset token and hands it to the reset page
func (c *Controllers) ForgotPassword(ctx context.Context, page ui.Page, store *sessions.Store, form ForgotPasswordForm) error {
	page.SetLoading(true)

	resp, err := c.client(store).ForgotPassword(ctx, apiclient.ForgotPasswordRequest{
		Email: strings.TrimSpace(form.Email),
		Phone: wallet.FilterPhone(form.Phone),
	})
	if err != nil {
		return failAction(page, err, MsgForgotPassFailed)
	}

	page.Show(resp.Message, notify.KindSuccess)
	page.Navigate(ui.PathResetPassword+"?token="+url.QueryEscape(resp.Token), ActionRedirectDelay)
	return nil
}

type ResetPasswordForm struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

func (c *Controllers) ResetPassword(ctx context.Context, page ui.Page, store *sessions.Store, form ResetPasswordForm) error {
	if strings.TrimSpace(form.Token) == "" {
		page.Show(MsgResetTokenRequired, notify.KindError)
		return werrors.Wrapf(werrors.ErrMissingField, "[ResetPassword] token")
	}
	if form.NewPassword != form.ConfirmPassword {
		page.Show(MsgPasswordMismatch, notify.KindError)
		return werrors.ErrPasswordMismatch
	}

	page.SetLoading(true)

	resp, err := c.client(store).ResetPassword(ctx, apiclient.ResetPasswordRequest{Token: form.Token, NewPassword: form.NewPassword})
	if err != nil {
		return failAction(page, err, MsgResetPassFailed)
	}

	page.Show(resp.Message, notify.KindSuccess)
	page.Navigate(ui.PathEntry, ActionRedirectDelay)
	return nil
}
