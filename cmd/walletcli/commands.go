package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/jrsteele09/go-wallet-web/controllers"
	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/ui"
	"golang.org/x/term"
)

type command struct {
	summary string
	run     func(ctx context.Context, app *cli, args []string) error
}

var commands = map[string]command{
	"login":           {"Sign in with email and password", cmdLogin},
	"register":        {"Create an account and sign in", cmdRegister},
	"logout":          {"Forget the stored session", cmdLogout},
	"balance":         {"Show the wallet balance", cmdBalance},
	"history":         {"List transactions, newest first", cmdHistory},
	"show":            {"Show one transaction", cmdShow},
	"receipt":         {"Save the PDF receipt of a transaction", cmdReceipt},
	"transfer":        {"Send money to a phone number", cmdTransfer},
	"profile":         {"Show the signed-in user's profile", cmdProfile},
	"change-password": {"Change the signed-in user's password", cmdChangePassword},
	"forgot-password": {"Request a password reset token", cmdForgotPassword},
	"reset-password":  {"Set a new password with a reset token", cmdResetPassword},
}

func (a *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// finish prints what the controller showed and decides what is left to report
func (a *cli) finish(page *ui.Recorder, err error) error {
	shown := false
	for _, n := range page.Items() {
		mark := "✔"
		if n.Kind == notify.KindError {
			mark = "✖"
		}
		fmt.Fprintf(a.stdout, "%s %s\n", mark, n.Message)
		shown = true
	}

	switch {
	case err == nil:
		return nil
	case werrors.Is(err, werrors.ErrNotAuthenticated):
		fmt.Fprintln(a.stderr, "Not signed in. Run 'walletcli login' first.")
		return errReported
	case shown:
		return errReported
	default:
		return err
	}
}

// readPassword prompts on stdout and reads without echo when stdin is a terminal
func (a *cli) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.stdout, prompt)
	defer fmt.Fprintln(a.stdout)

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// pipes and tests
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// passwordOrPrompt returns value, prompting for it when the flag was left empty
func (a *cli) passwordOrPrompt(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	password, err := a.readPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

func cmdLogin(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("missing required flag: email")
	}

	pw, err := a.passwordOrPrompt(*password, "Password: ")
	if err != nil {
		return err
	}

	page := ui.NewRecorder()
	err = a.ctrl.Login(ctx, page, a.store, controllers.LoginForm{Email: *email, Password: pw})
	return a.finish(page, err)
}

func cmdRegister(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("register")
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email")
	phone := fs.String("phone", "", "10 digit phone number")
	password := fs.String("password", "", "Password (prompted twice when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *phone == "" {
		return fmt.Errorf("missing required flags: name, email and phone")
	}

	form := controllers.RegisterForm{Name: *name, Email: *email, Phone: *phone, Password: *password, ConfirmPassword: *password}
	if *password == "" {
		var err error
		if form.Password, err = a.passwordOrPrompt("", "Password: "); err != nil {
			return err
		}
		if form.ConfirmPassword, err = a.passwordOrPrompt("", "Confirm password: "); err != nil {
			return err
		}
	}

	page := ui.NewRecorder()
	err := a.ctrl.Register(ctx, page, a.store, form)
	return a.finish(page, err)
}

func cmdLogout(_ context.Context, a *cli, _ []string) error {
	page := ui.NewRecorder()
	if err := a.ctrl.Logout(page, a.store); err != nil {
		return a.finish(page, err)
	}
	fmt.Fprintln(a.stdout, "Signed out.")
	return nil
}

func cmdBalance(ctx context.Context, a *cli, _ []string) error {
	page := ui.NewRecorder()
	view, err := a.ctrl.Dashboard(ctx, page, a.store)
	if err != nil {
		return a.finish(page, err)
	}
	fmt.Fprintf(a.stdout, "%s\nBalance: %s\n", view.UserName, view.Balance)
	return nil
}

func cmdHistory(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("history")
	pageNum := fs.Int("page", 1, "Page to show, starting at 1")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := ui.NewRecorder()
	view, err := a.ctrl.TransactionHistory(ctx, page, a.store, *pageNum-1)
	if err != nil {
		return a.finish(page, err)
	}
	if view.Empty {
		fmt.Fprintln(a.stdout, "No transactions yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, item := range view.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %s\n", item.Icon, item.Amount, item.Counterparty, item.TxnRef, item.Date, item.Time)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if p := view.Pagination; p != nil {
		fmt.Fprintf(a.stdout, "Page %d", p.Current)
		if !p.NextDisabled {
			fmt.Fprintf(a.stdout, " (more: -page %d)", p.NextPage+1)
		}
		fmt.Fprintln(a.stdout)
	}
	return nil
}

func cmdShow(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("show")
	ref := fs.String("ref", "", "Transaction reference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ref == "" {
		return fmt.Errorf("missing required flag: ref")
	}

	page := ui.NewRecorder()
	view, err := a.ctrl.TransactionDetail(ctx, page, a.store, *ref)
	if err != nil {
		return a.finish(page, err)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reference\t%s\n", view.TxnRef)
	fmt.Fprintf(tw, "Amount\t%s %s\n", view.Icon, view.Amount)
	fmt.Fprintf(tw, "Counterparty\t%s\n", view.Counterparty)
	if view.Phone != "" {
		fmt.Fprintf(tw, "Phone\t%s\n", view.Phone)
	}
	fmt.Fprintf(tw, "Type\t%s\n", view.Type)
	fmt.Fprintf(tw, "Status\t%s\n", view.Status)
	if view.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", view.Description)
	}
	fmt.Fprintf(tw, "Date\t%s %s\n", view.Date, view.Time)
	return tw.Flush()
}

func cmdReceipt(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("receipt")
	ref := fs.String("ref", "", "Transaction reference")
	out := fs.String("out", "", "Output file (default receipt_<ref>.pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ref == "" {
		return fmt.Errorf("missing required flag: ref")
	}

	page := ui.NewRecorder()
	receipt, err := a.ctrl.Receipt(ctx, page, a.store, *ref)
	if err != nil {
		return a.finish(page, err)
	}

	path := *out
	if path == "" {
		// the name comes from the reference, keep it inside the working directory
		path = filepath.Base(receipt.Filename)
	}
	if err := os.WriteFile(path, receipt.Data, 0o600); err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}
	fmt.Fprintf(a.stdout, "Saved %s\n", path)
	return nil
}

func cmdTransfer(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("transfer")
	to := fs.String("to", "", "Recipient phone number")
	amount := fs.String("amount", "", "Amount in rupees")
	note := fs.String("note", "", "Optional note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := ui.NewRecorder()
	err := a.ctrl.Transfer(ctx, page, a.store, controllers.TransferForm{RecipientPhone: *to, Amount: *amount, Note: *note})
	return a.finish(page, err)
}

func cmdProfile(ctx context.Context, a *cli, _ []string) error {
	page := ui.NewRecorder()
	view, err := a.ctrl.Profile(ctx, page, a.store)
	if err != nil {
		return a.finish(page, err)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s\n", view.Name)
	fmt.Fprintf(tw, "Email\t%s\n", view.Email)
	fmt.Fprintf(tw, "Phone\t%s\n", view.Phone)
	fmt.Fprintf(tw, "Member since\t%s\n", view.MemberSince)
	return tw.Flush()
}

func cmdChangePassword(ctx context.Context, a *cli, _ []string) error {
	var form controllers.ChangePasswordForm
	var err error
	if form.CurrentPassword, err = a.passwordOrPrompt("", "Current password: "); err != nil {
		return err
	}
	if form.NewPassword, err = a.passwordOrPrompt("", "New password: "); err != nil {
		return err
	}
	if form.ConfirmPassword, err = a.passwordOrPrompt("", "Confirm new password: "); err != nil {
		return err
	}

	page := ui.NewRecorder()
	err = a.ctrl.ChangePassword(ctx, page, a.store, form)
	return a.finish(page, err)
}

func cmdForgotPassword(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("forgot-password")
	email := fs.String("email", "", "Account email")
	phone := fs.String("phone", "", "Registered phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := ui.NewRecorder()
	if err := a.ctrl.ForgotPassword(ctx, page, a.store, controllers.ForgotPasswordForm{Email: *email, Phone: *phone}); err != nil {
		return a.finish(page, err)
	}
	if err := a.finish(page, nil); err != nil {
		return err
	}
	// the reset token travels in the follow-up navigation
	if nav, ok := page.Navigation(); ok {
		if target, err := url.Parse(nav.Path); err == nil && target.Query().Get("token") != "" {
			fmt.Fprintf(a.stdout, "Run: walletcli reset-password -token %s\n", target.Query().Get("token"))
		}
	}
	return nil
}

func cmdResetPassword(ctx context.Context, a *cli, args []string) error {
	fs := a.flags("reset-password")
	token := fs.String("token", "", "Reset token from forgot-password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := controllers.ResetPasswordForm{Token: *token}
	var err error
	if form.NewPassword, err = a.passwordOrPrompt("", "New password: "); err != nil {
		return err
	}
	if form.ConfirmPassword, err = a.passwordOrPrompt("", "Confirm new password: "); err != nil {
		return err
	}

	page := ui.NewRecorder()
	err = a.ctrl.ResetPassword(ctx, page, a.store, form)
	return a.finish(page, err)
}
