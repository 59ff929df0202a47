package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.Call(ctx, "/auth/login", Options{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.Call(ctx, "/auth/register", Options{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.Call(ctx, "/auth/profile", Options{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.Call(ctx, "/auth/change-password", Options{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*ForgotPasswordResponse, error) {
	var out ForgotPasswordResponse
	if err := c.Call(ctx, "/auth/forgot-password", Options{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.Call(ctx, "/auth/reset-password", Options{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Balance(ctx context.Context) (*BalanceResponse, error) {
	var out BalanceResponse
	if err := c.Call(ctx, "/wallet/balance", Options{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transactions fetches one zero-based page of history
func (c *Client) Transactions(ctx context.Context, page, size int) (*TransactionPage, error) {
	var out TransactionPage
	endpoint := fmt.Sprintf("/wallet/transactions?page=%d&size=%d", page, size)
	if err := c.Call(ctx, endpoint, Options{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Transaction(ctx context.Context, txnRef string) (*Transaction, error) {
	var out Transaction
	opts := Options{Label: "/wallet/transactions/{txnRef}"}
	if err := c.Call(ctx, "/wallet/transactions/"+url.PathEscape(txnRef), opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Receipt downloads the PDF receipt of a transaction
func (c *Client) Receipt(ctx context.Context, txnRef string) (Document, error) {
	opts := Options{Label: "/wallet/receipt/{txnRef}", Headers: map[string]string{"Accept": "application/pdf"}}
	return c.Download(ctx, "/wallet/receipt/"+url.PathEscape(txnRef), opts)
}

func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	var out TransferResponse
	if err := c.Call(ctx, "/wallet/transfer", Options{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupUser resolves a phone number to a registered user's name
func (c *Client) LookupUser(ctx context.Context, phone string) (*UserLookup, error) {
	var out UserLookup
	opts := Options{Label: "/wallet/user/{phone}"}
	if err := c.Call(ctx, "/wallet/user/"+url.PathEscape(phone), opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*PaymentOrderResponse, error) {
	var out PaymentOrderResponse
	if err := c.Call(ctx, "/payment/create-order", Options{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
