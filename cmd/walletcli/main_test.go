package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	lock      sync.Mutex
	responses map[string]string
	calls     []string
	auth      []string
}

func (s *stubAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
	s.lock.Lock()
	s.calls = append(s.calls, route)
	s.auth = append(s.auth, r.Header.Get("Authorization"))
	body, ok := s.responses[route]
	s.lock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":404,"message":"Not found"}`)
		return
	}
	if strings.HasPrefix(route, "GET /wallet/receipt/") {
		w.Header().Set("Content-Type", "application/pdf")
	}
	_, _ = io.WriteString(w, body)
}

func (s *stubAPI) callCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.calls)
}

type cliHarness struct {
	api     *stubAPI
	url     string
	session string
	dir     string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	api := &stubAPI{responses: map[string]string{
		"POST /auth/login":           `{"token":"token-abc","email":"asha@example.com","userId":7,"name":"Asha Rao"}`,
		"GET /wallet/balance":        `{"walletId":1,"balance":1234.5,"currency":"INR"}`,
		"GET /wallet/transactions":   `{"content":[{"txnRef":"TXN1","direction":"SENT","type":"TRANSFER","amount":50,"status":"SUCCESS","description":"Dinner","counterpartyName":"Ravi","counterpartyPhone":"9876543210","createdAt":"2025-01-02T15:04:05Z"}],"last":true}`,
		"GET /wallet/receipt/TXN1":   "%PDF-1.4 receipt",
		"POST /auth/forgot-password": `{"message":"Reset token generated","token":"tok+1"}`,
		"POST /wallet/transfer":      `{"txnRef":"TXN2","recipientName":"Ravi Kumar","newBalance":1184.5,"status":"SUCCESS"}`,
	}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	return &cliHarness{api: api, url: srv.URL + "/api", session: filepath.Join(dir, "session.db"), dir: dir}
}

func (h *cliHarness) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"-api", h.url, "-session", h.session}, args...)
	err := run(context.Background(), full, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestLoginThenBalance(t *testing.T) {
	h := newCLIHarness(t)

	stdout, _, err := h.run(t, "secret\n", "login", "-email", "asha@example.com")
	require.NoError(t, err)
	require.Contains(t, stdout, "Password: ")
	require.Contains(t, stdout, "✔ Login successful!")

	stdout, _, err = h.run(t, "", "balance")
	require.NoError(t, err)
	require.Contains(t, stdout, "Asha Rao")
	require.Contains(t, stdout, "Balance: ₹1234.50")
	require.Equal(t, "Bearer token-abc", h.api.auth[len(h.api.auth)-1])
}

func TestBalanceRequiresLogin(t *testing.T) {
	h := newCLIHarness(t)

	_, stderr, err := h.run(t, "", "balance")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "Not signed in")
	require.Zero(t, h.api.callCount())
}

func TestLogoutForgetsSession(t *testing.T) {
	h := newCLIHarness(t)

	_, _, err := h.run(t, "", "login", "-email", "asha@example.com", "-password", "secret")
	require.NoError(t, err)

	stdout, _, err := h.run(t, "", "logout")
	require.NoError(t, err)
	require.Contains(t, stdout, "Signed out.")

	_, _, err = h.run(t, "", "balance")
	require.ErrorIs(t, err, errReported)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	h := newCLIHarness(t)

	stdout, _, err := h.run(t, "Abc123\nAbc124\n", "register", "-name", "Asha", "-email", "asha@example.com", "-phone", "9876543210")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, "✖ Passwords do not match")
	require.Zero(t, h.api.callCount())
}

func TestHistoryAndReceipt(t *testing.T) {
	h := newCLIHarness(t)
	_, _, err := h.run(t, "", "login", "-email", "asha@example.com", "-password", "secret")
	require.NoError(t, err)

	stdout, _, err := h.run(t, "", "history")
	require.NoError(t, err)
	require.Contains(t, stdout, "-₹50.00")
	require.Contains(t, stdout, "Ravi")
	require.Contains(t, stdout, "TXN1")
	require.Contains(t, stdout, "1/2/2025 3:04:05 PM")
	require.Contains(t, stdout, "Page 1")

	out := filepath.Join(h.dir, "r.pdf")
	stdout, _, err = h.run(t, "", "receipt", "-ref", "TXN1", "-out", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Saved "+out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 receipt", string(data))
}

func TestReceiptDefaultPathStaysInWorkingDir(t *testing.T) {
	h := newCLIHarness(t)
	h.api.lock.Lock()
	h.api.responses["GET /wallet/receipt/../x"] = "%PDF-1.4 other"
	h.api.lock.Unlock()
	t.Chdir(h.dir)

	_, _, err := h.run(t, "", "login", "-email", "asha@example.com", "-password", "secret")
	require.NoError(t, err)

	stdout, _, err := h.run(t, "", "receipt", "-ref", "TXN1")
	require.NoError(t, err)
	require.Contains(t, stdout, "Saved receipt_TXN1.pdf")

	stdout, _, err = h.run(t, "", "receipt", "-ref", "../x")
	require.NoError(t, err)
	require.Contains(t, stdout, "Saved x.pdf")
	data, err := os.ReadFile(filepath.Join(h.dir, "x.pdf"))
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 other", string(data))
}

func TestTransfer(t *testing.T) {
	h := newCLIHarness(t)
	_, _, err := h.run(t, "", "login", "-email", "asha@example.com", "-password", "secret")
	require.NoError(t, err)

	stdout, _, err := h.run(t, "", "transfer", "-to", "98765-43210", "-amount", "50")
	require.NoError(t, err)
	require.Contains(t, stdout, "✔ Successfully sent ₹50 to Ravi Kumar")

	calls := h.api.callCount()
	stdout, _, err = h.run(t, "", "transfer", "-to", "123", "-amount", "50")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, "Enter a valid 10 digit phone number")
	require.Equal(t, calls, h.api.callCount())
}

func TestForgotPasswordPrintsResetCommand(t *testing.T) {
	h := newCLIHarness(t)

	stdout, _, err := h.run(t, "", "forgot-password", "-email", "asha@example.com", "-phone", "9876543210")
	require.NoError(t, err)
	require.Contains(t, stdout, "✔ Reset token generated")
	require.Contains(t, stdout, "walletcli reset-password -token tok+1")
}

func TestBackendFailureShowsServerMessage(t *testing.T) {
	h := newCLIHarness(t)
	delete(h.api.responses, "POST /auth/login")

	stdout, _, err := h.run(t, "", "login", "-email", "asha@example.com", "-password", "wrong")
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stdout, "✖ Not found")
}

func TestUnknownCommand(t *testing.T) {
	h := newCLIHarness(t)

	_, stderr, err := h.run(t, "", "fly")
	require.EqualError(t, err, `unknown command "fly"`)
	require.Contains(t, stderr, "Usage: walletcli")
	require.Contains(t, stderr, "transfer")
}
