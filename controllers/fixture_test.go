package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	"github.com/jrsteele09/go-wallet-web/checkout/fakewidget"
	"github.com/jrsteele09/go-wallet-web/controllers"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/sessions/memstore"
	"github.com/stretchr/testify/require"
)

const testToken = "token-abc"

var testProfile = sessions.Profile{Email: "asha@example.com", UserID: 7, Name: "Asha Rao"}

// backendRequest is what the fake backend saw
type backendRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   map[string]any
}

// fakeBackend serves canned JSON responses and records every request
type fakeBackend struct {
	t        *testing.T
	server   *httptest.Server
	lock     sync.Mutex
	requests []backendRequest
	routes   map[string]cannedResponse
}

type cannedResponse struct {
	status int
	body   string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{t: t, routes: make(map[string]cannedResponse)}
	fb.server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.server.Close)
	return fb
}

// respond registers a response for "METHOD /path" (path relative to /api, without query)
func (fb *fakeBackend) respond(route string, status int, body string) {
	fb.lock.Lock()
	defer fb.lock.Unlock()
	fb.routes[route] = cannedResponse{status: status, body: body}
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	req := backendRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
	}
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		require.NoError(fb.t, json.Unmarshal(data, &req.Body))
	}

	fb.lock.Lock()
	fb.requests = append(fb.requests, req)
	resp, ok := fb.routes[r.Method+" "+r.URL.Path[len("/api"):]]
	fb.lock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":404,"message":"No route"}`)
		return
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (fb *fakeBackend) calls() []backendRequest {
	fb.lock.Lock()
	defer fb.lock.Unlock()
	out := make([]backendRequest, len(fb.requests))
	copy(out, fb.requests)
	return out
}

type fixture struct {
	backend *fakeBackend
	widget  *fakewidget.FakeWidget
	ctrl    *controllers.Controllers
	storage *memstore.MemoryStorage
	store   *sessions.Store
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	backend := newFakeBackend(t)
	widget := fakewidget.NewFakeWidget()
	storage := memstore.New()
	ctrl := controllers.New(
		apiclient.New(backend.server.URL+"/api"),
		widget,
		controllers.CheckoutSettings{Name: "PayFlow Wallet", Description: "Add money to wallet", Currency: "INR", ThemeColor: "#e91e63"},
		time.UTC,
	)
	return &fixture{
		backend: backend,
		widget:  widget,
		ctrl:    ctrl,
		storage: storage,
		store:   sessions.NewStore(storage),
	}
}

// signIn stores a session as a successful login would
func (f *fixture) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, f.store.SetToken(testToken))
	require.NoError(t, f.store.SetUserProfile(testProfile))
}
