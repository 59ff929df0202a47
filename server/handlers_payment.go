package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jrsteele09/go-wallet-web/checkout"
	"github.com/jrsteele09/go-wallet-web/controllers"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/rs/zerolog/log"
)

// MsgCheckoutExpired is shown when the browser reports on an order the server no longer tracks
const MsgCheckoutExpired = "Your payment session has expired. Please try again."

// maxCallbackBody bounds the gateway payload forwarded by the browser
const maxCallbackBody = 16 << 10

func (s *Server) AddMoneyPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		store.RequireAuth(page)
		s.renderPage(w, r, store, page, "add_money.html", "Add Money", nil, nil)
	}
}

// AddMoneySubmissionHandler creates the order and renders the page with the checkout mounted
func (s *Server) AddMoneySubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.AddMoney(r.Context(), page, store, controllers.AddMoneyForm{Amount: r.FormValue("amount")})
		s.renderPage(w, r, store, page, "add_money.html", "Add Money", r.PostForm, nil)
	}
}

// CheckoutSuccessHandler receives the gateway's success payload from the browser. Only the
// session that opened the order may report on it.
func (s *Server) CheckoutSuccessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payment checkout.Payment
		if !decodeCallback(w, r, &payment) {
			return
		}
		owner := s.session(w, r).Owner()
		page := ui.NewRecorder()
		s.completeCheckout(w, page, s.checkout.Succeed(page, r.PathValue("orderId"), owner, payment))
	}
}

// CheckoutFailureHandler receives the error of the gateway's payment.failed event
func (s *Server) CheckoutFailureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var failure checkout.Failure
		if !decodeCallback(w, r, &failure) {
			return
		}
		owner := s.session(w, r).Owner()
		page := ui.NewRecorder()
		s.completeCheckout(w, page, s.checkout.Fail(page, r.PathValue("orderId"), owner, failure))
	}
}

func (s *Server) completeCheckout(w http.ResponseWriter, page *ui.Recorder, err error) {
	if err != nil {
		log.Warn().Err(err).Msg("Checkout callback rejected")
		page.Show(MsgCheckoutExpired, notify.KindError)
		page.SetLoading(false)
		renderPageJSON(w, http.StatusNotFound, page)
		return
	}
	renderPageJSON(w, http.StatusOK, page)
}

// decodeCallback reads an optional JSON body. An empty body is accepted.
func decodeCallback(w http.ResponseWriter, r *http.Request, out any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxCallbackBody)).Decode(out)
	if err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid callback payload", http.StatusBadRequest)
		return false
	}
	return true
}
