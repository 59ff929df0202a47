package server

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-wallet-web/controllers"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/rs/zerolog/log"
)

func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		view, _ := s.ctrl.Dashboard(r.Context(), page, store)
		s.renderPage(w, r, store, page, "dashboard.html", "Dashboard", nil, view)
	}
}

func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		view, _ := s.ctrl.Profile(r.Context(), page, store)
		s.renderPage(w, r, store, page, "profile.html", "Profile", nil, view)
	}
}

// TransactionsHandler renders one page of history (GET /transactions?page=N, zero-based)
func (s *Server) TransactionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNum, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || pageNum < 0 {
			pageNum = 0
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		view, _ := s.ctrl.TransactionHistory(r.Context(), page, store, pageNum)
		s.renderPage(w, r, store, page, "transactions.html", "Transaction History", nil, view)
	}
}

func (s *Server) TransactionDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		view, _ := s.ctrl.TransactionDetail(r.Context(), page, store, r.PathValue("txnRef"))
		s.renderPage(w, r, store, page, "transaction.html", "Transaction", nil, view)
	}
}

// ReceiptHandler streams the PDF receipt as an attachment
func (s *Server) ReceiptHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		receipt, err := s.ctrl.Receipt(r.Context(), page, store, r.PathValue("txnRef"))
		if err != nil {
			s.renderPage(w, r, store, page, "transaction.html", "Transaction", nil, nil)
			return
		}

		ctype := receipt.ContentType
		if ctype == "" {
			ctype = "application/pdf"
		}
		w.Header().Set("Content-Type", ctype)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": receipt.Filename}))
		w.Header().Set("Content-Length", strconv.Itoa(len(receipt.Data)))
		if _, err := w.Write(receipt.Data); err != nil {
			log.Err(err).Str("filename", receipt.Filename).Msg("Failed to write receipt")
		}
	}
}

func (s *Server) TransferPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		store.RequireAuth(page)
		s.renderPage(w, r, store, page, "transfer.html", "Send Money", nil, nil)
	}
}

func (s *Server) TransferSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.Transfer(r.Context(), page, store, controllers.TransferForm{
			RecipientPhone: r.FormValue("recipientPhone"),
			Amount:         r.FormValue("amount"),
			Note:           r.FormValue("note"),
		})
		s.renderPage(w, r, store, page, "transfer.html", "Send Money", r.PostForm, nil)
	}
}

// RecipientLookupHandler returns the recipient hint fragment shown under the phone field
func (s *Server) RecipientLookupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		view := s.ctrl.LookupRecipient(r.Context(), store, r.URL.Query().Get("phone"))
		s.renderFragment(w, "recipient_hint.html", view)
	}
}
