package server

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-wallet-web/controllers"
	"github.com/jrsteele09/go-wallet-web/ui"
)

// LoginPageHandler displays the login page (GET /)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, s.session(w, r), ui.NewRecorder(), "login.html", "Login", nil, nil)
	}
}

// LoginSubmissionHandler processes the login form submission
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.Login(r.Context(), page, store, controllers.LoginForm{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		})
		s.renderPage(w, r, store, page, "login.html", "Login", withoutPasswords(r), nil)
	}
}

func (s *Server) RegisterPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, s.session(w, r), ui.NewRecorder(), "register.html", "Create Account", nil, nil)
	}
}

func (s *Server) RegisterSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.Register(r.Context(), page, store, controllers.RegisterForm{
			Name:            r.FormValue("name"),
			Email:           r.FormValue("email"),
			Phone:           r.FormValue("phone"),
			Password:        r.FormValue("password"),
			ConfirmPassword: r.FormValue("confirmPassword"),
		})
		s.renderPage(w, r, store, page, "register.html", "Create Account", withoutPasswords(r), nil)
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.Logout(page, store)
		s.renderPage(w, r, store, page, "login.html", "Login", nil, nil)
	}
}

func (s *Server) ForgotPasswordPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, s.session(w, r), ui.NewRecorder(), "forgot_password.html", "Forgot Password", nil, nil)
	}
}

func (s *Server) ForgotPasswordSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.ForgotPassword(r.Context(), page, store, controllers.ForgotPasswordForm{
			Email: r.FormValue("email"),
			Phone: r.FormValue("phone"),
		})
		s.renderPage(w, r, store, page, "forgot_password.html", "Forgot Password", r.PostForm, nil)
	}
}

// ResetPasswordPageHandler shows the reset form for the token in the query string
func (s *Server) ResetPasswordPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := r.URL.Query()
		s.renderPage(w, r, s.session(w, r), ui.NewRecorder(), "reset_password.html", "Reset Password", form, nil)
	}
}

func (s *Server) ResetPasswordSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.ResetPassword(r.Context(), page, store, controllers.ResetPasswordForm{
			Token:           r.FormValue("token"),
			NewPassword:     r.FormValue("newPassword"),
			ConfirmPassword: r.FormValue("confirmPassword"),
		})
		s.renderPage(w, r, store, page, "reset_password.html", "Reset Password", withoutPasswords(r), nil)
	}
}

func (s *Server) ChangePasswordPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := s.session(w, r)
		page := ui.NewRecorder()
		store.RequireAuth(page)
		s.renderPage(w, r, store, page, "change_password.html", "Change Password", nil, nil)
	}
}

func (s *Server) ChangePasswordSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		store := s.session(w, r)
		page := ui.NewRecorder()
		_ = s.ctrl.ChangePassword(r.Context(), page, store, controllers.ChangePasswordForm{
			CurrentPassword: r.FormValue("currentPassword"),
			NewPassword:     r.FormValue("newPassword"),
			ConfirmPassword: r.FormValue("confirmPassword"),
		})
		s.renderPage(w, r, store, page, "change_password.html", "Change Password", nil, nil)
	}
}

var passwordFields = []string{"password", "confirmPassword", "currentPassword", "newPassword"}

// withoutPasswords returns the submitted form for re-display, minus any password values
func withoutPasswords(r *http.Request) url.Values {
	form := make(url.Values, len(r.PostForm))
	for k, v := range r.PostForm {
		form[k] = v
	}
	for _, k := range passwordFields {
		delete(form, k)
	}
	return form
}
