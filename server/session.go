package server

import (
	"net/http"

	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/sessions/cookiestore"
)

// session opens the request's session, backed by sealed cookies
func (s *Server) session(w http.ResponseWriter, r *http.Request) *sessions.Store {
	storage := cookiestore.New(w, r, s.sealer, cookiestore.Options{
		MaxAge: s.config.GetSessionMaxAge(),
		Secure: getScheme(r) == "https",
	})
	return sessions.NewStore(storage, sessions.WithExpiryEnforcement(s.config.GetLogoutOnExpiredToken()))
}
