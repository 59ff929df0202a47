package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-wallet-web/checkout"
	"github.com/jrsteele09/go-wallet-web/notify"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

// PageData is what every page template receives
type PageData struct {
	AppName       string
	Title         string
	Notifications []notify.Notification
	Refresh       *ui.Navigation
	Loading       bool
	Authenticated bool
	UserName      string
	Checkout      any
	Form          url.Values
	Data          any
}

// renderPage replays the controller's effects on page as an HTML response. An immediate
// navigation becomes a redirect; a delayed one is rendered with a refresh so the notifications
// stay on screen for the delay.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, store *sessions.Store, page *ui.Recorder, name, title string, form url.Values, data any) {
	nav, navigating := page.Navigation()
	if navigating && nav.Immediate() {
		redirectSuccess(w, r, nav.Path)
		return
	}

	tmpl, ok := s.templates[name]
	if !ok {
		log.Error().Str("template", name).Msg("Unknown template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	pd := PageData{
		AppName:       s.config.GetAppName(),
		Title:         title,
		Notifications: page.Active(),
		Loading:       page.Loading(),
		Authenticated: store.IsAuthenticated(),
		Form:          form,
		Data:          data,
	}
	if profile, ok := store.GetUserProfile(); ok {
		pd.UserName = profile.Name
	}
	if mount, ok := page.Mounted(checkout.MountName); ok {
		pd.Checkout = mount
	}
	if navigating {
		pd.Refresh = &nav
		w.Header().Set("Refresh", fmt.Sprintf("%d;url=%s", int(nav.After.Seconds()), nav.Path))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", pd); err != nil {
		log.Err(err).Str("template", name).Msg("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderFragment(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.fragments[name].Execute(&buf, data); err != nil {
		log.Err(err).Str("template", name).Msg("Failed to render fragment")
		http.Error(w, "Failed to render fragment", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	_, _ = buf.WriteTo(w)
}

type notificationJSON struct {
	Message      string `json:"message"`
	Kind         string `json:"kind"`
	DismissAfter int64  `json:"dismissAfter"`
}

type navigationJSON struct {
	Path  string `json:"path"`
	After int64  `json:"after"`
}

// pageEffectsJSON is the page recorder serialised for the browser scripts
type pageEffectsJSON struct {
	Notifications []notificationJSON `json:"notifications"`
	Navigate      *navigationJSON    `json:"navigate,omitempty"`
	Loading       bool               `json:"loading"`
}

func renderPageJSON(w http.ResponseWriter, status int, page *ui.Recorder) {
	out := pageEffectsJSON{Notifications: []notificationJSON{}, Loading: page.Loading()}
	for _, n := range page.Active() {
		out.Notifications = append(out.Notifications, notificationJSON{
			Message:      n.Message,
			Kind:         string(n.Kind),
			DismissAfter: n.DismissAfterMillis(),
		})
	}
	if nav, ok := page.Navigation(); ok {
		out.Navigate = &navigationJSON{Path: nav.Path, After: nav.After.Milliseconds()}
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Err(err).Msg("Failed to encode page effects")
	}
}

// redirectSuccess helper for htmx-aware success redirects
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent) // 204 - no content, just redirect instruction
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// isHTMXRequest checks if the request was initiated by HTMX
func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
