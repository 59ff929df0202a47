// Package cookiestore keeps session values in sealed browser cookies, the server-side
// counterpart of the browser's local storage.
package cookiestore

import (
	"net/http"
	"time"

	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/rs/zerolog/log"
)

const cookiePrefix = "wallet_"

var _ sessions.Storage = (*CookieStorage)(nil)

type Options struct {
	MaxAge time.Duration
	Secure bool
}

// CookieStorage is request scoped: reads come from the request, writes become Set-Cookie headers.
// Writes made during the request are visible to later reads in the same request.
type CookieStorage struct {
	w       http.ResponseWriter
	r       *http.Request
	sealer  *Sealer
	options Options
	pending map[string]*string
}

func New(w http.ResponseWriter, r *http.Request, sealer *Sealer, options Options) *CookieStorage {
	return &CookieStorage{
		w:       w,
		r:       r,
		sealer:  sealer,
		options: options,
		pending: make(map[string]*string),
	}
}

func CookieName(key string) string {
	return cookiePrefix + key
}

func (c *CookieStorage) Get(key string) (string, bool) {
	if v, ok := c.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	cookie, err := c.r.Cookie(CookieName(key))
	if err != nil || cookie.Value == "" {
		return "", false
	}
	plain, err := c.sealer.Open(cookie.Value)
	if err != nil {
		log.Warn().Str("cookie", cookie.Name).Msg("Ignoring tampered or stale session cookie")
		return "", false
	}
	return string(plain), true
}

func (c *CookieStorage) Set(key, value string) error {
	sealed, err := c.sealer.Seal([]byte(value))
	if err != nil {
		return err
	}
	c.pending[key] = &value
	http.SetCookie(c.w, c.cookie(key, sealed, int(c.options.MaxAge.Seconds())))
	return nil
}

func (c *CookieStorage) Remove(key string) error {
	c.pending[key] = nil
	http.SetCookie(c.w, c.cookie(key, "", -1)) // Delete cookie
	return nil
}

func (c *CookieStorage) cookie(key, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName(key),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.options.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
