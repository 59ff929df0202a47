package sessions

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jrsteele09/go-wallet-web/ui"
	"github.com/rs/zerolog/log"
)

// Storage keys, kept compatible with the browser client's localStorage layout
const (
	TokenKey    = "token"
	UserDataKey = "userData"
)

// Profile is the small user record cached next to the token
type Profile struct {
	Email  string `json:"email"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

// Store is the session service: an opaque bearer token plus the user's profile.
// It performs no token validation of its own unless expiry enforcement is switched on.
type Store struct {
	storage       Storage
	enforceExpiry bool
	now           func() time.Time
}

type StoreOption func(*Store)

// WithExpiryEnforcement makes an expired JWT count as logged out
func WithExpiryEnforcement(enabled bool) StoreOption {
	return func(s *Store) {
		s.enforceExpiry = enabled
	}
}

// WithClock overrides time.Now, for tests
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) GetToken() (string, bool) {
	token, ok := s.storage.Get(TokenKey)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *Store) SetToken(token string) error {
	if err := s.storage.Set(TokenKey, token); err != nil {
		return fmt.Errorf("[Store SetToken] %w", err)
	}
	return nil
}

// GetUserProfile returns the stored profile. A missing or unparsable record reads as absent.
func (s *Store) GetUserProfile() (Profile, bool) {
	data, ok := s.storage.Get(UserDataKey)
	if !ok || data == "" {
		return Profile{}, false
	}
	var p Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		log.Warn().Err(err).Msg("Discarding unreadable stored user profile")
		return Profile{}, false
	}
	return p, true
}

func (s *Store) SetUserProfile(p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("[Store SetUserProfile] marshal: %w", err)
	}
	if err := s.storage.Set(UserDataKey, string(data)); err != nil {
		return fmt.Errorf("[Store SetUserProfile] %w", err)
	}
	return nil
}

// IsAuthenticated is true when a token is present
func (s *Store) IsAuthenticated() bool {
	token, ok := s.GetToken()
	if !ok {
		return false
	}
	if s.enforceExpiry && isExpired(token, s.now()) {
		return false
	}
	return true
}

// RequireAuth sends unauthenticated users to the entry page. Callers must stop when it returns false.
func (s *Store) RequireAuth(nav ui.Navigator) bool {
	if s.IsAuthenticated() {
		return true
	}
	if _, present := s.GetToken(); present {
		// only reachable with expiry enforcement on
		log.Info().Msg("Stored token has expired, clearing session")
		if err := s.Clear(); err != nil {
			log.Err(err).Msg("Failed to clear expired session")
		}
	}
	nav.Navigate(ui.PathEntry, 0)
	return false
}

// Logout clears both stored values and returns the user to the entry page
func (s *Store) Logout(nav ui.Navigator) error {
	err := s.Clear()
	nav.Navigate(ui.PathEntry, 0)
	return err
}

func (s *Store) Clear() error {
	if err := s.storage.Remove(TokenKey); err != nil {
		return fmt.Errorf("[Store Clear] token: %w", err)
	}
	if err := s.storage.Remove(UserDataKey); err != nil {
		return fmt.Errorf("[Store Clear] user data: %w", err)
	}
	return nil
}

// Owner identifies the signed-in user for state kept outside the session. It is the profile's
// user id, or a digest of the token when no profile is stored, and empty when signed out.
func (s *Store) Owner() string {
	token, ok := s.GetToken()
	if !ok {
		return ""
	}
	if p, ok := s.GetUserProfile(); ok && p.UserID != 0 {
		return "user:" + strconv.FormatInt(p.UserID, 10)
	}
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:8])
}

// TokenExpiry reports the exp claim of the stored token when it is a JWT
func (s *Store) TokenExpiry() (time.Time, bool) {
	token, ok := s.GetToken()
	if !ok {
		return time.Time{}, false
	}
	return tokenExpiry(token)
}
