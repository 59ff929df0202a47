package sessions

// Storage is the persistent key/value medium the session lives in.
// Implementations: memstore (tests, single process), cookiestore (browser cookies), sqlitestore (CLI).
type Storage interface {
	// Get returns the stored value and whether the key was present
	Get(key string) (string, bool)
	Set(key, value string) error
	// Remove deletes the key. Removing a missing key is not an error.
	Remove(key string) error
}
