// Package sqlitestore persists session values in a SQLite key/value table.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/rs/zerolog/log"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

var _ sessions.Storage = (*Storage)(nil)

// Storage wraps a sql.DB connection holding a single kv table
type Storage struct {
	conn *sql.DB
}

// Open opens (or creates) the database at path and runs migrations
func Open(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("[sqlitestore Open] %w", err)
	}
	// a single connection keeps ":memory:" databases consistent across calls
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("[sqlitestore Open] ping: %w", err)
	}

	s := &Storage{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Storage) migrate() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS session_values (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("[sqlitestore migrate] %w", err)
	}
	return nil
}

func (s *Storage) Get(key string) (string, bool) {
	var value string
	err := s.conn.QueryRow(`SELECT value FROM session_values WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		log.Err(err).Str("key", key).Msg("Failed to read session value")
		return "", false
	}
	return value, true
}

func (s *Storage) Set(key, value string) error {
	_, err := s.conn.Exec(`INSERT INTO session_values (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	if err != nil {
		return fmt.Errorf("[sqlitestore Set] %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Remove(key string) error {
	if _, err := s.conn.Exec(`DELETE FROM session_values WHERE key = ?`, key); err != nil {
		return fmt.Errorf("[sqlitestore Remove] %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.conn.Close()
}
