package token

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// SecretStore hands out the per-user signing secret, minting one on
// first use.
type SecretStore interface {
	Secret(ctx context.Context, userID int64) ([]byte, error)
	Reset(ctx context.Context, userID int64) error
}

// SQLiteSecretStore keeps session secrets in a small sqlite table,
// separate from the favorites database.
type SQLiteSecretStore struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteSecretStore(dsn string) (*SQLiteSecretStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("missing sqlite dsn")
	}
	s := &SQLiteSecretStore{dsn: dsn}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteSecretStore) Secret(ctx context.Context, userID int64) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("nil secret store")
	}
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id %d", userID)
	}
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	// Insert-ignore then read back, so concurrent first issuance for
	// the same user converges on one secret.
	_, err := s.db.ExecContext(ctx, `
INSERT INTO session_secrets (user_id, secret, created_at_unix)
VALUES (?, ?, ?)
ON CONFLICT(user_id) DO NOTHING
`, userID, randHex(32), time.Now().UTC().Unix())
	if err != nil {
		return nil, err
	}

	var secret string
	err = s.db.QueryRowContext(ctx, `
SELECT secret FROM session_secrets WHERE user_id = ?
`, userID).Scan(&secret)
	if err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

func (s *SQLiteSecretStore) Reset(ctx context.Context, userID int64) error {
	if s == nil {
		return fmt.Errorf("nil secret store")
	}
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_secrets WHERE user_id = ?`, userID)
	return err
}

func (s *SQLiteSecretStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteSecretStore) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return err
	}
	s.db = db
	return s.migrate()
}

func (s *SQLiteSecretStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteSecretStore) migrate() error {
	if s.db == nil {
		return fmt.Errorf("sqlite db is not open")
	}
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS session_secrets (
  user_id INTEGER PRIMARY KEY,
  secret TEXT NOT NULL,
  created_at_unix INTEGER NOT NULL
);
`)
	return err
}

func randHex(nbytes int) string {
	if nbytes <= 0 {
		nbytes = 32
	}
	b := make([]byte, nbytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
