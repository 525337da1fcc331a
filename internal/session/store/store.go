package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rentcredit/rentcredit/internal/session"
)

// The two fixed keys of the persisted sign-in state.
const (
	keyRole = "rc_role"
	keyUser = "rc_user"
)

// Store keeps the session pair in a single-file sqlite key-value table, the
// durable local stand-in for the browser's storage. No other entity is
// persisted here.
type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging session store: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating session schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads both keys. A missing pair is not an error: it reads as
// signed-out.
func (s *Store) Load(ctx context.Context) (session.Role, *session.User, error) {
	role, err := s.get(ctx, keyRole)
	if err != nil {
		return "", nil, err
	}

	raw, err := s.get(ctx, keyUser)
	if err != nil {
		return "", nil, err
	}

	if role == "" || raw == "" {
		return "", nil, nil
	}

	var user session.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", nil, fmt.Errorf("decoding stored user: %w", err)
	}

	return session.Role(role), &user, nil
}

// Save writes both keys in one transaction.
func (s *Store) Save(ctx context.Context, role session.Role, user *session.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	upsert := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, upsert, keyRole, string(role)); err != nil {
		return fmt.Errorf("saving role: %w", err)
	}

	if _, err := tx.ExecContext(ctx, upsert, keyUser, string(raw)); err != nil {
		return fmt.Errorf("saving user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	return nil
}

// Clear removes both keys together.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM kv WHERE key IN (?, ?)`, keyRole, keyUser); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("reading %s: %w", key, err)
	}

	return value, nil
}
