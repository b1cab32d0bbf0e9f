package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/aussiebroadwan/practiceconsole/pkg/cryptox"
	_ "modernc.org/sqlite"
)

// Store keeps the sealed credential in a single-row key-value table.
type Store struct {
	db     *sql.DB
	sealer *cryptox.Sealer
}

// DSN builds a modernc.org/sqlite connection string for a database file.
func DSN(file string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", file)
}

// NewStore opens the database at dsn and applies migrations.
func NewStore(dsn string, sealer *cryptox.Sealer) (*Store, error) {
	if sealer == nil {
		return nil, errors.New("sqlite: sealer is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One writer at a time keeps SQLite from returning SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, sealer: sealer}
	if err := s.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply credential store migrations: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Load(ctx context.Context) (string, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`,
		consolesdk.CredentialKey,
	).Scan(&sealed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", consolesdk.ErrNoCredential
	case err != nil:
		return "", err
	}

	token, err := s.sealer.Open(sealed, []byte(consolesdk.CredentialKey))
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	sealed, err := s.sealer.Seal([]byte(token), []byte(consolesdk.CredentialKey))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		consolesdk.CredentialKey, sealed, time.Now().UTC(),
	)
	return err
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, consolesdk.CredentialKey)
	return err
}

var _ consolesdk.CredentialStore = (*Store)(nil)
