// Package file stores the sealed credential in a single file.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/aussiebroadwan/practiceconsole/pkg/cryptox"
)

type Store struct {
	path   string
	sealer *cryptox.Sealer

	mu sync.Mutex
}

// NewStore returns a store writing to path. The file is created on first Save.
func NewStore(path string, sealer *cryptox.Sealer) (*Store, error) {
	if path == "" {
		return nil, errors.New("file: credential path is required")
	}
	if sealer == nil {
		return nil, errors.New("file: sealer is required")
	}
	return &Store{path: filepath.Clean(path), sealer: sealer}, nil
}

func (s *Store) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", consolesdk.ErrNoCredential
	case err != nil:
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}

	token, err := s.sealer.Open(sealed, []byte(consolesdk.CredentialKey))
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// Save writes the sealed token through a temp file and rename, so readers
// never observe a partial write.
func (s *Store) Save(_ context.Context, token string) error {
	sealed, err := s.sealer.Seal([]byte(token), []byte(consolesdk.CredentialKey))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credential-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(sealed); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write credential: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set credential permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close credential file: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credential file: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

var _ consolesdk.CredentialStore = (*Store)(nil)
