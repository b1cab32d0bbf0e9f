package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MasterKeySize is the length of generated master keys in bytes.
const MasterKeySize = 32

// LoadOrCreateMasterKey reads the master key at path, generating and writing
// a new random key (mode 0600) when the file does not exist yet.
func LoadOrCreateMasterKey(path string) ([]byte, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return decodeMasterKey(data)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read master key file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create master key directory: %w", err)
	}

	key := make([]byte, MasterKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate master key: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write master key file: %w", err)
	}

	return key, nil
}

// decodeMasterKey accepts base64url key files; anything else is used as raw
// key material.
func decodeMasterKey(data []byte) ([]byte, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.New("cryptox: master key file is empty")
	}

	if key, err := base64.RawURLEncoding.DecodeString(trimmed); err == nil && len(key) >= 16 {
		return key, nil
	}
	return []byte(trimmed), nil
}
