// Package store opens the credential store selected by configuration.
package store

import (
	"fmt"
	"strings"

	"github.com/aussiebroadwan/practiceconsole/internal/console/store/drivers/file"
	"github.com/aussiebroadwan/practiceconsole/internal/console/store/drivers/sqlite"
	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/aussiebroadwan/practiceconsole/pkg/cryptox"
)

// Supported drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// sealPurpose labels the key derived for credential sealing.
const sealPurpose = "practiceconsole/credential/v1"

// Store is a credential store that may hold resources.
type Store interface {
	consolesdk.CredentialStore
	Close() error
}

type Config struct {
	Driver         string
	DatabaseFile   string
	CredentialFile string
	MasterKey      []byte
}

// Open returns the store for cfg.Driver.
func Open(cfg Config) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))

	if driver == DriverMemory {
		return memoryStore{consolesdk.NewMemoryStore()}, nil
	}

	sealer, err := cryptox.NewSealer(cfg.MasterKey, sealPurpose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise credential sealing: %w", err)
	}

	switch driver {
	case DriverSQLite, "":
		s, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile), sealer)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite credential store: %w", err)
		}
		return s, nil
	case DriverFile:
		s, err := file.NewStore(cfg.CredentialFile, sealer)
		if err != nil {
			return nil, fmt.Errorf("failed to open file credential store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown credential store driver %q", cfg.Driver)
	}
}

type memoryStore struct {
	*consolesdk.MemoryStore
}

func (memoryStore) Close() error { return nil }
