package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/stretchr/testify/require"
)

var testMasterKey = []byte("0123456789abcdef0123456789abcdef")

func openDrivers(t *testing.T) map[string]Config {
	t.Helper()
	dir := t.TempDir()

	return map[string]Config{
		DriverMemory: {Driver: DriverMemory},
		DriverSQLite: {
			Driver:       DriverSQLite,
			DatabaseFile: filepath.Join(dir, "console.db"),
			MasterKey:    testMasterKey,
		},
		DriverFile: {
			Driver:         DriverFile,
			CredentialFile: filepath.Join(dir, "token"),
			MasterKey:      testMasterKey,
		},
	}
}

func TestStoreLifecycle(t *testing.T) {
	t.Parallel()

	for name, cfg := range openDrivers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s, err := Open(cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			_, err = s.Load(ctx)
			require.ErrorIs(t, err, consolesdk.ErrNoCredential)

			require.NoError(t, s.Save(ctx, "first"))
			require.NoError(t, s.Save(ctx, "second"))

			token, err := s.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, "second", token)

			require.NoError(t, s.Clear(ctx))
			require.NoError(t, s.Clear(ctx), "clearing an empty store is a no-op")

			_, err = s.Load(ctx)
			require.ErrorIs(t, err, consolesdk.ErrNoCredential)
		})
	}
}

func TestPersistentStoresSurviveReopen(t *testing.T) {
	t.Parallel()

	for name, cfg := range openDrivers(t) {
		if name == DriverMemory {
			continue
		}

		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s, err := Open(cfg)
			require.NoError(t, err)
			require.NoError(t, s.Save(ctx, "persisted-token"))
			require.NoError(t, s.Close())

			reopened, err := Open(cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = reopened.Close() })

			token, err := reopened.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, "persisted-token", token)
		})
	}
}

func TestTokenIsSealedAtRest(t *testing.T) {
	t.Parallel()

	for name, cfg := range openDrivers(t) {
		if name == DriverMemory {
			continue
		}

		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			s, err := Open(cfg)
			require.NoError(t, err)
			require.NoError(t, s.Save(ctx, "plain-bearer-token"))
			require.NoError(t, s.Close())

			path := cfg.DatabaseFile
			if name == DriverFile {
				path = cfg.CredentialFile
			}

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			require.NotContains(t, string(raw), "plain-bearer-token")
		})
	}
}

func TestWrongMasterKeyCannotRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg := Config{
		Driver:         DriverFile,
		CredentialFile: filepath.Join(t.TempDir(), "token"),
		MasterKey:      testMasterKey,
	}

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "token"))

	cfg.MasterKey = []byte("another-master-key-another-key!!")
	other, err := Open(cfg)
	require.NoError(t, err)

	_, err = other.Load(ctx)
	require.Error(t, err)
	require.NotErrorIs(t, err, consolesdk.ErrNoCredential)
}

func TestOpenErrors(t *testing.T) {
	t.Parallel()

	_, err := Open(Config{Driver: "redis", MasterKey: testMasterKey})
	require.ErrorContains(t, err, "unknown credential store driver")

	_, err = Open(Config{Driver: DriverFile})
	require.ErrorContains(t, err, "credential sealing")

	_, err = Open(Config{Driver: DriverFile, MasterKey: testMasterKey})
	require.ErrorContains(t, err, "path is required")
}
