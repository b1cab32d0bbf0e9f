package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, baseURL string) Config {
	t.Helper()

	dir := t.TempDir()
	return Config{
		BaseURL:         baseURL,
		CredentialStore: "sqlite",
		DatabaseFile:    filepath.Join(dir, "console.db"),
		CredentialFile:  filepath.Join(dir, ".console-token"),
		HTTPTimeout:     consolesdk.DefaultTimeout,
		SignInURL:       consolesdk.DefaultSignInURL,
		Env:             "test",
		LogLevel:        "error",
		LogFormat:       "text",
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "")
	_, err := New(cfg, WithLogOutput(io.Discard))
	require.Error(t, err)
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "/api/v1")
	_, err := New(cfg, WithLogOutput(io.Discard))
	require.ErrorIs(t, err, consolesdk.ErrBaseURLRequired)
}

func TestNewCreatesMasterKeyNextToStore(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "https://api.example.com/api/v1")

	application, err := New(cfg, WithLogOutput(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	info, err := os.Stat(filepath.Join(filepath.Dir(cfg.DatabaseFile), "console.key"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.Equal(t, "https://api.example.com/api/v1", application.Client().BaseURL())
}

func TestCheckStore(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{"sqlite", "file", "memory"} {
		t.Run(driver, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(t, "https://api.example.com/api/v1")
			cfg.CredentialStore = driver

			application, err := New(cfg, WithLogOutput(io.Discard))
			require.NoError(t, err)
			require.NoError(t, application.CheckStore(context.Background()))
			require.NoError(t, application.Close())

			if driver == "sqlite" {
				require.Error(t, application.CheckStore(context.Background()))
			}
		})
	}
}

func TestApplicationSessionResetsOnUnauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login-json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
		}
	}))
	t.Cleanup(srv.Close)

	redirected := 0
	nav := consolesdk.NavigatorFunc(func(context.Context) error {
		redirected++
		return nil
	})

	cfg := testConfig(t, srv.URL)
	cfg.MasterKey = "0123456789abcdef0123456789abcdef"

	application, err := New(cfg, WithLogOutput(io.Discard), WithNavigator(nav))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	ctx := context.Background()

	_, err = application.Session().Login(ctx, "priya", "secret")
	require.NoError(t, err)

	state, err := application.Session().State(ctx)
	require.NoError(t, err)
	require.Equal(t, consolesdk.StateAuthenticated, state)

	_, err = application.API().Clients.List(ctx, nil)
	require.ErrorIs(t, err, consolesdk.ErrSessionExpired)
	require.Equal(t, 1, redirected)

	state, err = application.Session().State(ctx)
	require.NoError(t, err)
	require.Equal(t, consolesdk.StateAnonymous, state)
}
