package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	t.Parallel()

	s, err := NewSealer([]byte("master-key-material"), "credential")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("bearer-token"), []byte("token"))
	require.NoError(t, err)
	require.NotContains(t, string(sealed), "bearer-token")

	plain, err := s.Open(sealed, []byte("token"))
	require.NoError(t, err)
	require.Equal(t, "bearer-token", string(plain))
}

func TestSealIsRandomised(t *testing.T) {
	t.Parallel()

	s, err := NewSealer([]byte("master-key-material"), "credential")
	require.NoError(t, err)

	a, err := s.Seal([]byte("same"), nil)
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"), nil)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestOpenRejectsTampering(t *testing.T) {
	t.Parallel()

	s, err := NewSealer([]byte("master-key-material"), "credential")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("bearer-token"), []byte("token"))
	require.NoError(t, err)

	t.Run("wrong additional data", func(t *testing.T) {
		_, err := s.Open(sealed, []byte("other"))
		require.Error(t, err)
	})

	t.Run("flipped byte", func(t *testing.T) {
		tampered := append([]byte(nil), sealed...)
		tampered[len(tampered)-1] ^= 0xff
		_, err := s.Open(tampered, []byte("token"))
		require.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := s.Open([]byte("short"), nil)
		require.ErrorIs(t, err, ErrSealedTooShort)
	})

	t.Run("different purpose", func(t *testing.T) {
		other, err := NewSealer([]byte("master-key-material"), "something-else")
		require.NoError(t, err)
		_, err = other.Open(sealed, []byte("token"))
		require.Error(t, err)
	})
}

func TestNewSealerRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewSealer(nil, "credential")
	require.Error(t, err)
}

func TestLoadOrCreateMasterKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keys", "master.key")

	first, err := LoadOrCreateMasterKey(path)
	require.NoError(t, err)
	require.Len(t, first, MasterKeySize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := LoadOrCreateMasterKey(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadMasterKeyRawMaterial(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "master.key")
	require.NoError(t, os.WriteFile(path, []byte("not base64 !!\n"), 0o600))

	key, err := LoadOrCreateMasterKey(path)
	require.NoError(t, err)
	require.Equal(t, []byte("not base64 !!"), key)
}
