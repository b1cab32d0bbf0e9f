package consolesdk

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ErrNoCredential)

	require.NoError(t, store.Save(ctx, "one"))
	require.NoError(t, store.Save(ctx, "two"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "two", token)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestMemoryStoreConcurrentUse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, "tok")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Load(ctx)
		}()
	}
	wg.Wait()

	token, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
}
