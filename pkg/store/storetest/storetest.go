// Package storetest provides a conformance suite shared by every
// store.Store backend.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fakeapi/pkg/store"
)

// Run exercises s against the store.Store contract. s must be empty.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "never-written")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "users", []byte(`[{"id":1}]`)))

		got, err := s.Get(ctx, "users")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(got))
	})

	t.Run("put replaces value", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "inventory", []byte(`[]`)))
		require.NoError(t, s.Put(ctx, "inventory", []byte(`[{"id":2,"name":"Widget"}]`)))

		got, err := s.Get(ctx, "inventory")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":2,"name":"Widget"}]`, string(got))
	})

	t.Run("keys with separators", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "users:seq", []byte(`7`)))

		got, err := s.Get(ctx, "users:seq")
		require.NoError(t, err)
		assert.Equal(t, "7", string(got))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "doomed", []byte(`1`)))
		require.NoError(t, s.Delete(ctx, "doomed"))

		_, err := s.Get(ctx, "doomed")
		assert.ErrorIs(t, err, store.ErrNotFound)

		assert.NoError(t, s.Delete(ctx, "doomed"), "deleting a missing key is not an error")
	})

	t.Run("invalid key", func(t *testing.T) {
		assert.ErrorIs(t, s.Put(ctx, "../escape", []byte(`1`)), store.ErrInvalidKey)
		assert.ErrorIs(t, s.Put(ctx, "", []byte(`1`)), store.ErrInvalidKey)
	})
}
