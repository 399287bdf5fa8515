package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fakeapi/pkg/store"
	"github.com/getmockd/fakeapi/pkg/store/storetest"
)

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, New())
}

func TestStore_ValuesAreCopied(t *testing.T) {
	s := New()
	ctx := context.Background()

	value := []byte(`[1]`)
	require.NoError(t, s.Put(ctx, "k", value))
	value[1] = '9'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(got))

	got[1] = '8'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(again))
}

func TestStore_Closed(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())

	_, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, s.Put(context.Background(), "k", nil), store.ErrClosed)
}
