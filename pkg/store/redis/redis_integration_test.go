//go:build integration

package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/getmockd/fakeapi/pkg/store/storetest"
)

func newRedisURL(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	return url
}

func TestRedisStore_Conformance(t *testing.T) {
	s, err := New(context.Background(), newRedisURL(t), "")
	require.NoError(t, err)
	defer s.Close()

	storetest.Run(t, s)
}

func TestRedisStore_PrefixIsolation(t *testing.T) {
	url := newRedisURL(t)
	ctx := context.Background()

	a, err := New(ctx, url, "a:")
	require.NoError(t, err)
	defer a.Close()
	b, err := New(ctx, url, "b:")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Put(ctx, "users", []byte(`[1]`)))
	require.NoError(t, b.Put(ctx, "users", []byte(`[2]`)))

	got, err := a.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(got))
}
