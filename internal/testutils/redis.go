// Package testutils provides shared test helpers: an in-memory Redis and a
// fake PokeAPI server with fixtures.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dex-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing.
// The miniredis instance is returned so tests can inspect keys and TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
