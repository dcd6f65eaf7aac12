package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/digimon-sheet/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClientConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, client.Ping(context.Background()).Err())
}
