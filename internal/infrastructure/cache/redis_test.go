package cache

import (
	"context"
	"testing"

	"portfolio-site/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_DisabledBypasses(t *testing.T) {
	r := NewRedis(config.RedisConfig{Enabled: false}, nil)
	ctx := context.Background()

	require.NoError(t, r.SetBytes(ctx, "qr:abc", []byte("png"), 0))

	b, ok, err := r.GetBytes(ctx, "qr:abc")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)

	assert.Error(t, r.Ping(ctx))
	assert.NoError(t, r.Close())
	assert.Equal(t, defaultTTL, r.ttl)
}

func TestRedis_NilReceiverIsSafe(t *testing.T) {
	var r *Redis
	_, ok, err := r.GetBytes(context.Background(), "k")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, r.Close())
}
