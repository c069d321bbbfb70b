package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBlobs(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	exerciseBlobs(t, NewRedisBlobs(client))
}

func TestRedisBlobs_NoExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	blobs := NewRedisBlobs(client)
	ctx := context.Background()

	require.NoError(t, blobs.Set(ctx, KeyUsers, `[]`))
	assert.Zero(t, mr.TTL(KeyUsers), "blobs must not expire")
}

func TestOpenRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := OpenRedis(context.Background(), addr)
	assert.Error(t, err)
}

func TestOpenRedis_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	blobs, err := OpenRedis(context.Background(), mr.Addr())
	require.NoError(t, err)

	exerciseBlobs(t, blobs)
}
