package cache_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	otelMocks "homestay/infras/otel/mocks"
	"homestay/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedRoom struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Capacity   int    `json:"capacity"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, otelMocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	room := cachedRoom{ID: "room-101", RoomNumber: "101", Capacity: 2}
	require.NoError(t, c.Save(ctx, "room:get:room-101", room, 60))

	var got cachedRoom
	require.NoError(t, c.Get(ctx, "room:get:room-101", &got))
	assert.Equal(t, room, got)
	assert.Equal(t, 60*time.Second, server.TTL("room:get:room-101"))
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newCache(t)

	var got cachedRoom
	err := c.Get(context.Background(), "room:get:unknown", &got)

	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestRedisCache_CorruptValue(t *testing.T) {
	c, server := newCache(t)
	require.NoError(t, server.Set("room:get:room-101", "{not json"))

	var got cachedRoom
	err := c.Get(context.Background(), "room:get:room-101", &got)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrMiss)
}

func TestRedisCache_SaveWithoutTTLIsSkipped(t *testing.T) {
	c, server := newCache(t)

	require.NoError(t, c.Save(context.Background(), "homestay:count", 4, 0))

	assert.False(t, server.Exists("homestay:count"))
}

func TestRedisCache_Delete(t *testing.T) {
	c, server := newCache(t)
	require.NoError(t, server.Set("lead:get:lead-1", "{}"))

	require.NoError(t, c.Delete(context.Background(), "lead:get:lead-1"))
	require.NoError(t, c.Delete(context.Background(), "lead:get:lead-1"))

	assert.False(t, server.Exists("lead:get:lead-1"))
}

func TestRedisCache_Clear(t *testing.T) {
	c, server := newCache(t)

	for i := range 250 {
		require.NoError(t, server.Set("booking:gets:"+strconv.Itoa(i), "[]"))
	}

	require.NoError(t, server.Set("booking:get:bkg-1", "{}"))
	require.NoError(t, server.Set("room:gets:1", "[]"))

	require.NoError(t, c.Clear(context.Background(), "booking:gets*"))

	assert.Equal(t, []string{"booking:get:bkg-1", "room:gets:1"}, server.Keys())
}

func TestRedisCache_Increment(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := c.Increment(ctx, "limiter:203.0.113.9:front-desk", 60)

		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	assert.Equal(t, 60*time.Second, server.TTL("limiter:203.0.113.9:front-desk"))

	server.FastForward(61 * time.Second)

	count, err := c.Increment(ctx, "limiter:203.0.113.9:front-desk", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
