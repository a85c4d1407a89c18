package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "woodshed:ranking:0.1:50", Key(0.1, 50))
	assert.Equal(t, "woodshed:ranking:1:0", Key(1.0, 0))
	assert.Equal(t, "woodshed:ranking:-0.25:10", Key(-0.25, 10))
}

func TestRankingCacheGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRankingCache(client, time.Hour)
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet(Key(0.1, 50)).SetVal(`{"total":351}`)

		b, ok, err := c.Get(ctx, 0.1, 50)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"total":351}`, string(b))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet(Key(0.5, 50)).RedisNil()

		b, ok, err := c.Get(ctx, 0.5, 50)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, b)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		mock.ExpectGet(Key(0.7, 50)).SetErr(redis.TxFailedErr)

		_, _, err := c.Get(ctx, 0.7, 50)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRankingCacheSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRankingCache(client, time.Hour)

	payload := []byte(`{"total":351}`)
	mock.ExpectSet(Key(0.1, 0), payload, time.Hour).SetVal("OK")

	require.NoError(t, c.Set(context.Background(), 0.1, 0, payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankingCacheDisabled(t *testing.T) {
	c := &RankingCache{}
	assert.False(t, c.Enabled())

	b, ok, err := c.Get(context.Background(), 0.1, 50)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
	assert.NoError(t, c.Set(context.Background(), 0.1, 50, []byte("x")))

	var nilCache *RankingCache
	assert.False(t, nilCache.Enabled())
}
