package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/scale"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const keyPrefix = "woodshed:ranking:"

// RankingCache stores encoded ranking responses in Redis. A cache without a
// client is disabled: reads always miss and writes are dropped.
type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingCache(client *redis.Client, ttl time.Duration) *RankingCache {
	return &RankingCache{client: client, ttl: ttl}
}

// ProvideRankingCache connects to Redis when an address is configured.
func ProvideRankingCache(lc fx.Lifecycle, log *zap.SugaredLogger, cfg config.Config) *RankingCache {
	if cfg.RedisAddr == "" {
		log.Infow("Ranking cache disabled", "reason", "no redis address")
		return &RankingCache{}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.Infow("Ranking cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.RankingTTL)
	return NewRankingCache(client, cfg.RankingTTL)
}

func (c *RankingCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Key identifies a ranking request.
func Key(alpha float64, limit int) string {
	return keyPrefix + scale.FormatAlpha(alpha) + ":" + strconv.Itoa(limit)
}

// Get returns the cached payload and whether it was found.
func (c *RankingCache) Get(ctx context.Context, alpha float64, limit int) ([]byte, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}

	b, err := c.client.Get(ctx, Key(alpha, limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

func (c *RankingCache) Set(ctx context.Context, alpha float64, limit int, payload []byte) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.client.Set(ctx, Key(alpha, limit), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

var Options = ProvideRankingCache
