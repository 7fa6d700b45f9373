package service

import (
	"context"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"moda-survey/internal/domain"
)

// SummaryCache guarda payloads calculados. Un error equivale a cache miss.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type noopSummaryCache struct{}

// NewNoopSummaryCache devuelve un cache que nunca guarda nada.
func NewNoopSummaryCache() SummaryCache {
	return noopSummaryCache{}
}

func (noopSummaryCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopSummaryCache) Set(context.Context, string, []byte) {}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisSummaryCache struct {
	client redisKV
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) SummaryCache {
	if client == nil {
		return NewNoopSummaryCache()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisSummaryCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisSummaryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("summary cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return val, true
}

func (c *redisSummaryCache) Set(ctx context.Context, key string, value []byte) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("summary cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// SelectionCacheKey arma una clave estable para (dataset, seccion, seleccion):
// el orden de claves y valores no cambia el resultado.
func SelectionCacheKey(datasetID, section string, sel domain.Selection) string {
	keys := make([]string, 0, len(sel))
	for k, vals := range sel {
		if len(vals) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		vals := make([]string, 0, len(sel[k]))
		for _, v := range sel[k] {
			vals = append(vals, strings.TrimSpace(v))
		}
		sort.Strings(vals)
		b.WriteString(k)
		b.WriteByte(0x1e)
		b.WriteString(strings.Join(vals, "\x1f"))
		b.WriteByte(0x1d)
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return "survey:" + section + ":" + datasetID + ":" + hex.EncodeToString(sum[:16])
}
