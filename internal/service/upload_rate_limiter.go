package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// UploadRateLimiter limita cuantas planillas puede subir un mismo subject
// dentro de una ventana.
type UploadRateLimiter interface {
	Allow(ctx context.Context, subject string) bool
}

type memoryUploadRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewMemoryUploadRateLimiter crea un limiter en memoria (ventana deslizante).
func NewMemoryUploadRateLimiter(window time.Duration, max int) UploadRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Hour
	}
	return &memoryUploadRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *memoryUploadRateLimiter) Allow(_ context.Context, subject string) bool {
	key := normalizeSubject(subject)
	if key == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	l.hits[key] = append(kept, now)
	return true
}

const redisUploadAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisUploadRateLimiter usa una ventana fija por subject compartida entre
// replicas. Si redis falla deja pasar.
type redisUploadRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
	logger *zap.Logger
}

func NewRedisUploadRateLimiter(client *redis.Client, window time.Duration, max int, logger *zap.Logger) UploadRateLimiter {
	if client == nil {
		return NewMemoryUploadRateLimiter(window, max)
	}
	if window <= 0 {
		window = time.Hour
	}
	if max <= 0 {
		max = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisUploadRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "survey:upload:rl:",
		logger: logger,
	}
}

func (l *redisUploadRateLimiter) Allow(ctx context.Context, subject string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key := normalizeSubject(subject)
	if key == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisUploadAllowScript, []string{l.prefix + key}, seconds).Int()
	if err != nil {
		l.logger.Warn("upload rate limiter unavailable", zap.Error(err))
		return true
	}
	return count <= l.max
}

func normalizeSubject(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject))
}
