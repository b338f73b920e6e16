package codegen

import (
	"context"
	"sync"
	"time"

	"scheme-console/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Sequencer hands out a per-day counter starting at 1.
type Sequencer interface {
	Next(ctx context.Context, day string) (int64, error)
}

type MemorySequencer struct {
	mu   sync.Mutex
	last map[string]int64
}

func NewMemorySequencer() *MemorySequencer {
	return &MemorySequencer{last: make(map[string]int64)}
}

func (s *MemorySequencer) Next(_ context.Context, day string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Only today's counter is ever needed again.
	for d := range s.last {
		if d != day {
			delete(s.last, d)
		}
	}
	s.last[day]++
	return s.last[day], nil
}

const (
	redisKeyPrefix = "scheme:code:seq:"
	redisKeyTTL    = 48 * time.Hour
)

// RedisSequencer shares the daily counter between instances through INCR.
type RedisSequencer struct {
	client redis.Cmdable
}

func NewRedisSequencer(client redis.Cmdable) *RedisSequencer {
	return &RedisSequencer{client: client}
}

func (s *RedisSequencer) Next(ctx context.Context, day string) (int64, error) {
	key := redisKeyPrefix + day
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errs.Wrapf(err, "incr %s", key)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, redisKeyTTL).Err(); err != nil {
			return 0, errs.Wrapf(err, "expire %s", key)
		}
	}
	return n, nil
}
