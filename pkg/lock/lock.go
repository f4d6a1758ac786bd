package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker é o contrato de lease distribuído usado pelos avaliadores para
// garantir uma única avaliação por campanha por vez
type Locker interface {
	// Acquire tenta tomar o lease; retorna falso sem erro quando outro
	// processo já o detém
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type redisLocker struct {
	client *redis.Client
	prefix string
}

func NewRedisLocker(client *redis.Client) Locker {
	return &redisLocker{client: client, prefix: "lease"}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := l.client.SetNX(ctx, l.key(key), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("erro ao adquirir lease: %w", err)
	}
	return acquired, nil
}

func (l *redisLocker) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("erro ao liberar lease: %w", err)
	}
	return nil
}

func (l *redisLocker) key(key string) string {
	return l.prefix + ":" + key
}
