package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockTimeout = errors.New("timed out waiting for room lock")

// unlockScript deletes the key only when it still holds our token, so a lock
// that expired and was taken by another writer is never released by us.
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type RedisConfig struct {
	// TTL bounds how long a crashed holder can block the room.
	TTL           time.Duration
	RetryInterval time.Duration
	// MaxWait of zero means a single attempt.
	MaxWait time.Duration
}

// RedisLocker is a per-room token lock shared by every API instance.
type RedisLocker struct {
	client   *redis.Client
	cfg      RedisConfig
	newToken func() string
	logger   *slog.Logger
}

func NewRedisLocker(client *redis.Client, cfg RedisConfig, logger *slog.Logger) *RedisLocker {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Second
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 50 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisLocker{
		client:   client,
		cfg:      cfg,
		newToken: func() string { return uuid.NewString() },
		logger:   logger,
	}
}

// WithTokenSource replaces the token generator; tests use it to get predictable values.
func (l *RedisLocker) WithTokenSource(fn func() string) *RedisLocker {
	l.newToken = fn
	return l
}

func roomLockKey(roomID uuid.UUID) string {
	return fmt.Sprintf("lock:room:%s", roomID.String())
}

func (l *RedisLocker) LockRoom(ctx context.Context, roomID uuid.UUID) (func(), error) {
	key := roomLockKey(roomID)
	token := l.newToken()
	deadline := time.Now().Add(l.cfg.MaxWait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.cfg.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return l.releaser(key, token), nil
		}

		if !time.Now().Add(l.cfg.RetryInterval).Before(deadline) {
			return nil, ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.cfg.RetryInterval):
		}
	}
}

func (l *RedisLocker) releaser(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, token) })
	}
}

func (l *RedisLocker) release(key, token string) {
	// The request context may already be cancelled; the lock must still go.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := l.client.Eval(ctx, unlockScript, []string{key}, token).Err(); err != nil {
		l.logger.Warn("room lock release failed", slog.String("key", key), slog.Any("err", err))
	}
}
