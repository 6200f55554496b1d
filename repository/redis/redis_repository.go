package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	AcquireCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type redis struct {
	client *goredis.Client
}

// ErrNil is returned by GetSession when the session does not exist.
var ErrNil = goredis.Nil

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

const (
	sessionPrefix  = "session:"
	ratePrefix     = "ratelimit:"
	cooldownPrefix = "cooldown:"
)

// incrWindowScript increments the counter and starts its window on first hit.
var incrWindowScript = goredis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	return r.client.Get(ctx, sessionPrefix+sessionID).Result()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// IncrWindow counts hits on key inside a fixed window and returns the count so far.
func (r *redis) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	return incrWindowScript.Run(ctx, r.client, []string{ratePrefix + key}, window.Milliseconds()).Int64()
}

// AcquireCooldown returns false while a previous acquisition of key is still live.
func (r *redis) AcquireCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, cooldownPrefix+key, 1, ttl).Result()
}
