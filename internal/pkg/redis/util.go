package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotInitialized is returned when a helper is called before InitRedis.
// Callers treat it like any other cache failure and fall back to the database.
var ErrNotInitialized = errors.New("redis client is not initialized")

// SetWithExpiration sets a key with a TTL.
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue reads a string value; a missing key yields "" without an error.
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", ErrNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetInt64 reads an integer value; a missing key is an error so callers can
// distinguish a cache miss from a cached zero.
func GetInt64(ctx context.Context, key string) (int64, error) {
	if Rdb == nil {
		return 0, ErrNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

func Exists(ctx context.Context, key string) (bool, error) {
	if Rdb == nil {
		return false, ErrNotInitialized
	}
	n, err := Rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func IncrBy(ctx context.Context, key string, delta int64) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.IncrBy(ctx, key, delta).Err()
}

func SAdd(ctx context.Context, key string, members ...interface{}) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.SAdd(ctx, key, members...).Err()
}

func GetSet(ctx context.Context, key string) ([]string, error) {
	if Rdb == nil {
		return nil, ErrNotInitialized
	}
	return Rdb.SMembers(ctx, key).Result()
}

func Rename(ctx context.Context, oldKey string, newKey string) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Rename(ctx, oldKey, newKey).Err()
}

func Expire(ctx context.Context, key string, ttl time.Duration) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Expire(ctx, key, ttl).Err()
}

func DeleteKey(ctx context.Context, keys ...string) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Del(ctx, keys...).Err()
}
