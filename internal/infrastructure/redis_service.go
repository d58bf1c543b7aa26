package infrastructure

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bearh141/todo-list/internal/config"
	"github.com/bearh141/todo-list/internal/logging"
	"github.com/go-redis/redis/v8"
)

// RedisService caches issued session tokens so logout can invalidate
// them before their JWT expiry. When Redis is unreachable the service
// degrades to a no-op and tokens are trusted until they expire.
type RedisService struct {
	client *redis.Client
}

func NewRedisService() *RedisService {
	host := config.GetEnvAsString("REDIS_HOST", "localhost")
	port := config.GetEnvAsString("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")
	db := config.GetEnvAsInt("REDIS_DB", 0)

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		logging.Logger.Warnf("Redis connection failed, token revocation disabled: %v", err)
		return &RedisService{client: nil}
	}

	logging.Logger.Infof("Connected to Redis at %s:%s", host, port)
	return &RedisService{client: client}
}

func (r *RedisService) SetToken(ctx context.Context, token string, userId uint, ttl time.Duration) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Set(ctx, "token:"+token, fmt.Sprint(userId), ttl).Err()
}

// TokenRevoked reports whether a token was invalidated by logout. With
// Redis disabled nothing is ever revoked.
func (r *RedisService) TokenRevoked(ctx context.Context, token string) bool {
	if r.client == nil {
		return false
	}
	err := r.client.Get(ctx, "token:"+token).Err()
	return err == redis.Nil
}

func (r *RedisService) RevokeToken(ctx context.Context, token string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Del(ctx, "token:"+token).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
