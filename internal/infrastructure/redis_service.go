package infrastructure

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisService caches session tokens. When Redis is unreachable at startup
// the service degrades to a disabled client; login and auth still work, only
// the fast validation path is lost.
type RedisService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisService() *RedisService {
	ttl := GetEnvAsDuration("TOKEN_CACHE_TTL", 24*time.Hour)

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if opt, err := redis.ParseURL(redisURL); err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err == nil {
				return &RedisService{client: client, ttl: ttl}
			}
			log.Printf("redis connection via REDIS_URL failed: %v", err)
		}
	}

	host := GetEnvAsString("REDIS_HOST", "localhost")
	port := GetEnvAsString("REDIS_PORT", "6379")
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       GetEnvAsInt("REDIS_DB", 0),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis connection failed: %v (token cache disabled)", err)
		return &RedisService{client: nil, ttl: ttl}
	}

	return &RedisService{client: client, ttl: ttl}
}

func (r *RedisService) SetToken(ctx context.Context, token, userID string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Set(ctx, "token:"+token, userID, r.ttl).Err()
}

func (r *RedisService) GetToken(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", redis.Nil // Redis disabled, behave as a miss
	}
	return r.client.Get(ctx, "token:"+token).Result()
}
