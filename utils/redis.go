package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisCtx    = context.Background()
)

// InitRedis connects the shared Redis client used for reset tokens and
// dashboard stat caching.
func InitRedis() error {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	redisClient = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	if err := redisClient.Ping(redisCtx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("✅ Redis connection established")
	return nil
}

// SetToken stores a value under key with a TTL.
func SetToken(key, value string, ttl time.Duration) error {
	if redisClient == nil {
		return fmt.Errorf("redis not initialized")
	}
	return redisClient.Set(redisCtx, key, value, ttl).Err()
}

// GetToken fetches a value previously stored with SetToken.
func GetToken(key string) (string, error) {
	if redisClient == nil {
		return "", fmt.Errorf("redis not initialized")
	}
	return redisClient.Get(redisCtx, key).Result()
}

// DeleteToken removes a key.
func DeleteToken(key string) error {
	if redisClient == nil {
		return fmt.Errorf("redis not initialized")
	}
	return redisClient.Del(redisCtx, key).Err()
}

// CacheJSON stores a serialized payload with a short TTL. Used for the
// district summary cache; failures are non-fatal for callers.
func CacheJSON(key string, payload []byte, ttl time.Duration) error {
	if redisClient == nil {
		return fmt.Errorf("redis not initialized")
	}
	return redisClient.Set(redisCtx, key, payload, ttl).Err()
}

// GetCachedJSON returns a cached payload or redis.Nil when absent.
func GetCachedJSON(key string) ([]byte, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("redis not initialized")
	}
	return redisClient.Get(redisCtx, key).Bytes()
}
