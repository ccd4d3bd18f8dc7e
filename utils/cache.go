// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"mindhaven/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// ResetTokenCacheClient is the dedicated client for password-reset tokens.
	ResetTokenCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitResetTokenCache initializes the Redis client for password-reset tokens
// (separate DB so expiry scans never touch general cache keys).
func InitResetTokenCache() {
	ResetTokenCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisResetTokenDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ResetTokenCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Reset Tokens): %v", err)
	}
}

// GetResetTokenCacheClient returns the Redis client for password-reset tokens.
func GetResetTokenCacheClient() *redis.Client {
	if ResetTokenCacheClient == nil {
		InitResetTokenCache()
	}
	return ResetTokenCacheClient
}
