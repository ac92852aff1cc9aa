package utils

import (
	"context"
	"log"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/config"

	"github.com/go-redis/redis/v8"
)

// Two separate logical DBs on the same Redis instance: general caching and
// auth-token hashes. Keeping them apart lets the auth DB be flushed on a
// credential incident without dropping the cache.
var (
	CacheClient     *redis.Client
	AuthCacheClient *redis.Client
)

func newRedisClient(db int, purpose string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis (%s) unreachable at %s: %v", purpose, config.AppConfig.RedisAddr, err)
	}
	return client
}

// InitCache connects the general-purpose cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
}

// InitAuthCache connects the auth-token cache client.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth cache")
}

// GetCacheClient returns the general cache client, connecting lazily.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// GetAuthCacheClient returns the auth cache client, connecting lazily.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
