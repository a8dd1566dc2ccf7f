/*
# Module: cache/redis.go
Redis-backed TTL cache for deployments with shared cache infrastructure.

## Linked Modules
- [cache/cache](./cache.go) - Cache interface

## Tags
cache, redis, ttl

## Exports
RedisCache, NewRedisCache

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "cache/redis.go" ;
    code:description "Redis-backed TTL cache" ;
    code:linksTo [
        code:name "cache/cache" ;
        code:path "./cache.go" ;
        code:relationship "Cache interface"
    ] ;
    code:exports :RedisCache, :NewRedisCache ;
    code:tags "cache", "redis", "ttl" .
<!-- End LinkedDoc RDF -->
*/
package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis with a fixed TTL
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the Redis instance at redisURL and returns a
// cache whose entries expire after ttl
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get returns the cached value for key if present
func (c *RedisCache) Get(key string) ([]byte, bool) {
	value, err := c.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("⚠️  Redis get failed: %v", err)
		}
		return nil, false
	}
	return value, true
}

// Set stores value under key for the cache TTL
func (c *RedisCache) Set(key string, value []byte) {
	if err := c.client.Set(context.Background(), key, value, c.ttl).Err(); err != nil {
		log.Printf("⚠️  Redis set failed: %v", err)
	}
}
