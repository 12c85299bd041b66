package database

import (
	"context"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis returns a redis client when REDIS_ADDR is set, nil otherwise.
// Callers fall back to the in-memory session store on nil.
func ConnectRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
