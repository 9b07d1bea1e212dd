package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the product list cache, or nil when no
// Redis is configured or reachable. Callers must tolerate a nil client.
func ConnectRedis(cfg *Config) *redis.Client {
	var opt *redis.Options
	switch {
	case cfg.RedisURL != "":
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return nil
		}
		opt = parsedOpt
	case cfg.RedisAddr != "":
		opt = &redis.Options{Addr: cfg.RedisAddr}
	default:
		log.Println("Redis not configured, running without cache")
		return nil
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}
