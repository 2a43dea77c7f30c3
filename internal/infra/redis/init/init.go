package infra_redis_init

import (
	"log"
	"net"

	"github.com/go-redis/redis"
	"github.com/indicai/core/internal/config"
)

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}

	return client
}
