package redis

import (
	"context"
	"net"
	"time"

	"homestay/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	}
}

// New connects to the primary instance backing the read cache and the rate limiter.
func New(config *config.Config) *goRedis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	client := goRedis.NewClient(Options(config))

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", client.Options().Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", config.Cache.Redis.Primary.DB).
		Str("addr", client.Options().Addr).
		Msg("Connected to Redis")

	return client
}
