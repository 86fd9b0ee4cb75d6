package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"homestay/config"
	"homestay/di"
	"homestay/shared/logger"

	"github.com/rs/zerolog/log"
)

// The worker applies lead conversion events published by the API when Kafka is enabled.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("Kafka is disabled, lead conversions are applied by the API directly")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeConsumer()

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Lead conversion consumer stopped")
	}

	log.Info().Msg("Lead conversion consumer shut down")
}
