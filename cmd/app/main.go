package main

import (
	"homestay/config"
	"homestay/di"
	"homestay/helper"
	"homestay/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Homestay Booking API
// @version 1.0
// @description Front desk API for homestays, rooms, leads and bookings.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
