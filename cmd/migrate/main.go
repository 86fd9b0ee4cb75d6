package main

import (
	"os"

	"homestay/config"
	"homestay/helper"
	"homestay/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()
	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	action, err := helper.ParseAction(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration action")
	}

	if err := helper.Run(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
	}
}
