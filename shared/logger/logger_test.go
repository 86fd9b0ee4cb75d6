package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"homestay/config"
	"homestay/shared/constant"
	"homestay/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment

	logger.InitLogger(cfg)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestNew(t *testing.T) {
	restore(t)

	t.Run("json outside development", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvProduction
		cfg.App.Name = "homestay"

		var buf bytes.Buffer

		l := logger.New(cfg, &buf)
		l.Info().Str("reference", "BKG-2025-0001").Msg("Booking created")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "homestay", line["service"])
		assert.Equal(t, "BKG-2025-0001", line["reference"])
		assert.Equal(t, "Booking created", line["message"])
	})

	t.Run("console in development", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvDevelopment

		var buf bytes.Buffer

		l := logger.New(cfg, &buf)
		l.Info().Msg("Booking created")

		assert.Contains(t, buf.String(), "Booking created")
		assert.False(t, json.Valid(buf.Bytes()))
	})
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("room 101 is already booked"))

	assert.Contains(t, buf.String(), "room 101 is already booked")
}

func TestSetLogLevel(t *testing.T) {
	restore(t)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "trace level", logLevel: "trace", expectedLevel: zerolog.TraceLevel},
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "disabled level", logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{name: "invalid level defaults to trace", logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
		{name: "empty level defaults to trace", logLevel: "", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.Logger = log.Output(&buf)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
