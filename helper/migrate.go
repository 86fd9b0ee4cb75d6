package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"homestay/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// Action is a migration command understood by Run.
type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

// ParseAction validates a command line argument.
func ParseAction(value string) (Action, error) {
	switch action := Action(value); action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion:
		return action, nil
	default:
		return "", fmt.Errorf("%w %q, use up, down, step-up, drop or version", ErrUnknownAction, value)
	}
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// databaseURL builds the golang-migrate postgres URL for the write database.
func databaseURL(config *config.Config) string {
	write := config.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)
	query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     getDBName(config, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func Run(config *config.Config, action Action) error {
	mig, err := migrate.New(migrationSource, databaseURL(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		version, dirty, verr := mig.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", verr)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current database migration version")

		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", string(action)).Msg("Database migration completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Run(config, ActionUp)
}
