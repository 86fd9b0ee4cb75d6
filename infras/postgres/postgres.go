package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"homestay/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads from writes. Booking creation and every other transaction run on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// endpoint mirrors the read and write blocks of the postgres configuration.
type endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	Timezone string
	SSLMode  string
}

func New(config *config.Config) *Connection {
	conn := &Connection{
		Read:  connect("read", config, endpoint(config.DB.Postgres.Read)),
		Write: connect("write", config, endpoint(config.DB.Postgres.Write)),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Int("maxRetry", config.DB.Postgres.MaxRetry).Msg("Failed to connect to database")
	}

	return conn
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Warn().Err(err).Str("name", name).Msg("Failed to close database connection")
		}
	}
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// buildDSN builds the lib/pq connection URL. The session time zone falls back to the app time zone so
// date-only check-in and check-out columns agree with the calendar used by the front desk.
func buildDSN(config *config.Config, e endpoint) string {
	query := url.Values{}
	query.Set("sslmode", e.SSLMode)

	timezone := e.Timezone
	if timezone == "" {
		timezone = config.App.Timezone
	}

	if timezone != "" {
		query.Set("timezone", timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     getDBName(config, e.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(name string, config *config.Config, e endpoint) *sqlx.DB {
	dsn := buildDSN(config, e)
	dbName := getDBName(config, e.Name)

	for retry := range config.DB.Postgres.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", e.Host).
				Str("port", e.Port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", e.Host).
			Str("port", e.Port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	return nil
}
