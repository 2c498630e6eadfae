package postgres

//nolint:revive
import (
	"errors"
	"livecity/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. Bookings cannot be stored or reminded
// without a database, so failing to connect after the retries is fatal.
func New(config *config.Config) *Connection {
	conn := &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Int("maxRetry", config.DB.Postgres.MaxRetry).Msg("Could not connect to database")
	}

	return conn
}

// Close releases both pools.
func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(
		"write",
		descriptor(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode, write.Timezone),
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(
		"read",
		descriptor(read.Username, read.Password, read.Host, read.Port, getDBName(config, read.Name), read.SSLMode, read.Timezone),
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

func descriptor(username, password, host, port, dbName, sslMode, timezone string) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(username, password),
		Host:   net.JoinHostPort(host, port),
		Path:   dbName,
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)

	if timezone != "" {
		query.Set("timezone", timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// CreatePostgresConnection connects with retries and returns nil once they are exhausted.
func CreatePostgresConnection(name, dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.Info().Str("name", name).Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
