package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"livecity/config"
	"livecity/migrations"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(write.Username, write.Password),
		Host:   net.JoinHostPort(write.Host, write.Port),
		Path:   config.DB.Postgres.Prefix + write.Name,
	}

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)
	query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	var step func(mig *migrate.Migrate) error

	switch action {
	case ActionUp:
		step = (*migrate.Migrate).Up
	case ActionDown:
		step = func(mig *migrate.Migrate) error { return mig.Steps(-1) }
	case ActionStepUp:
		step = func(mig *migrate.Migrate) error { return mig.Steps(1) }
	case ActionDrop:
		step = (*migrate.Migrate).Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
