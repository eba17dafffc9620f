// Command users-migrate applies or reverts the users table migration.
//
//	users-migrate up|down
//
// APP_ENV=test targets the local test database, otherwise DB_CONNECTION_STRING is used.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	migrate "github.com/lawzava/users-migrate"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

var errMissingDirection = errors.New("usage: users-migrate up|down")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	err := run(context.Background(), os.Args[1:], os.Getenv)
	if err != nil {
		log.Error().Err(err).Msg("migration failed")
	}

	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errMissingDirection):
		return exitUsage
	default:
		return exitFailure
	}
}

func run(ctx context.Context, args []string, getenv func(string) string) error {
	if len(args) < 1 {
		return errMissingDirection
	}

	if _, err := migrate.ParseDirection(args[0]); err != nil {
		return err
	}

	m, err := migrate.New(migrate.OptionsFromEnv(getenv), migrate.UsersTable())
	if err != nil {
		return err
	}

	return m.Migrate(ctx, args[0])
}
