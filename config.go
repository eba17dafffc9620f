package migrate

import (
	"strings"
)

// Mode selects which database the migration targets.
type Mode string

const (
	// ModeProduction uses the connection string supplied through Options.DatabaseURI.
	ModeProduction Mode = "production"
	// ModeTest uses the local test database unless DatabaseURI overrides it.
	ModeTest Mode = "test"
)

// TestDatabaseURI is the fixed local endpoint used in test mode.
const TestDatabaseURI = "postgresql://root@root_db:26257/test_db"

const (
	// DriverPQ is the lib/pq database/sql driver.
	DriverPQ = "postgres"
	// DriverPGX is the jackc/pgx database/sql driver.
	DriverPGX = "pgx"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvMode             = "APP_ENV"
	EnvConnectionString = "DB_CONNECTION_STRING"
	EnvDriver           = "DB_DRIVER"

	// EnvTestConnectionString overrides TestDatabaseURI in test mode.
	EnvTestConnectionString = "TEST_DB_CONNECTION_STRING"
)

// OptionsFromEnv builds Options from the environment. getenv is usually os.Getenv.
// DB_CONNECTION_STRING is never read in test mode.
func OptionsFromEnv(getenv func(string) string) Options {
	opt := Options{
		Mode:       ModeProduction,
		DriverName: getenv(EnvDriver),
	}

	if strings.EqualFold(getenv(EnvMode), string(ModeTest)) {
		opt.Mode = ModeTest
		opt.DatabaseURI = getenv(EnvTestConnectionString)

		return opt
	}

	opt.DatabaseURI = getenv(EnvConnectionString)

	return opt
}

// databaseURI resolves the connection string for the configured mode.
func (o Options) databaseURI() string {
	if o.Mode == ModeTest && o.DatabaseURI == "" {
		return TestDatabaseURI
	}

	return o.DatabaseURI
}

func (o Options) driverName() string {
	if o.DriverName == "" {
		return DriverPQ
	}

	return o.DriverName
}
