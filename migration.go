package migrate

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	errMigrationIsMissing         = errors.New("migration is missing")
	errMigrationNameCannotBeEmpty = errors.New("migration name cannot be empty")
)

// Tx wraps the transaction a migration runs in.
type Tx struct {
	*sql.Tx
}

// Direction is the way a migration is applied.
type Direction string

const (
	// Up applies the schema change.
	Up Direction = "up"
	// Down reverts the schema change.
	Down Direction = "down"
)

// ParseDirection normalizes the command to lower case and maps it to a Direction.
func ParseDirection(command string) (Direction, error) {
	switch d := Direction(strings.ToLower(command)); d {
	case Up, Down:
		return d, nil
	default:
		return "", fmt.Errorf("%q: %w", command, ErrInvalidCommand)
	}
}

// Migration defines a single reversible schema change.
type Migration struct {
	Name string

	Up   func(tx Tx) error
	Down func(tx Tx) error
}

func (m *Migration) txFunc(direction Direction) func(tx Tx) error {
	if direction == Down {
		return m.Down
	}

	return m.Up
}

func validateMigration(m *Migration) error {
	if m == nil {
		return fmt.Errorf("no migration specified: %w", errMigrationIsMissing)
	}

	if m.Name == "" {
		return fmt.Errorf("migration name cannot be empty: %w", errMigrationNameCannotBeEmpty)
	}

	if m.Up == nil || m.Down == nil {
		return fmt.Errorf("%s both up and down specifications are required: %w",
			m.Name,
			errMigrationIsMissing,
		)
	}

	return nil
}
