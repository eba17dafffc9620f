package migrate

import (
	"fmt"
)

const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			surname VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			propic_url VARCHAR(255) DEFAULT NULL
		)`

	dropUsersTable = `DROP TABLE IF EXISTS users CASCADE`
)

// UsersTable creates the users table on the way up and drops it, along with
// everything depending on it, on the way down. Both directions are idempotent.
func UsersTable() *Migration {
	return &Migration{
		Name: "Create Users Table",
		Up: func(tx Tx) error {
			_, err := tx.Exec(createUsersTable)
			if err != nil {
				return fmt.Errorf("failed to create users table: %w", err)
			}

			return nil
		},
		Down: func(tx Tx) error {
			_, err := tx.Exec(dropUsersTable)
			if err != nil {
				return fmt.Errorf("failed to drop users table: %w", err)
			}

			return nil
		},
	}
}
