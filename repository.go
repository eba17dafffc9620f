package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

type repository interface {
	ApplyMigration(ctx context.Context, txFunc func(Tx) error) error
	Close() error
}

type repoOpener func(ctx context.Context, opt Options) (repository, error)

type repo struct {
	db   *sql.DB
	conn *sql.Conn
}

// newRepo opens a handle limited to one connection and checks that connection out,
// so every statement of the run goes over the same session.
func newRepo(ctx context.Context, opt Options) (repository, error) {
	db, err := sql.Open(opt.driverName(), opt.databaseURI())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrConnection, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("%w: failed to connect to database: %w", ErrConnection, err)
	}

	return &repo{db: db, conn: conn}, nil
}

func (r *repo) ApplyMigration(ctx context.Context, txFunc func(Tx) error) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: starting transaction: %w", ErrExecution, err)
	}

	if err = txFunc(Tx{tx}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("%w: failed to rollback after failed transaction: %w",
				ErrExecution, errors.Join(err, rollbackErr))
		}

		return fmt.Errorf("%w: failed to apply the migration (rolled back successfully though): %w", ErrExecution, err)
	}

	if err = tx.Commit(); err != nil {
		// Commit failure already aborts the transaction; ErrTxDone is expected here.
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: failed to rollback after failed commit: %w",
				ErrExecution, errors.Join(err, rollbackErr))
		}

		return fmt.Errorf("%w: failed to commit the transaction: %w", ErrExecution, err)
	}

	return nil
}

// Close releases the connection and the handle behind it.
func (r *repo) Close() error {
	connErr := r.conn.Close()
	dbErr := r.db.Close()

	if err := errors.Join(connErr, dbErr); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
