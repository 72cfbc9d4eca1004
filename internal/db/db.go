package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"fitcircle/internal/apperror"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func RunMigrations(db *sqlx.DB, migrationsPath string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func Exists(ctx context.Context, db sqlx.QueryerContext, query string, args ...interface{}) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, db, &exists, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return exists, err
}

// NotFoundOr translates sql.ErrNoRows into a not-found domain error and
// wraps anything else.
func NotFoundOr(err error, op, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound(op, "%s not found", what)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CheckVersion reports a conflict when an optimistic update touched no rows,
// meaning the row changed (or vanished) since it was loaded.
func CheckVersion(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return apperror.Conflict(op, "record was modified concurrently, reload and retry")
	}
	return nil
}

// ConflictRetries is how many times RetryOnConflict runs fn before giving up.
const ConflictRetries = 3

// RetryOnConflict re-runs a load-mutate-save cycle while it keeps losing the
// optimistic version check.
func RetryOnConflict(ctx context.Context, fn func() error) error {
	var err error
	for i := 0; i < ConflictRetries; i++ {
		if err = fn(); !errors.Is(err, apperror.ErrConflict) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// ConstraintOr maps postgres constraint violations to domain errors and
// wraps anything else.
func ConstraintOr(err error, op, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperror.Conflict(op, "%s already exists", what)
		case pqForeignKeyViolation:
			return apperror.InvalidState(op, "%s is still referenced or references a missing row", what)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
