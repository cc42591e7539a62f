// Package migrate applies the auth schema (users and auth_sessions) to
// Postgres from embedded SQL files using golang-migrate.
package migrate

import (
	"errors"
	"fmt"

	"conversia/backend/internal/db"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Direction selects whether Run applies or rolls back the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ErrNoChange is returned when the schema is already at the target version.
var ErrNoChange = migrate.ErrNoChange

// Run migrates the database at dsn in the given direction. ErrNoChange is
// surfaced so callers can report "already up to date" instead of silence;
// every other error means the schema state is unknown and must be inspected.
func Run(dsn string, direction Direction) error {
	if dsn == "" {
		return errors.New("migrate: DATABASE_URL is not set")
	}
	switch direction {
	case Up, Down:
	default:
		return fmt.Errorf("migrate: direction must be %q or %q, got %q", Up, Down, direction)
	}

	src, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate: read embedded schema: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("migrate: open database: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if direction == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	return err
}
