package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies the pending schema migrations found in
// migrationsPath. Already applied migrations are not an error.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err := checkSchema(version, dirty, err); err != nil {
		return err
	}
	log.Printf("✅ Migrations applied (version=%d)", version)
	return nil
}

var errDirtySchema = errors.New("schema is dirty, fix it and force the version before starting")

// checkSchema refuses to start on a half-applied migration.
func checkSchema(version uint, dirty bool, err error) error {
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration version %d: %w", version, errDirtySchema)
	}
	return nil
}
