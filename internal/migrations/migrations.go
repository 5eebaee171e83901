package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrationFiles holds the versioned schema files.
//
//go:embed *.sql
var MigrationFiles embed.FS

// SchemaTables lists the tables the catalog and sales history live in.
var SchemaTables = []string{"products", "sales"}

const queryTableExists = `
	SELECT EXISTS (
		SELECT 1 FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = $1
	)`

// RunMigrations brings the products/sales schema up to date and then checks
// that every table in SchemaTables exists. With autoMigrate false nothing is
// applied, but the table check still runs so a stale database fails at startup.
func RunMigrations(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	version, err := currentVersion(m)
	if err != nil {
		return err
	}

	if autoMigrate {
		if err := applyUp(m, version); err != nil {
			return err
		}
	} else {
		slog.Info("[Migrations] Auto-migration disabled", "current_version", version)
	}

	return CheckTables(db)
}

// CheckTables reports every table from SchemaTables missing in the current schema.
func CheckTables(db *sql.DB) error {
	var missing []string
	for _, table := range SchemaTables {
		var exists bool
		if err := db.QueryRow(queryTableExists, table).Scan(&exists); err != nil {
			return fmt.Errorf("check table %s: %w", table, err)
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("open migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// currentVersion returns the applied version, forcing it clean first if a
// previous run was interrupted. Version 0 means nothing has been applied.
func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read migration version: %w", err)
	}

	if dirty {
		slog.Warn("[Migrations] Interrupted migration, forcing version", "version", version)
		// Schema files use IF NOT EXISTS, so replaying from here is safe.
		if err := m.Force(int(version)); err != nil {
			return 0, fmt.Errorf("force version %d: %w", version, err)
		}
	}
	return version, nil
}

func applyUp(m *migrate.Migrate, from uint) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("[Migrations] Schema up to date", "version", from)
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	slog.Info("[Migrations] Applied", "from_version", from, "to_version", to)
	return nil
}
