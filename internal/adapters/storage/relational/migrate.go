package relational

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

// MigrateUp aplica las migraciones pendientes del dialecto. Estar al día no es error.
// En sqlite migra sobre db; en Postgres abre un pool propio con opts.DSN y lo cierra al terminar.
func MigrateUp(db *sql.DB, opts Options) error {
	return withMigrate(db, opts, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil
	})
}

// SchemaVersion devuelve la versión aplicada y si quedó sucia.
func SchemaVersion(db *sql.DB, opts Options) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := withMigrate(db, opts, func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = m.Version()
		return err
	})
	return version, dirty, err
}

// withMigrate arma una instancia de migrate, corre fn y libera todo lo que la instancia tomó,
// sin cerrar db.
func withMigrate(db *sql.DB, opts Options, fn func(m *migrate.Migrate) error) error {
	sourceDriver, err := iofs.New(migrationFiles, "migrations/"+string(opts.Driver))
	if err != nil {
		return fmt.Errorf("failed to create source driver: %w", err)
	}

	switch opts.Driver {
	case DriverSQLite:
		return migrateSQLite(db, sourceDriver, fn)
	case DriverPostgres:
		return migratePostgres(opts.DSN, sourceDriver, fn)
	default:
		sourceDriver.Close()
		return fmt.Errorf("unknown sql driver %q", opts.Driver)
	}
}

// El driver sqlite no retiene conexiones, pero su Close cierra db (que puede ser :memory:):
// sólo se cierra la fuente.
func migrateSQLite(db *sql.DB, sourceDriver source.Driver, fn func(m *migrate.Migrate) error) error {
	defer sourceDriver.Close()

	dbDriver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return fn(m)
}

// El driver pgx5 toma una *sql.Conn hasta Close y Close cierra también su *sql.DB,
// así que trabaja sobre un pool descartable.
func migratePostgres(dsn string, sourceDriver source.Driver, fn func(m *migrate.Migrate) error) error {
	if strings.TrimSpace(dsn) == "" {
		sourceDriver.Close()
		return fmt.Errorf("postgres dsn required")
	}
	mdb, err := sql.Open("pgx", dsn)
	if err != nil {
		sourceDriver.Close()
		return err
	}

	dbDriver, err := migratepgx.WithInstance(mdb, &migratepgx.Config{})
	if err != nil {
		sourceDriver.Close()
		_ = mdb.Close()
		return fmt.Errorf("failed to create database driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, "pgx5", dbDriver)
	if err != nil {
		sourceDriver.Close()
		_ = dbDriver.Close()
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	return fn(m)
}
