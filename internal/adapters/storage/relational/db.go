package relational

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver elige el dialecto SQL.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// ParseDriver acepta también "pgx" y "sqlite3" como alias.
func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unknown sql driver %q", s)
	}
}

// Options configura la base relacional.
type Options struct {
	Driver Driver
	// DSN de Postgres. Ignorado para sqlite.
	DSN string
	// Path del archivo sqlite; "" o ":memory:" es una base en memoria.
	Path string
	// ForeignKeys activa la cascada del motor en sqlite. Con false el adapter limpia a mano.
	// Postgres siempre corre con foreign keys.
	ForeignKeys bool
}

// openDB abre el pool y verifica conectividad.
func openDB(ctx context.Context, opts Options) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch opts.Driver {
	case DriverPostgres:
		if strings.TrimSpace(opts.DSN) == "" {
			return nil, fmt.Errorf("postgres dsn required")
		}
		db, err = sql.Open("pgx", opts.DSN)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	case DriverSQLite:
		db, err = sql.Open("sqlite", sqliteDSN(opts))
		if err != nil {
			return nil, err
		}
		// una sola conexión: serializa escrituras y mantiene viva la base :memory:
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	default:
		return nil, fmt.Errorf("unknown sql driver %q", opts.Driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func sqliteDSN(opts Options) string {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = ":memory:"
	}
	fk := 0
	if opts.ForeignKeys {
		fk = 1
	}
	return path + "?_pragma=foreign_keys(" + strconv.Itoa(fk) + ")&_pragma=busy_timeout(5000)"
}

// rebind pasa los placeholders "?" a "$n" para Postgres.
func rebind(d Driver, query string) string {
	if d != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// querier es lo común entre *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
