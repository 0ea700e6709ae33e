package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Database represents the database connection
type Database struct {
	DB     *sqlx.DB
	driver string
}

// Open connects to the database and applies all pending migrations.
// For sqlite the dsn is a file path (or ":memory:"), for postgres a connection URL.
func Open(ctx context.Context, driver, dsn string) (*Database, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	switch driver {
	case DriverSQLite:
		if dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		conn, err = sqlx.ConnectContext(ctx, "sqlite", sqliteDSN(dsn))
		if err == nil {
			// sqlite serializes writers; a single connection also keeps :memory: databases shared
			conn.SetMaxOpenConns(1)
		}
	case DriverPostgres:
		conn, err = sqlx.ConnectContext(ctx, "postgres", dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return &Database{DB: conn, driver: driver}, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
}

func newProvider(conn *sqlx.DB, driver string) (*goose.Provider, error) {
	dialect := goose.DialectPostgres
	if driver == DriverSQLite {
		dialect = goose.DialectSQLite3
	}

	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, conn.DB, migrations,
		goose.WithLogger(goose.NopLogger()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating migration provider: %w", err)
	}
	return provider, nil
}

func migrate(conn *sqlx.DB, driver string) error {
	provider, err := newProvider(conn, driver)
	if err != nil {
		return err
	}

	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the latest applied migration version
func (d *Database) SchemaVersion(ctx context.Context) (int64, error) {
	provider, err := newProvider(d.DB, d.driver)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}

// Ping checks the connection is alive
func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Driver returns the configured driver name
func (d *Database) Driver() string {
	return d.driver
}

// Close terminates the database connection
func (d *Database) Close() error {
	if err := d.DB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
