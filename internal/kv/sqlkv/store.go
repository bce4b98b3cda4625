// Package sqlkv stores the key/value records in a SQL database. SQLite
// (modernc.org/sqlite) is the default on-device backend; PostgreSQL (pgx)
// serves shared installations. The schema is created by embedded goose
// migrations.
package sqlkv

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/dbx"
	"github.com/dmitrijs2005/skillverse/internal/filex"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store is a kv.Store over *sql.DB.
type Store struct {
	*Repository
	db      *sql.DB
	dialect dbx.Dialect
}

var _ kv.Store = (*Store)(nil)

// New wraps an already opened database. It does not run migrations.
func New(db *sql.DB, dialect dbx.Dialect) *Store {
	return &Store{
		Repository: NewRepository(db, dialect),
		db:         db,
		dialect:    dialect,
	}
}

// Open connects to the database selected by driver, applies migrations and
// returns a ready Store. For sqlite the DSN is a file path (its directory is
// created on demand) or a "file:" URI.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var (
		db      *sql.DB
		dialect dbx.Dialect
		err     error
	)

	switch driver {
	case DriverSQLite, "":
		if err := ensureParentDir(dsn); err != nil {
			return nil, err
		}
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// single writer; keeps in-memory databases alive between calls
		db.SetMaxOpenConns(1)
		dialect = dbx.DialectSQLite
	case DriverPostgres:
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		dialect = dbx.DialectPostgres
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	s := New(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate applies the embedded schema migrations for the store's dialect.
func (s *Store) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations)

	dir := "migrations/sqlite"
	if s.dialect == dbx.DialectPostgres {
		dir = "migrations/postgres"
	}

	if err := goose.SetDialect(string(s.dialect)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Atomic runs fn inside one transaction. fn must only use the Repository it
// receives.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, r kv.Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewRepository(tx, s.dialect))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}

func ensureParentDir(dsn string) error {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if _, err := filex.EnsureDir(dir); err != nil {
		return fmt.Errorf("prepare store dir: %w", err)
	}
	return nil
}
