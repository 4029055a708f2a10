package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// DB wraps *sql.DB with the dialect it talks to.
type DB struct {
	*sql.DB
	dialect Dialect
}

// Executor is the subset of *sql.DB / *sql.Tx used by repositories.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open connects to the configured database, applies pending migrations and returns the handle.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	var (
		driverName string
		dialect    Dialect
	)
	switch cfg.Driver {
	case "postgres", "postgresql", "pgx":
		driverName, dialect = "pgx", DialectPostgres
	case "sqlite", "sqlite3":
		driverName, dialect = "sqlite", DialectSQLite
	default:
		return nil, fmt.Errorf("sqldb: unsupported driver %q", cfg.Driver)
	}

	sqlDB, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if dialect == DialectSQLite {
		// One connection: writes serialize in-process and ":memory:" stays a single database.
		sqlDB.SetMaxOpenConns(1)
		for _, pragma := range []string{
			"PRAGMA busy_timeout = 5000",
			"PRAGMA journal_mode = WAL",
			"PRAGMA foreign_keys = ON",
		} {
			if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
				sqlDB.Close()
				return nil, fmt.Errorf("%s: %w", pragma, err)
			}
		}
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	db := &DB{DB: sqlDB, dialect: dialect}
	if err := db.Migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// Dialect returns the SQL flavour of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Rebind converts '?' placeholders to the dialect's positional form.
// Queries in this codebase never carry a literal '?' inside string constants.
func (db *DB) Rebind(query string) string {
	if db.dialect != DialectPostgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}

// Conn returns the transaction carried by ctx, or the pool when there is none.
func (db *DB) Conn(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db.DB
}
