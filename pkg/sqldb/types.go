package sqldb

import "time"

// Dialect selects the SQL flavour of the connected database.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Config holds database connection settings.
type Config struct {
	Driver       string // "postgres" or "sqlite"
	DSN          string // postgres URL, sqlite file path, or ":memory:"
	MaxOpenConns int
}

// RetryConfig bounds the retry of statements that hit transient contention.
type RetryConfig struct {
	Attempts int
	Delay    time.Duration
}
