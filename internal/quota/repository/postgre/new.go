package postgre

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"chat-assistant/internal/quota/repository"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
)

type implRepository struct {
	db    *sqldb.DB
	l     log.Logger
	retry sqldb.RetryConfig
	sf    singleflight.Group
	now   func() time.Time
}

// New creates a SQL-backed quota Repository. The statements run unchanged on
// PostgreSQL and SQLite.
func New(db *sqldb.DB, l log.Logger, retry sqldb.RetryConfig) repository.Repository {
	if db == nil {
		panic("quota/repository/postgre: db is required")
	}
	return &implRepository{
		db:    db,
		l:     l,
		retry: retry,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("quota/repository/postgre.%s", method)
}

// storageErr keeps contention distinguishable and hides everything else behind fallback.
func (r *implRepository) storageErr(err, fallback error) error {
	if errors.Is(err, sqldb.ErrStorageContention) {
		return repository.ErrStorageContention
	}
	return fallback
}
