package postgre

import (
	"errors"
	"fmt"
	"time"

	"chat-assistant/internal/interaction/repository"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
)

type implRepository struct {
	db    *sqldb.DB
	l     log.Logger
	retry sqldb.RetryConfig
	now   func() time.Time
}

// New creates a SQL-backed interaction Repository.
func New(db *sqldb.DB, l log.Logger, retry sqldb.RetryConfig) repository.Repository {
	if db == nil {
		panic("interaction/repository/postgre: db is required")
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
	return fmt.Sprintf("interaction/repository/postgre.%s", method)
}

func (r *implRepository) storageErr(err, fallback error) error {
	if errors.Is(err, sqldb.ErrStorageContention) || sqldb.IsTransient(err) {
		return repository.ErrStorageContention
	}
	return fallback
}
