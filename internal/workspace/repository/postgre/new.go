package postgre

import (
	"errors"
	"fmt"
	"time"

	"chat-assistant/internal/workspace/repository"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
)

type implRepository struct {
	db  *sqldb.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQL-backed workspace Repository. Every method runs on the transaction
// carried by ctx when there is one.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("workspace/repository/postgre: db is required")
	}
	return &implRepository{
		db:  db,
		l:   l,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("workspace/repository/postgre.%s", method)
}

func (r *implRepository) storageErr(err, fallback error) error {
	if errors.Is(err, sqldb.ErrStorageContention) || sqldb.IsTransient(err) {
		return repository.ErrStorageContention
	}
	if sqldb.IsUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return fallback
}
