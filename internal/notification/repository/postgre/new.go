package postgre

import (
	"fmt"
	"time"

	"chat-assistant/internal/notification/repository"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
)

type implRepository struct {
	db  *sqldb.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQL-backed notification Repository.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("notification/repository/postgre: db is required")
	}
	return &implRepository{
		db:  db,
		l:   l,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("notification/repository/postgre.%s", method)
}
