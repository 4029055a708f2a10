package repository

import (
	"errors"

	"chat-assistant/pkg/sqldb"
)

var (
	ErrFailedToInsert = errors.New("failed to insert interaction")
	ErrFailedToGet    = errors.New("failed to get interaction")
	ErrFailedToList   = errors.New("failed to list interactions")
	ErrFailedToUpdate = errors.New("failed to update interaction")

	// ErrStorageContention means the bounded retry on a transient lock/serialization
	// failure was exhausted.
	ErrStorageContention = sqldb.ErrStorageContention
)
