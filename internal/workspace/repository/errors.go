package repository

import (
	"errors"

	"chat-assistant/pkg/sqldb"
)

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrDuplicate      = errors.New("duplicate record")

	ErrStorageContention = sqldb.ErrStorageContention
)
