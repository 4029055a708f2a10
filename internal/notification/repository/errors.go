package repository

import (
	"errors"

	"chat-assistant/pkg/sqldb"
)

var (
	ErrFailedToInsert = errors.New("failed to insert notification")
	ErrFailedToGet    = errors.New("failed to get notification")
	ErrFailedToList   = errors.New("failed to list notifications")
	ErrFailedToUpdate = errors.New("failed to update notification")

	ErrStorageContention = sqldb.ErrStorageContention
)
