package repository

import (
	"errors"

	"chat-assistant/pkg/sqldb"
)

var (
	ErrFailedToInsert = errors.New("failed to insert quota usage")
	ErrFailedToGet    = errors.New("failed to get quota usage")
	ErrFailedToList   = errors.New("failed to list quota usages")
	ErrFailedToUpdate = errors.New("failed to update quota usage")

	ErrStorageContention = sqldb.ErrStorageContention
)
