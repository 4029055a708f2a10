package repository

import (
	"context"

	"chat-assistant/internal/notification"
)

// Repository is the notification data store.
type Repository interface {
	// Create inserts unless a notification for (EntityType, EntityID) exists; the bool
	// reports whether a row was inserted.
	Create(ctx context.Context, opt CreateOptions) (notification.Notification, bool, error)
	ExistsForEntity(ctx context.Context, entityType, entityID string) (bool, error)
	// GetOne returns a zero value (ID == "") when the id does not exist.
	GetOne(ctx context.Context, id string) (notification.Notification, error)
	List(ctx context.Context, opt ListOptions) ([]notification.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, opt MarkReadOptions) (bool, error)
}
