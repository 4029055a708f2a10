package notification

import "time"

// Notification tells a user that something happened to one of their entities.
// At most one exists per (EntityType, EntityID).
type Notification struct {
	ID         string
	UserID     string
	EntityType string
	EntityID   string
	Message    string
	Read       bool
	CreatedAt  time.Time
}

// --- UseCase Inputs ---

type RecordInput struct {
	EntityType string
	EntityID   string
	Message    string
}

type ListInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// --- UseCase Outputs ---

type RecordOutput struct {
	Notification Notification
	// Created is false when a notification for the entity already existed.
	Created bool
}

type ListOutput struct {
	Notifications []Notification
	Limit         int
	Offset        int
}
