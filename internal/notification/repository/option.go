package repository

type CreateOptions struct {
	UserID     string
	EntityType string
	EntityID   string
	Message    string
}

type ListOptions struct {
	UserID     string
	UnreadOnly bool
	Limit      int
	Offset     int
}

// MarkReadOptions marks a notification read only when it belongs to UserID.
type MarkReadOptions struct {
	ID     string
	UserID string
}
