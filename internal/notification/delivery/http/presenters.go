package http

import (
	"time"

	"chat-assistant/internal/notification"
)

// --- Request DTOs ---

type listReq struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      *int `form:"limit"  binding:"omitempty,min=1,max=200"`
	Offset     int  `form:"offset" binding:"omitempty,min=0"`
}

func (r listReq) toInput() notification.ListInput {
	input := notification.ListInput{UnreadOnly: r.UnreadOnly, Offset: r.Offset}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	return input
}

type markReadReq struct {
	ID string `uri:"id" binding:"required"`
}

// --- Response DTOs ---

type notificationResp struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

type unreadCountResp struct {
	Unread int `json:"unread"`
}

func (h *handler) newListResp(out notification.ListOutput) listResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = notificationResp{
			ID:         n.ID,
			EntityType: n.EntityType,
			EntityID:   n.EntityID,
			Message:    n.Message,
			Read:       n.Read,
			CreatedAt:  n.CreatedAt,
		}
	}
	return listResp{Notifications: items, Limit: out.Limit, Offset: out.Offset}
}
