package http

import (
	"chat-assistant/internal/quota"
	"chat-assistant/pkg/response"
)

// --- Request DTOs ---

// Limit is a pointer so an explicit limit=0 is rejected instead of read as "unset".
type historyReq struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=366"`
}

func (r historyReq) toInput() quota.HistoryInput {
	var input quota.HistoryInput
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	return input
}

// --- Response DTOs ---

type usageResp struct {
	Date      response.Date `json:"date" swaggertype:"string" example:"2024-05-01"`
	Used      int           `json:"used"`
	Limit     int           `json:"limit"`
	Remaining int           `json:"remaining"`
}

func (h *handler) newUsageResp(out quota.UsageOutput) usageResp {
	return usageResp{
		Date:      response.Date(out.Date),
		Used:      out.Used,
		Limit:     out.Limit,
		Remaining: out.Remaining,
	}
}

type historyItemResp struct {
	Date         response.Date     `json:"date" swaggertype:"string" example:"2024-05-01"`
	RequestCount int               `json:"request_count"`
	UpdatedAt    response.DateTime `json:"updated_at" swaggertype:"string"`
}

type historyResp struct {
	Items      []historyItemResp `json:"items"`
	Limit      int               `json:"limit"`
	DailyLimit int               `json:"daily_limit"`
}

func (h *handler) newHistoryResp(out quota.HistoryOutput) historyResp {
	items := make([]historyItemResp, len(out.Usages))
	for i, u := range out.Usages {
		items[i] = historyItemResp{
			Date:         response.Date(u.UsageDate),
			RequestCount: u.RequestCount,
			UpdatedAt:    response.DateTime(u.UpdatedAt),
		}
	}
	return historyResp{Items: items, Limit: out.Limit, DailyLimit: out.DailyLimit}
}
