package http

import (
	"encoding/json"
	"time"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/model"
)

// --- Request DTOs ---

type submitReq struct {
	Text string `json:"text" binding:"required,max=4000"`
}

func (r submitReq) toInput() interaction.SubmitInput {
	return interaction.SubmitInput{Text: r.Text}
}

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected applied failed"`
	Limit  *int   `form:"limit"  binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (r listReq) toInput() interaction.ListInput {
	input := interaction.ListInput{Status: interaction.Status(r.Status), Offset: r.Offset}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	return input
}

type idReq struct {
	ID string `uri:"id" binding:"required"`
}

// --- Response DTOs ---

type actionResp struct {
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	Confidence float64         `json:"confidence"`
}

type resultResp struct {
	Index    int    `json:"index"`
	Kind     string `json:"kind"`
	Outcome  string `json:"outcome"`
	EntityID string `json:"entity_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

type interactionResp struct {
	ID              string       `json:"id"`
	SourceText      string       `json:"source_text"`
	Status          string       `json:"status"`
	AutoApproved    bool         `json:"auto_approved"`
	ProposedActions []actionResp `json:"proposed_actions"`
	Results         []resultResp `json:"results,omitempty"`
	FailureReason   string       `json:"failure_reason,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	DecidedAt       *time.Time   `json:"decided_at,omitempty"`
}

type listResp struct {
	Interactions []interactionResp `json:"interactions"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

// partialApplyResp is the error detail for a rolled-back approval.
type partialApplyResp struct {
	InteractionID string       `json:"interaction_id"`
	Results       []resultResp `json:"results"`
}

func newResultsResp(results []model.ActionResult) []resultResp {
	if len(results) == 0 {
		return nil
	}
	out := make([]resultResp, len(results))
	for i, r := range results {
		out[i] = resultResp{
			Index:    r.Index,
			Kind:     string(r.Kind),
			Outcome:  string(r.Outcome),
			EntityID: r.EntityID,
			Error:    r.Error,
		}
	}
	return out
}

func (h *handler) newInteractionResp(it interaction.Interaction) interactionResp {
	actions := make([]actionResp, len(it.ProposedActions))
	for i, a := range it.ProposedActions {
		actions[i] = actionResp{Kind: string(a.Kind), Payload: a.Payload, Confidence: a.Confidence}
	}
	return interactionResp{
		ID:              it.ID,
		SourceText:      it.SourceText,
		Status:          string(it.Status),
		AutoApproved:    it.AutoApproved,
		ProposedActions: actions,
		Results:         newResultsResp(it.Results),
		FailureReason:   it.FailureReason,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
		DecidedAt:       it.DecidedAt,
	}
}

func (h *handler) newListResp(out interaction.ListOutput) listResp {
	items := make([]interactionResp, len(out.Interactions))
	for i, it := range out.Interactions {
		items[i] = h.newInteractionResp(it)
	}
	return listResp{Interactions: items, Limit: out.Limit, Offset: out.Offset}
}
