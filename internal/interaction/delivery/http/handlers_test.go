package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/middleware"
	"chat-assistant/internal/model"
	"chat-assistant/internal/quota"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/ratelimit"
	"chat-assistant/pkg/response"
)

type stubUseCase struct {
	it        interaction.Interaction
	list      interaction.ListOutput
	err       error
	lastScope model.Scope
	lastID    string
	lastText  string
	lastList  interaction.ListInput
}

func (s *stubUseCase) Submit(ctx context.Context, sc model.Scope, input interaction.SubmitInput) (interaction.Interaction, error) {
	s.lastScope, s.lastText = sc, input.Text
	return s.it, s.err
}
func (s *stubUseCase) Approve(ctx context.Context, sc model.Scope, id string) (interaction.Interaction, error) {
	s.lastScope, s.lastID = sc, id
	return s.it, s.err
}
func (s *stubUseCase) Reject(ctx context.Context, sc model.Scope, id string) (interaction.Interaction, error) {
	s.lastScope, s.lastID = sc, id
	return s.it, s.err
}
func (s *stubUseCase) Detail(ctx context.Context, sc model.Scope, id string) (interaction.Interaction, error) {
	s.lastScope, s.lastID = sc, id
	return s.it, s.err
}
func (s *stubUseCase) List(ctx context.Context, sc model.Scope, input interaction.ListInput) (interaction.ListOutput, error) {
	s.lastList = input
	return s.list, s.err
}

func newRouter(uc interaction.UseCase, limiter *ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/interactions"), New(log.NewNop(), uc), middleware.New(log.NewNop(), limiter))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmit(t *testing.T) {
	uc := &stubUseCase{it: interaction.Interaction{
		ID:     "i1",
		Status: interaction.StatusPending,
		ProposedActions: []model.ActionDescriptor{
			{Kind: model.ActionKindTask, Payload: json.RawMessage(`{"title":"Buy milk"}`), Confidence: 0.9},
		},
	}}
	w := do(newRouter(uc, nil), http.MethodPost, "/interactions", `{"text":"buy milk"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data interactionResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "i1", body.Data.ID)
	assert.Equal(t, "pending", body.Data.Status)
	require.Len(t, body.Data.ProposedActions, 1)
	assert.JSONEq(t, `{"title":"Buy milk"}`, string(body.Data.ProposedActions[0].Payload))
	assert.Equal(t, "u1", uc.lastScope.UserID)
	assert.Equal(t, "buy milk", uc.lastText)
}

func TestSubmit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "missing text", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "empty input", body: `{"text":" "}`, err: interaction.ErrEmptyInput, wantStatus: http.StatusBadRequest, wantCode: codeEmptyInput},
		{name: "quota", body: `{"text":"x"}`, err: quota.ErrQuotaExceeded, wantStatus: http.StatusTooManyRequests, wantCode: codeQuotaExceeded},
		{
			name:       "interpretation",
			body:       `{"text":"x"}`,
			err:        errors.Join(interaction.ErrInterpretationFailed, errors.New("timeout")),
			wantStatus: http.StatusBadGateway,
			wantCode:   codeInterpretationFailed,
		},
		{name: "internal", body: `{"text":"x"}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&stubUseCase{err: tt.err}, nil), http.MethodPost, "/interactions", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, decode(t, w).ErrorCode)
			}
		})
	}
}

func TestSubmit_RateLimited(t *testing.T) {
	r := newRouter(&stubUseCase{}, ratelimit.New(ratelimit.Config{RequestsPerMin: 1, Burst: 1}))

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/interactions", `{"text":"a"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/interactions", `{"text":"b"}`).Code)
}

func TestSubmit_RequiresUser(t *testing.T) {
	r := newRouter(&stubUseCase{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(`{"text":"a"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestList_StatusFilter(t *testing.T) {
	uc := &stubUseCase{list: interaction.ListOutput{Limit: 10}}
	r := newRouter(uc, nil)

	w := do(r, http.MethodGet, "/interactions?status=applied&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, interaction.StatusApplied, uc.lastList.Status)
	assert.Equal(t, 10, uc.lastList.Limit)

	w = do(r, http.MethodGet, "/interactions?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_Limit(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantLimit  int
	}{
		{"", http.StatusOK, 0},
		{"?limit=1", http.StatusOK, 1},
		{"?limit=200", http.StatusOK, 200},
		{"?limit=0", http.StatusBadRequest, 0},
		{"?limit=201", http.StatusBadRequest, 0},
		{"?offset=-1", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			uc := &stubUseCase{}
			w := do(newRouter(uc, nil), http.MethodGet, "/interactions"+tt.query, "")
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantLimit, uc.lastList.Limit)
		})
	}
}

func TestDecide_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"approve not found", "/interactions/i1/approve", interaction.ErrInteractionNotFound, http.StatusNotFound, codeInteractionNotFound},
		{"approve forbidden", "/interactions/i1/approve", interaction.ErrForbidden, http.StatusForbidden, codeForbidden},
		{"reject decided", "/interactions/i1/reject", interaction.ErrInvalidState, http.StatusConflict, codeInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			w := do(newRouter(uc, nil), http.MethodPost, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w).ErrorCode)
			assert.Equal(t, "i1", uc.lastID)
		})
	}
}

func TestApprove_PartialApply(t *testing.T) {
	uc := &stubUseCase{err: &interaction.PartialApplyError{
		InteractionID: "i1",
		Cause:         errors.New("task title is required"),
		Results: []model.ActionResult{
			{Index: 0, Kind: model.ActionKindNote, Outcome: model.ActionOutcomeRolledBack},
			{Index: 1, Kind: model.ActionKindTask, Outcome: model.ActionOutcomeFailed, Error: "task title is required"},
		},
	}}
	w := do(newRouter(uc, nil), http.MethodPost, "/interactions/i1/approve", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		ErrorCode int              `json:"error_code"`
		Errors    partialApplyResp `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, codePartialApply, body.ErrorCode)
	assert.Equal(t, "i1", body.Errors.InteractionID)
	require.Len(t, body.Errors.Results, 2)
	assert.Equal(t, "rolled_back", body.Errors.Results[0].Outcome)
	assert.Equal(t, "failed", body.Errors.Results[1].Outcome)
}

func TestDetail(t *testing.T) {
	uc := &stubUseCase{it: interaction.Interaction{ID: "i1", Status: interaction.StatusApplied}}
	w := do(newRouter(uc, nil), http.MethodGet, "/interactions/i1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "i1", uc.lastID)
}
