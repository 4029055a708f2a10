package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-assistant/internal/middleware"
	"chat-assistant/internal/model"
	"chat-assistant/internal/workspace"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/response"
)

type stubUseCase struct {
	list      workspace.ListOutput
	err       error
	lastInput workspace.UpdateInput
	lastList  workspace.ListInput
}

func (s *stubUseCase) Apply(ctx context.Context, sc model.Scope, input workspace.ApplyInput) (workspace.ApplyOutput, error) {
	return workspace.ApplyOutput{}, s.err
}
func (s *stubUseCase) MirrorReminder(ctx context.Context, sc model.Scope, reminder workspace.Reminder) error {
	return s.err
}
func (s *stubUseCase) List(ctx context.Context, sc model.Scope, input workspace.ListInput) (workspace.ListOutput, error) {
	s.lastList = input
	s.list.Kind = input.Kind
	return s.list, s.err
}
func (s *stubUseCase) Update(ctx context.Context, sc model.Scope, input workspace.UpdateInput) (workspace.UpdateOutput, error) {
	s.lastInput = input
	return workspace.UpdateOutput{Kind: input.Kind, Task: workspace.Task{ID: input.ID}}, s.err
}
func (s *stubUseCase) Delete(ctx context.Context, sc model.Scope, input workspace.DeleteInput) error {
	return s.err
}

func do(uc workspace.UseCase, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/workspace"), New(log.NewNop(), uc), middleware.New(log.NewNop(), nil))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestList_Tasks(t *testing.T) {
	uc := &stubUseCase{list: workspace.ListOutput{Tasks: []workspace.Task{{ID: "t1", Title: "Buy milk"}}}}
	w, resp := do(uc, http.MethodGet, "/workspace/tasks", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	data, _ := resp.Data.(map[string]any)
	if data["kind"] != "task" {
		t.Errorf("kind = %v", data["kind"])
	}
	items, _ := data["items"].([]any)
	if len(items) != 1 {
		t.Errorf("items = %v", data["items"])
	}
}

func TestList_UnknownKind(t *testing.T) {
	w, resp := do(&stubUseCase{}, http.MethodGet, "/workspace/events", "")
	if w.Code != http.StatusBadRequest || resp.ErrorCode != codeUnsupportedKind {
		t.Errorf("status = %d, code = %d", w.Code, resp.ErrorCode)
	}
}

func TestList_Limit(t *testing.T) {
	tests := []struct {
		query     string
		wantHTTP  int
		wantLimit int
	}{
		{query: "", wantHTTP: http.StatusOK, wantLimit: 0},
		{query: "?limit=5&offset=10", wantHTTP: http.StatusOK, wantLimit: 5},
		{query: "?limit=0", wantHTTP: http.StatusBadRequest},
		{query: "?limit=201", wantHTTP: http.StatusBadRequest},
	}
	for _, tt := range tests {
		uc := &stubUseCase{}
		w, _ := do(uc, http.MethodGet, "/workspace/notes"+tt.query, "")
		if w.Code != tt.wantHTTP {
			t.Errorf("%q: status = %d, want %d", tt.query, w.Code, tt.wantHTTP)
			continue
		}
		if uc.lastList.Limit != tt.wantLimit {
			t.Errorf("%q: limit = %d, want %d", tt.query, uc.lastList.Limit, tt.wantLimit)
		}
	}
}

func TestUpdate_PassesRawPayload(t *testing.T) {
	uc := &stubUseCase{}
	w, _ := do(uc, http.MethodPatch, "/workspace/tasks/t1", `{"completed":true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.lastInput.ID != "t1" || uc.lastInput.Kind != model.ActionKindTask || string(uc.lastInput.Payload) != `{"completed":true}` {
		t.Errorf("input = %+v", uc.lastInput)
	}
}

func TestUpdate_RejectsInvalidJSON(t *testing.T) {
	w, _ := do(&stubUseCase{}, http.MethodPatch, "/workspace/tasks/t1", `{`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDelete_MapsErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantHTTP int
		wantCode int
	}{
		{workspace.ErrForbidden, http.StatusForbidden, codeForbidden},
		{workspace.ErrNotFound, http.StatusNotFound, codeNotFound},
	}
	for _, tt := range tests {
		w, resp := do(&stubUseCase{err: tt.err}, http.MethodDelete, "/workspace/notes/n1", "")
		if w.Code != tt.wantHTTP || resp.ErrorCode != tt.wantCode {
			t.Errorf("%v: status = %d, code = %d", tt.err, w.Code, resp.ErrorCode)
		}
	}
}
