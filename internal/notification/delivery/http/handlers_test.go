package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-assistant/internal/middleware"
	"chat-assistant/internal/model"
	"chat-assistant/internal/notification"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/response"
)

type stubUseCase struct {
	list      notification.ListOutput
	lastInput notification.ListInput
	markedID  string
	err       error
}

func (s *stubUseCase) Record(ctx context.Context, sc model.Scope, input notification.RecordInput) (notification.RecordOutput, error) {
	return notification.RecordOutput{}, s.err
}
func (s *stubUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	s.lastInput = input
	return s.list, s.err
}
func (s *stubUseCase) CountUnread(ctx context.Context, sc model.Scope) (int, error) {
	return 3, s.err
}
func (s *stubUseCase) MarkRead(ctx context.Context, sc model.Scope, id string) error {
	s.markedID = id
	return s.err
}

func do(uc notification.UseCase, method, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/notifications"), New(log.NewNop(), uc), middleware.New(log.NewNop(), nil))

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(middleware.UserIDHeader, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList_UnreadOnly(t *testing.T) {
	uc := &stubUseCase{list: notification.ListOutput{
		Notifications: []notification.Notification{{ID: "n1", EntityType: "interaction", EntityID: "i1", Message: "m"}},
		Limit:         50,
	}}
	w := do(uc, http.MethodGet, "/notifications?unread_only=true")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !uc.lastInput.UnreadOnly {
		t.Error("unread_only was not passed through")
	}
	var body struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data.Notifications) != 1 || body.Data.Notifications[0].ID != "n1" {
		t.Errorf("notifications = %+v", body.Data.Notifications)
	}
}

func TestList_Limit(t *testing.T) {
	tests := []struct {
		query     string
		wantHTTP  int
		wantLimit int
	}{
		{query: "", wantHTTP: http.StatusOK, wantLimit: 0},
		{query: "?limit=20", wantHTTP: http.StatusOK, wantLimit: 20},
		{query: "?limit=0", wantHTTP: http.StatusBadRequest},
		{query: "?limit=500", wantHTTP: http.StatusBadRequest},
	}
	for _, tt := range tests {
		uc := &stubUseCase{}
		w := do(uc, http.MethodGet, "/notifications"+tt.query)
		if w.Code != tt.wantHTTP {
			t.Errorf("%q: status = %d, want %d", tt.query, w.Code, tt.wantHTTP)
			continue
		}
		if uc.lastInput.Limit != tt.wantLimit {
			t.Errorf("%q: limit = %d, want %d", tt.query, uc.lastInput.Limit, tt.wantLimit)
		}
	}
}

func TestUnreadCount(t *testing.T) {
	w := do(&stubUseCase{}, http.MethodGet, "/notifications/unread-count")
	var body struct {
		Data unreadCountResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Unread != 3 {
		t.Errorf("unread = %d, want 3", body.Data.Unread)
	}
}

func TestMarkRead_MapsErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantHTTP int
		wantCode int
	}{
		{err: notification.ErrNotificationNotFound, wantHTTP: http.StatusNotFound, wantCode: codeNotificationNotFound},
		{err: notification.ErrForbidden, wantHTTP: http.StatusForbidden, wantCode: codeForbidden},
	}
	for _, tt := range tests {
		uc := &stubUseCase{err: tt.err}
		w := do(uc, http.MethodPost, "/notifications/n9/read")
		if w.Code != tt.wantHTTP {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.wantHTTP)
		}
		var body response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.ErrorCode != tt.wantCode {
			t.Errorf("%v: error_code = %d, want %d", tt.err, body.ErrorCode, tt.wantCode)
		}
		if uc.markedID != "n9" {
			t.Errorf("marked id = %q", uc.markedID)
		}
	}
}
