package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chat-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("Broken credentials", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), ""); err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad-token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), filepath.Join(dir, "missing.json")); err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("Missing credentials file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(dir, "nope.json"), ""); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri"}`))
	})

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Call mom",
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}
	startBody, _ := got["start"].(map[string]any)
	if startBody["dateTime"] != "2024-05-01T09:00:00Z" {
		t.Errorf("unexpected start: %v", got["start"])
	}
}

func TestCreateEvent_AllDay(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"id": "event-1"}`))
	})

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary: "Holiday", StartTime: day, EndTime: day.AddDate(0, 0, 1), AllDay: true,
	}); err != nil {
		t.Fatal(err)
	}
	startBody, _ := got["start"].(map[string]any)
	if startBody["date"] != "2024-05-01" {
		t.Errorf("unexpected start: %v", got["start"])
	}
}

func TestCreateEvent_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestDeleteEvent(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/calendar/v3/calendars/primary/events/event-123" {
		t.Errorf("unexpected path %s", path)
	}
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{
			"items": [
				{"id": "e1", "summary": "Timed", "start": {"dateTime": "2024-05-01T09:00:00Z"}, "end": {"dateTime": "2024-05-01T10:00:00Z"}},
				{"id": "e2", "summary": "All day", "start": {"date": "2024-05-02"}, "end": {"date": "2024-05-03"}}
			]
		}`))
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		TimeMax: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].StartTime.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", events[0].StartTime)
	}
	if !events[1].StartTime.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected all-day start %v", events[1].StartTime)
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "missing"}); err == nil {
		t.Fatalf("expected api error for unknown calendar")
	}
}
