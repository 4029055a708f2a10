package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat-assistant/pkg/gemini"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":401,"message":"bad key","status":"UNAUTHENTICATED"}}`))
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			SystemInstruction *struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"systemInstruction"`
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			GenerationConfig *struct {
				ResponseMimeType string `json:"responseMimeType"`
			} `json:"generationConfig"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if text == "empty" {
			w.Write([]byte(`{"candidates":[]}`))
			return
		}
		mime := ""
		if req.GenerationConfig != nil {
			mime = req.GenerationConfig.ResponseMimeType
		}
		system := ""
		if req.SystemInstruction != nil {
			system = req.SystemInstruction.Parts[0].Text
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": system + "|"}, map[string]any{"text": mime}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10},
		})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestGenerateContent(t *testing.T) {
	ts := newTestServer(t)
	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL + "/"})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "sys",
			Prompt:            "hello",
			JSONOutput:        true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "sys|application/json" {
			t.Errorf("text = %q", resp.Text)
		}
		if resp.FinishReason != "STOP" {
			t.Errorf("finish reason = %q", resp.FinishReason)
		}
		if resp.Usage.TotalTokens != 10 || resp.Usage.InputTokens != 7 {
			t.Errorf("usage = %+v", resp.Usage)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "cause_500"}); err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("No Candidates", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "empty"}); err == nil {
			t.Fatal("expected error for empty candidates")
		}
	})

	t.Run("Empty Prompt", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &gemini.Request{}); err == nil {
			t.Fatal("expected error for empty prompt")
		}
	})
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := newTestServer(t)
	client, err := gemini.New(gemini.Config{APIKey: "wrong", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.GenerateContent(context.Background(), &gemini.Request{Prompt: "hello"})
	if err == nil || !strings.Contains(err.Error(), "UNAUTHENTICATED") {
		t.Fatalf("err = %v, want API error with status", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
	c, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("model = %q", c.Model())
	}
}
