package qwen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat-assistant/pkg/qwen"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func TestGenerateContent(t *testing.T) {
	var got chatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Incorrect API key","type":"invalid_request_error","code":"invalid_api_key"}}`))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got.Messages[len(got.Messages)-1].Content == "no_choices" {
			w.Write([]byte(`{"choices":[]}`))
			return
		}
		w.Write([]byte(`{
			"id": "c1",
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"actions\":[]}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
		}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &qwen.Request{
			SystemInstruction: "sys",
			Prompt:            "hello",
			JSONOutput:        true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"actions":[]}` {
			t.Errorf("text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 16 {
			t.Errorf("usage = %+v", resp.Usage)
		}
		if got.Model != qwen.DefaultModel {
			t.Errorf("model = %q", got.Model)
		}
		if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
			t.Errorf("messages = %+v", got.Messages)
		}
		if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %+v", got.ResponseFormat)
		}
	})

	t.Run("No Choices", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &qwen.Request{Prompt: "no_choices"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("API Error", func(t *testing.T) {
		bad, err := qwen.New(qwen.Config{APIKey: "wrong", BaseURL: ts.URL})
		if err != nil {
			t.Fatal(err)
		}
		_, err = bad.GenerateContent(context.Background(), &qwen.Request{Prompt: "hello"})
		if err == nil || !strings.Contains(err.Error(), "invalid_api_key") {
			t.Fatalf("err = %v", err)
		}
	})
}
