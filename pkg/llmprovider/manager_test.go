package llmprovider

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"chat-assistant/pkg/log"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	failTimes int32 // fail this many calls before succeeding; -1 always fails
	delay     time.Duration
	text      string
	callCount atomic.Int32
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	n := m.callCount.Add(1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.failTimes < 0 || n <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return &Response{Text: m.text, ProviderName: m.name, ModelName: m.name + "-model"}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

var helloReq = &Request{Prompt: "Hello"}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", text: "hi"}
	secondary := &mockProvider{name: "secondary", text: "unused"}
	manager := NewManager([]Provider{primary, secondary}, Config{FallbackEnabled: true}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), helloReq)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "hi" || resp.ProviderName != "primary" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if secondary.callCount.Load() != 0 {
		t.Errorf("secondary should not be called")
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary", text: "from secondary"}
	manager := NewManager([]Provider{primary, secondary}, Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), helloReq)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("provider = %s, want secondary", resp.ProviderName)
	}
	if got := primary.callCount.Load(); got != 2 {
		t.Errorf("primary calls = %d, want 2", got)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: -1}
	secondary := &mockProvider{name: "secondary", text: "unused"}
	manager := NewManager([]Provider{primary, secondary}, Config{}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), helloReq)
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("err = %v, want ErrAllProvidersFailed", err)
	}
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "primary" {
		t.Errorf("err = %v, want ProviderError for primary", err)
	}
	if primary.callCount.Load() != 1 {
		t.Errorf("default config should call once, got %d", primary.callCount.Load())
	}
	if secondary.callCount.Load() != 0 {
		t.Errorf("secondary should not be called")
	}
}

func TestGenerateContent_RetrySucceeds(t *testing.T) {
	flaky := &mockProvider{name: "flaky", failTimes: 2, text: "ok"}
	manager := NewManager([]Provider{flaky}, Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), helloReq)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "ok" || flaky.callCount.Load() != 3 {
		t.Errorf("resp = %+v, calls = %d", resp, flaky.callCount.Load())
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second, text: "late"}
	other := &mockProvider{name: "other", text: "unused"}
	manager := NewManager([]Provider{slow, other}, Config{
		FallbackEnabled: true,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), helloReq)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if other.callCount.Load() != 0 {
		t.Errorf("no provider should run after the deadline")
	}
}

func TestGenerateContent_InvalidInput(t *testing.T) {
	if _, err := NewManager(nil, Config{}, log.NewNop()).GenerateContent(context.Background(), helloReq); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("err = %v, want ErrNoProvidersConfigured", err)
	}

	manager := NewManager([]Provider{&mockProvider{name: "p"}}, Config{}, log.NewNop())
	if _, err := manager.GenerateContent(context.Background(), &Request{Prompt: "  "}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}
