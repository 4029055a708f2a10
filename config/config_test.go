package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
database:
  driver: sqlite
  dsn: ":memory:"
quota:
  daily_limit: 5
  timezone: Asia/Ho_Chi_Minh
interaction:
  interpret_timeout: 10s
  auto_approve:
    enabled: true
    kinds: [note, category]
    max_actions: 2
    min_confidence: 0.8
llm:
  retry_attempts: 2
  providers:
    - name: qwen
      enabled: true
      priority: 1
      api_key: ${TEST_QWEN_KEY}
      model: qwen-plus
    - name: gemini
      enabled: false
      priority: 2
      model: gemini-2.5-flash
`

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_QWEN_KEY", "secret")
	writeConfig(t, testConfig)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Database.RetryAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.Database.RetryDelay)
	assert.Equal(t, 5, cfg.Quota.DailyLimit)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Quota.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Interaction.InterpretTimeout)
	assert.True(t, cfg.Interaction.AutoApprove.Enabled)
	assert.Equal(t, []string{"note", "category"}, cfg.Interaction.AutoApprove.Kinds)
	assert.Equal(t, 2, cfg.Interaction.AutoApprove.MaxActions)
	assert.InDelta(t, 0.8, cfg.Interaction.AutoApprove.MinConfidence, 1e-9)

	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "secret", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, 2, cfg.LLM.RetryAttempts)
	assert.NoError(t, cfg.ValidateLLM())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	writeConfig(t, "database:\n  driver: mysql\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{name: "no providers", cfg: LLMConfig{}, wantErr: true},
		{
			name:    "none enabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Model: "m"}}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "qwen", Model: "m", Enabled: true, Priority: 1, APIKey: "k"},
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1, APIKey: "k"},
			}},
			wantErr: true,
		},
		{
			name:    "missing key",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Model: "m", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		{
			name: "valid",
			cfg:  LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Model: "m", Enabled: true, Priority: 1, APIKey: "k"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"task", "note"}, splitList([]string{"task, note"}))
	assert.Nil(t, splitList(nil))
}
