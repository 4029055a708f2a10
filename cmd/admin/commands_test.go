package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/model"
	"chat-assistant/internal/quota"
)

func setupConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	dsn := "file:" + filepath.Join(dir, "admin.db")
	body := "database:\n  driver: sqlite\n  dsn: \"" + dsn + "\"\nquota:\n  daily_limit: 3\n"
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"migrate", "quota", "interactions", "calendar-events"})
}

func TestMigrate(t *testing.T) {
	setupConfig(t)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite schema at version")
}

func TestQuota(t *testing.T) {
	setupConfig(t)

	out, err := execute(t, "quota", "--user", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "0/3 used, 3 remaining")
}

func TestQuota_RequiresUser(t *testing.T) {
	_, err := execute(t, "quota")
	assert.Error(t, err)
}

func TestInteractions_RejectsUnknownStatus(t *testing.T) {
	_, err := execute(t, "interactions", "--user", "u1", "--status", "done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestInteractions_Empty(t *testing.T) {
	setupConfig(t)

	out, err := execute(t, "interactions", "--user", "u1", "--status", "pending")
	require.NoError(t, err)
	assert.Equal(t, "no interactions\n", out)
}

func TestPrintInteractions(t *testing.T) {
	var buf bytes.Buffer
	printInteractions(&buf, []interaction.Interaction{{
		ID:              "i1",
		Status:          interaction.StatusApplied,
		SourceText:      strings.Repeat("x", 60),
		ProposedActions: []model.ActionDescriptor{{Kind: model.ActionKindTask}},
		AutoApproved:    true,
		CreatedAt:       time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "applied")
	assert.Contains(t, lines[1], "2024-05-01T09:00:00Z")
	assert.Contains(t, lines[1], "…")
}

func TestPrintQuota(t *testing.T) {
	var buf bytes.Buffer
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	printQuota(&buf, quota.UsageOutput{Date: day, Used: 2, Limit: 5, Remaining: 3},
		[]quota.Usage{{UsageDate: day, RequestCount: 2}})

	assert.Contains(t, buf.String(), "today 2024-05-01: 2/5 used, 3 remaining")
	assert.Contains(t, buf.String(), "2024-05-01  2")
}
