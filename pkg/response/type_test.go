package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-assistant/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// Midnight in a negative-offset zone must stay on the same calendar day.
	b, err := json.Marshal(response.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, loc)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(b))
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	b, err := json.Marshal(response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, loc)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01T08:30:00Z"`, string(b))
}
