package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"chat-assistant/internal/interpreter"
	"chat-assistant/internal/model"
	"chat-assistant/pkg/llmprovider"
)

type actionsReply struct {
	Actions []model.ActionDescriptor `json:"actions"`
}

// Interpret asks the provider for actions and validates the reply before returning it.
func (uc *implUseCase) Interpret(ctx context.Context, text string) ([]model.ActionDescriptor, error) {
	now := uc.now().In(uc.dateMath.Location())

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Prompt:            buildPrompt(text, now),
		JSONOutput:        true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Interpret GenerateContent: %v", err)
		return nil, err
	}

	actions, err := uc.parseReply(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Interpret parseReply provider=%s: %v", resp.ProviderName, err)
		return nil, err
	}
	return actions, nil
}

// parseReply extracts JSON from the reply, validates it against the action schema, and
// decodes it. A bare array is accepted as the actions list.
func (uc *implUseCase) parseReply(reply string) ([]model.ActionDescriptor, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, interpreter.ErrEmptyReply
	}

	raw := extractJSON(reply)
	if raw == "" {
		return nil, interpreter.ErrNoJSON
	}
	if strings.HasPrefix(raw, "[") {
		raw = `{"actions":` + raw + `}`
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interpreter.ErrInvalidOutput, err)
	}
	if err := uc.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", interpreter.ErrInvalidOutput, err)
	}

	var out actionsReply
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", interpreter.ErrInvalidOutput, err)
	}
	if len(out.Actions) == 0 {
		return nil, interpreter.ErrNoActions
	}
	return out.Actions, nil
}
