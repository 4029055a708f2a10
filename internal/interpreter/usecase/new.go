package usecase

import (
	"context"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/llmprovider"
	pkgLog "chat-assistant/pkg/log"
)

// Generator is the LLM surface the interpreter needs; *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      Generator
	dateMath *datemath.Parser
	schema   *jsonschema.Schema
	now      func() time.Time
}

// New creates an Interpreter backed by llm. The prompt's current time uses dateMath's timezone.
func New(l pkgLog.Logger, llm Generator, dateMath *datemath.Parser) (*implUseCase, error) {
	schema, err := compileActionsSchema()
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		dateMath: dateMath,
		schema:   schema,
		now:      time.Now,
	}, nil
}
