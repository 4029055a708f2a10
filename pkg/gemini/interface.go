package gemini

import "context"

// IGemini is a generateContent client for Gemini models. Safe for concurrent use.
type IGemini interface {
	// GenerateContent sends one prompt, optionally with a system instruction, and joins
	// the text parts of the first candidate.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IGemini = (*geminiImpl)(nil)

// New validates cfg and creates a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
