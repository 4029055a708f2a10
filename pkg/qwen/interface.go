package qwen

import "context"

// IQwen is a chat-completions client for Qwen models. Safe for concurrent use.
type IQwen interface {
	// GenerateContent sends one system+user exchange and returns the first choice.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IQwen = (*qwenImpl)(nil)

// New validates cfg and creates a client.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
