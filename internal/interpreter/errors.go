package interpreter

import "errors"

var (
	ErrEmptyReply    = errors.New("provider returned an empty reply")
	ErrNoJSON        = errors.New("provider reply contains no JSON")
	ErrInvalidOutput = errors.New("provider reply does not match the action schema")
	ErrNoActions     = errors.New("provider proposed no actions")
)
