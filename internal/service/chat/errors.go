package chat

import "errors"

// ErrEmptyMessage rejects a request carrying no user message. Surfaced as a
// 400 by the HTTP layer; the store and the gateway are never touched.
var ErrEmptyMessage = errors.New("please provide a message")

// GenerationError wraps a model gateway failure during a specific request.
// The stored conversation is left untouched when this is returned.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
