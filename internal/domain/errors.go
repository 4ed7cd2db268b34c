package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPrompt   = errors.New("prompt is empty")
	ErrPromptTooLong = errors.New("prompt exceeds maximum length")
	ErrNetwork       = errors.New("network request failed")
	ErrNothingToCopy = errors.New("no text to copy")
)

// Upstream failures reported by the prompt optimization backend.
var (
	ErrUpstreamTimeout      = errors.New("upstream request timed out")
	ErrUpstreamUnavailable  = errors.New("upstream unreachable")
	ErrInvalidUpstreamReply = errors.New("upstream reply has no choices")
	ErrNoUpstreamMessage    = errors.New("upstream choice has no message")
	ErrEmptyCompletion      = errors.New("upstream returned an empty completion")
)

// ServerError is a non-2xx answer from the fix-prompt endpoint.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.DisplayMessage()
}

// DisplayMessage is the server supplied message, or a synthesized one when the
// body carried none.
func (e *ServerError) DisplayMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Server error: %d", e.Status)
}

type UpstreamStatusError struct {
	Status int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.Status)
}

type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindServer     ErrorKind = "server"
	ErrorKindNetwork    ErrorKind = "network"
	ErrorKindCopy       ErrorKind = "copy"
)

// UIError carries the text shown in the error panel along with its cause.
type UIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *UIError) Error() string {
	return e.Message
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// OptimizeError is a backend failure already translated to the message
// returned to API callers.
type OptimizeError struct {
	Message string
	Err     error
}

func (e *OptimizeError) Error() string {
	return e.Message
}

func (e *OptimizeError) Unwrap() error {
	return e.Err
}
