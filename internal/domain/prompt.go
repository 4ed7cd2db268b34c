package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxPromptLength = 10000

// IsSubmittable reports whether input has any non-whitespace content.
func IsSubmittable(input string) bool {
	return len(strings.TrimSpace(input)) > 0
}

func NormalizePrompt(input string) string {
	return strings.TrimSpace(input)
}

// ValidatePrompt applies the server side rules.
func ValidatePrompt(input string) error {
	if !IsSubmittable(input) {
		return ErrEmptyPrompt
	}
	if ExceedsMaxLength(input) {
		return ErrPromptTooLong
	}
	return nil
}

// ExceedsMaxLength counts characters of the raw input, surrounding whitespace
// included.
func ExceedsMaxLength(input string) bool {
	return utf8.RuneCountInString(input) > MaxPromptLength
}

// UpstreamMessage maps a backend failure to the message returned to callers.
func UpstreamMessage(err error) string {
	var statusErr *UpstreamStatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf(messageUnavailablePattern, statusErr.Status)
	case errors.Is(err, ErrInvalidUpstreamReply):
		return MessageInvalidReply
	case errors.Is(err, ErrNoUpstreamMessage):
		return MessageNoReply
	case errors.Is(err, ErrEmptyCompletion):
		return MessageEmptyCompletion
	case errors.Is(err, ErrUpstreamTimeout):
		return MessageUpstreamTimeout
	case errors.Is(err, ErrUpstreamUnavailable):
		return MessageUpstreamNetwork
	default:
		return MessageUnexpected
	}
}
