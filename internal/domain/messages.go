package domain

import "time"

const (
	MessageValidation    = "Please enter a prompt to improve."
	MessageNetwork       = "Network error: Please check your connection and try again."
	MessageNothingToCopy = "No text to copy"
	MessageCopyFailed    = "Copy failed. Please manually select and copy the text."
	MessageOverLimit     = "Over the 10,000 character limit: the server will reject this prompt."
)

const (
	LabelSubmit     = "Generate Better Prompt"
	LabelSubmitting = "Generating..."
	LabelCopy       = "Copy"
	LabelCopied     = "Copied!"
)

const CopyFeedbackDuration = 2000 * time.Millisecond

// Messages returned by the fix-prompt API.
const (
	MessageNoData             = "No data provided"
	MessageEmptyPrompt        = "Prompt cannot be empty"
	MessagePromptTooLong      = "Prompt too long (max 10,000 characters)"
	MessageInvalidReply       = "Invalid response from optimization service"
	MessageNoReply            = "No response from optimization service"
	MessageEmptyCompletion    = "No optimized prompt returned"
	MessageUpstreamTimeout    = "Request timeout - please try again"
	MessageUpstreamNetwork    = "Network error - please check your connection"
	MessageUnexpected         = "An unexpected error occurred"
	MessageInternal           = "Internal server error"
	MessageNotFound           = "Endpoint not found"
	messageUnavailablePattern = "Service temporarily unavailable (Error %d)"
)
