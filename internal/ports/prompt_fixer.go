package ports

import "context"

// PromptFixer sends a prompt to the fix-prompt endpoint and returns the
// improved text.
type PromptFixer interface {
	Fix(ctx context.Context, prompt string) (string, error)
}
