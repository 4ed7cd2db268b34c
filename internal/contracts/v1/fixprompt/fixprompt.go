// Package fixprompt holds the JSON bodies exchanged on /api/fix-prompt.
package fixprompt

const (
	Path        = "/api/fix-prompt"
	HealthPath  = "/health"
	ServiceName = "BetterPrompt"
)

type Request struct {
	Prompt string `json:"prompt"`
}

type Response struct {
	ImprovedPrompt string `json:"improved_prompt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type IndexResponse struct {
	Service     string `json:"service"`
	Description string `json:"description"`
}
