package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/betterprompt-cli/internal/config"
	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/bnema/betterprompt-cli/internal/ports"
)

const maxResponseBytes = 4 << 20

const SystemPrompt = `You are a prompt optimization specialist. Your job is to take a rough or poorly structured prompt and transform it into a well-formatted, clear, and effective prompt that will get better results from AI models.

Focus on:
1. Clear structure and formatting
2. Specific instructions and context
3. Expected output format
4. Removing ambiguity
5. Adding relevant details that improve results
6. Proper grammar and clarity

Return ONLY the improved prompt - do not chat, ask questions, or provide explanations. Just return the optimized version ready to use.`

const userPromptPrefix = "Please improve this prompt and make it well-structured and effective:\n\n"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
	Model               string        `json:"model"`
}

// Message stays loosely typed: a null or empty object means the choice
// carried no message, while a message without content is an empty completion.
type chatChoice struct {
	Message map[string]any `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// Client calls an Azure OpenAI chat completions deployment.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	maxTokens  int
	timeout    time.Duration
	httpClient *http.Client
}

var _ ports.Optimizer = (*Client)(nil)

func NewClient(cfg config.AzureConfig, httpClient *http.Client) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:   strings.TrimSpace(cfg.Endpoint),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      cfg.Model,
		maxTokens:  cfg.MaxCompletionTokens,
		timeout:    cfg.RequestTimeout,
		httpClient: httpClient,
	}, nil
}

func (c *Client) Optimize(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: userPromptPrefix + prompt},
		},
		MaxCompletionTokens: c.maxTokens,
		Model:               c.model,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("api-key", c.apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", transportError(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, maxResponseBytes))
		return "", &domain.UpstreamStatusError{Status: response.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return "", transportError(err)
	}

	var payload chatResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("%w: decode: %w", domain.ErrInvalidUpstreamReply, err)
	}
	if len(payload.Choices) == 0 {
		return "", domain.ErrInvalidUpstreamReply
	}

	message := payload.Choices[0].Message
	if len(message) == 0 {
		return "", domain.ErrNoUpstreamMessage
	}

	content, _ := message["content"].(string)
	improved := strings.TrimSpace(content)
	if improved == "" {
		return "", domain.ErrEmptyCompletion
	}

	return improved, nil
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamTimeout, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
}
