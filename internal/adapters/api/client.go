package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/betterprompt-cli/internal/contracts/v1/fixprompt"
	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/bnema/betterprompt-cli/internal/ports"
	"github.com/bnema/betterprompt-cli/internal/version"
)

const maxResponseBytes = 1 << 20

var errEmptyEndpoint = errors.New("fix-prompt endpoint is empty")

type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ ports.PromptFixer = (*Client)(nil)

func NewClient(endpoint string, httpClient *http.Client) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errEmptyEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{endpoint: endpoint, httpClient: httpClient}, nil
}

// Fix posts prompt and returns the improved text. Non-2xx answers come back
// as *domain.ServerError; anything that prevents reading a valid answer wraps
// domain.ErrNetwork.
func (c *Client) Fix(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(fixprompt.Request{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "bp/"+version.Version)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("%w: perform request: %w", domain.ErrNetwork, err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))

	// A failed answer always reports its status; an unreadable or partial
	// body only loses the server's message.
	if response.StatusCode < 200 || response.StatusCode > 299 {
		var payload fixprompt.ErrorResponse
		_ = json.Unmarshal(data, &payload)
		return "", &domain.ServerError{Status: response.StatusCode, Message: payload.Error}
	}

	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", domain.ErrNetwork, err)
	}

	var payload fixprompt.Response
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrNetwork, err)
	}

	return payload.ImprovedPrompt, nil
}
