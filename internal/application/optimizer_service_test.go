package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bnema/betterprompt-cli/internal/domain"
	portmocks "github.com/bnema/betterprompt-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOptimizerServiceRejectsInvalidPrompts(t *testing.T) {
	t.Parallel()

	upstream := portmocks.NewMockOptimizer(t)
	service, err := NewOptimizerService(upstream, nil)
	require.NoError(t, err)

	_, err = service.Optimize(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrEmptyPrompt)

	_, err = service.Optimize(context.Background(), strings.Repeat("x", domain.MaxPromptLength+1))
	require.ErrorIs(t, err, domain.ErrPromptTooLong)

	upstream.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
}

func TestOptimizerServiceTrimsBeforeUpstream(t *testing.T) {
	t.Parallel()

	upstream := portmocks.NewMockOptimizer(t)
	service, err := NewOptimizerService(upstream, nil)
	require.NoError(t, err)

	upstream.EXPECT().Optimize(mock.Anything, "write about dog training").Return("Write a guide.", nil).Once()

	got, err := service.Optimize(context.Background(), "  write about dog training\n")
	require.NoError(t, err)
	assert.Equal(t, "Write a guide.", got)
}

func TestOptimizerServiceMapsUpstreamFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "status", err: &domain.UpstreamStatusError{Status: 500}, message: "Service temporarily unavailable (Error 500)"},
		{name: "no choices", err: domain.ErrInvalidUpstreamReply, message: "Invalid response from optimization service"},
		{name: "no message", err: domain.ErrNoUpstreamMessage, message: "No response from optimization service"},
		{name: "empty completion", err: domain.ErrEmptyCompletion, message: "No optimized prompt returned"},
		{name: "timeout", err: fmt.Errorf("%w: deadline", domain.ErrUpstreamTimeout), message: "Request timeout - please try again"},
		{name: "network", err: fmt.Errorf("%w: refused", domain.ErrUpstreamUnavailable), message: "Network error - please check your connection"},
		{name: "unexpected", err: errors.New("boom"), message: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			upstream := portmocks.NewMockOptimizer(t)
			service, err := NewOptimizerService(upstream, nil)
			require.NoError(t, err)

			upstream.EXPECT().Optimize(mock.Anything, "prompt").Return("", tt.err).Once()

			_, err = service.Optimize(context.Background(), "prompt")
			require.Error(t, err)

			var optimizeErr *domain.OptimizeError
			require.ErrorAs(t, err, &optimizeErr)
			assert.Equal(t, tt.message, optimizeErr.Message)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewOptimizerServiceRequiresUpstream(t *testing.T) {
	t.Parallel()

	_, err := NewOptimizerService(nil, nil)
	require.Error(t, err)
}
