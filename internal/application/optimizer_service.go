package application

import (
	"context"
	"errors"

	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/bnema/betterprompt-cli/internal/ports"
	"go.uber.org/zap"
)

var errNilUpstream = errors.New("optimizer upstream is nil")

// OptimizerService validates prompts and hands them to the upstream model.
// Upstream failures come back as *domain.OptimizeError carrying the message
// API callers see.
type OptimizerService struct {
	upstream ports.Optimizer
	logger   *zap.Logger
}

var _ ports.Optimizer = (*OptimizerService)(nil)

func NewOptimizerService(upstream ports.Optimizer, logger *zap.Logger) (*OptimizerService, error) {
	if upstream == nil {
		return nil, errNilUpstream
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OptimizerService{upstream: upstream, logger: logger}, nil
}

func (s *OptimizerService) Optimize(ctx context.Context, prompt string) (string, error) {
	if err := domain.ValidatePrompt(prompt); err != nil {
		return "", err
	}

	improved, err := s.upstream.Optimize(ctx, domain.NormalizePrompt(prompt))
	if err != nil {
		message := domain.UpstreamMessage(err)
		s.logger.Error("optimize prompt", zap.String("message", message), zap.Error(err))
		return "", &domain.OptimizeError{Message: message, Err: err}
	}

	return improved, nil
}
