package application

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/bnema/betterprompt-cli/internal/ports"
	"go.uber.org/zap"
)

var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Controller owns the form state. Every method except Send must be called
// from the goroutine that processes UI events.
type Controller struct {
	fixer     ports.PromptFixer
	clipboard ports.Clipboard
	clock     ports.Clock
	logger    *zap.Logger

	session     domain.Session
	copiedUntil time.Time
}

func NewController(fixer ports.PromptFixer, clipboard ports.Clipboard, clock ports.Clock, logger *zap.Logger) *Controller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{
		fixer:     fixer,
		clipboard: clipboard,
		clock:     clock,
		logger:    logger,
		session:   domain.NewSession(),
	}
}

func (c *Controller) Session() domain.Session {
	return c.session
}

// Validate enables the submit control iff input has non-whitespace content.
func (c *Controller) Validate(input string) bool {
	valid := domain.IsSubmittable(input)
	c.session.SubmitEnabled = valid
	return valid
}

func (c *Controller) CanSubmit() bool {
	return c.session.SubmitEnabled && !c.session.Loading
}

func (c *Controller) SubmitLabel() string {
	if c.session.Loading {
		return domain.LabelSubmitting
	}
	return domain.LabelSubmit
}

func (c *Controller) CopyLabel() string {
	if c.clock.Now().Before(c.copiedUntil) {
		return domain.LabelCopied
	}
	return domain.LabelCopy
}

// Submit runs a whole submission cycle synchronously.
func (c *Controller) Submit(ctx context.Context, input string) (string, error) {
	prompt, err := c.BeginSubmit(input)
	if err != nil {
		return "", err
	}

	improved, err := c.Send(ctx, prompt)
	return c.CompleteSubmit(improved, err)
}

// BeginSubmit validates input and enters the loading state. It returns the
// trimmed prompt to send, or a validation error already shown to the user.
func (c *Controller) BeginSubmit(input string) (string, error) {
	if c.session.Loading {
		return "", ErrSubmitInFlight
	}

	c.session.Phase = domain.PhaseValidating
	if !c.Validate(input) {
		c.session.HideMessages()
		uiErr := &domain.UIError{
			Kind:    domain.ErrorKindValidation,
			Message: domain.MessageValidation,
			Err:     domain.ErrEmptyPrompt,
		}
		c.session.ShowError(uiErr.Message)
		return "", uiErr
	}

	c.session.HideMessages()
	c.session.SetLoading(true)

	prompt := domain.NormalizePrompt(input)
	c.logger.Debug("submitting prompt", zap.Int("length", len(prompt)))

	return prompt, nil
}

// Send performs the network call only. It does not touch the session and may
// run off the event goroutine.
func (c *Controller) Send(ctx context.Context, prompt string) (string, error) {
	return c.fixer.Fix(ctx, prompt)
}

// CompleteSubmit leaves the loading state and shows exactly one of the result
// or the error.
func (c *Controller) CompleteSubmit(improved string, err error) (string, error) {
	defer c.session.SetLoading(false)

	if err == nil {
		c.session.ShowResult(improved)
		c.logger.Debug("prompt improved", zap.Int("length", len(improved)))
		return improved, nil
	}

	uiErr := classifySubmitError(err)
	c.logger.Warn("prompt submission failed",
		zap.String("kind", string(uiErr.Kind)),
		zap.Error(err),
	)
	c.session.ShowError(uiErr.Message)

	return "", uiErr
}

// ShouldCopyOnShortcut reports whether the copy shortcut applies: a result is
// displayed and the user has no active text selection.
func (c *Controller) ShouldCopyOnShortcut(selectionActive bool) bool {
	return c.session.ResultVisible && !selectionActive
}

// Copy writes the last displayed result to the clipboard. The text comes
// from the session, never from the rendered view.
func (c *Controller) Copy(ctx context.Context) (bool, error) {
	text := c.session.Result
	if text == "" {
		uiErr := &domain.UIError{
			Kind:    domain.ErrorKindCopy,
			Message: domain.MessageNothingToCopy,
			Err:     domain.ErrNothingToCopy,
		}
		c.session.ShowError(uiErr.Message)
		return false, uiErr
	}

	if err := c.clipboard.Copy(ctx, text); err != nil {
		c.logger.Warn("copy to clipboard failed", zap.Error(err))
		uiErr := &domain.UIError{
			Kind:    domain.ErrorKindCopy,
			Message: domain.MessageCopyFailed,
			Err:     err,
		}
		c.session.ShowError(uiErr.Message)
		return false, uiErr
	}

	c.copiedUntil = c.clock.Now().Add(domain.CopyFeedbackDuration)
	return true, nil
}

func classifySubmitError(err error) *domain.UIError {
	var serverErr *domain.ServerError
	if errors.As(err, &serverErr) {
		return &domain.UIError{
			Kind:    domain.ErrorKindServer,
			Message: serverErr.DisplayMessage(),
			Err:     err,
		}
	}

	return &domain.UIError{
		Kind:    domain.ErrorKindNetwork,
		Message: domain.MessageNetwork,
		Err:     err,
	}
}
