package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/betterprompt-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sentMsg is the outcome of controller.Send for the prompt being improved.
type sentMsg struct {
	improved string
	err      error
}

// fixProgressModel shows the submit label with an elapsed counter while the
// controller's request is in flight, then hands the outcome back.
type fixProgressModel struct {
	ctx        context.Context
	controller *application.Controller
	prompt     string

	spinner spinner.Model
	started time.Time
	now     func() time.Time

	sent     bool
	improved string
	err      error
}

func newFixProgressModel(ctx context.Context, controller *application.Controller, prompt string, now func() time.Time) fixProgressModel {
	return fixProgressModel{
		ctx:        ctx,
		controller: controller,
		prompt:     prompt,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))),
		),
		started: now(),
		now:     now,
	}
}

func (m fixProgressModel) send() tea.Msg {
	improved, err := m.controller.Send(m.ctx, m.prompt)
	return sentMsg{improved: improved, err: err}
}

func (m fixProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.send)
}

func (m fixProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sentMsg:
		m.sent = true
		m.improved, m.err = msg.improved, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.sent {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m fixProgressModel) View() string {
	if m.sent {
		return ""
	}

	elapsed := m.now().Sub(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s %s\n", m.spinner.View(), m.controller.SubmitLabel(), elapsed)
}

// sendWithProgress runs controller.Send for prompt behind a progress line on
// output. The controller must already be in its loading state.
func sendWithProgress(ctx context.Context, output io.Writer, controller *application.Controller, prompt string) (string, error) {
	p := tea.NewProgram(
		newFixProgressModel(ctx, controller, prompt, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("show fix progress: %w", err)
	}

	progress, ok := finalModel.(fixProgressModel)
	if !ok {
		return "", fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return progress.improved, progress.err
}
