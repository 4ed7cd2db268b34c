// Package form is the interactive prompt form: a textarea, a submit control,
// a result panel with a copy control, and an error line.
package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/betterprompt-cli/internal/application"
	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth   = 80
	inputHeight    = 8
	resultMaxLines = 12
	chromeWidth    = 4
)

type fixDoneMsg struct {
	improved string
	err      error
}

type copyFeedbackExpiredMsg struct{}

type model struct {
	ctx        context.Context
	controller *application.Controller

	keys    keyMap
	help    help.Model
	input   textarea.Model
	result  viewport.Model
	spinner spinner.Model
	styles  styles
	width   int
}

func newModel(ctx context.Context, controller *application.Controller) model {
	input := textarea.New()
	input.Placeholder = "Paste or write the prompt you want to improve..."
	// No input cap: an over-long prompt is flagged in the view and rejected
	// by the server, never silently truncated.
	input.CharLimit = 0
	input.MaxHeight = 0
	input.ShowLineNumbers = false
	input.SetWidth(defaultWidth - chromeWidth)
	input.SetHeight(inputHeight)
	input.Focus()

	result := viewport.New(defaultWidth-chromeWidth, resultMaxLines)
	result.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	controller.Validate(input.Value())

	return model{
		ctx:        ctx,
		controller: controller,
		keys:       newKeyMap(),
		help:       help.New(),
		input:      input,
		result:     result,
		spinner:    s,
		styles:     newStyles(),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case fixDoneMsg:
		_, _ = m.controller.CompleteSubmit(msg.improved, msg.err)
		m.refreshResult()
		return m, nil
	case copyFeedbackExpiredMsg:
		return m, nil
	case spinner.TickMsg:
		if !m.controller.Session().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		// The textarea has no selection, so a visible result always wins.
		if !m.controller.ShouldCopyOnShortcut(false) {
			return m, tea.Quit
		}
		return m, m.copyResult()
	case key.Matches(msg, m.keys.CopyResult):
		return m, m.copyResult()
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.controller.Validate(m.input.Value())
	return m, cmd
}

func (m *model) submit() tea.Cmd {
	if m.controller.Session().Loading {
		return nil
	}

	prompt, err := m.controller.BeginSubmit(m.input.Value())
	if err != nil {
		m.refreshResult()
		return nil
	}

	ctx, controller := m.ctx, m.controller
	send := func() tea.Msg {
		improved, err := controller.Send(ctx, prompt)
		return fixDoneMsg{improved: improved, err: err}
	}

	return tea.Batch(m.spinner.Tick, send)
}

func (m *model) copyResult() tea.Cmd {
	if ok, _ := m.controller.Copy(m.ctx); !ok {
		return nil
	}

	return tea.Tick(domain.CopyFeedbackDuration, func(time.Time) tea.Msg {
		return copyFeedbackExpiredMsg{}
	})
}

func (m *model) resize(width int) {
	if width <= chromeWidth {
		return
	}
	m.width = width
	m.input.SetWidth(width - chromeWidth)
	m.result.Width = width - chromeWidth
	m.help.Width = width
	m.refreshResult()
}

func (m *model) refreshResult() {
	session := m.controller.Session()
	if !session.ResultVisible {
		m.result.SetContent("")
		return
	}

	wrapped := lipgloss.NewStyle().Width(m.result.Width).Render(session.Result)
	m.result.SetContent(wrapped)
	m.result.GotoTop()
}

var ErrUnexpectedFormModel = errors.New("unexpected final bubbletea model type")

type Options struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Run shows the form until the user quits. Cancelling ctx, or returning,
// aborts any request still in flight.
func Run(ctx context.Context, controller *application.Controller, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	finalModel, err := tea.NewProgram(newModel(ctx, controller), programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run form: %w", err)
	}

	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedFormModel
	}

	return nil
}
