package form

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/betterprompt-cli/internal/domain"
)

func (m model) View() string {
	session := m.controller.Session()

	var b strings.Builder
	b.WriteString(m.styles.title.Render("BetterPrompt"))
	b.WriteString("\n")
	b.WriteString(m.styles.subtitle.Render("Turn a rough prompt into a clear, structured one."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.lengthView())
	b.WriteString("\n")
	b.WriteString(m.submitView())

	if session.ErrorVisible {
		b.WriteString("\n")
		b.WriteString(m.styles.section.Render(m.styles.errorBox.Render(session.Error)))
	}

	if session.ResultVisible {
		b.WriteString("\n")
		b.WriteString(m.styles.section.Render(m.styles.resultTitle.Render("Improved prompt")))
		b.WriteString("\n")
		b.WriteString(m.styles.resultBox.Render(m.result.View()))
		b.WriteString("\n")
		b.WriteString(m.copyView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m model) submitView() string {
	label := m.controller.SubmitLabel()
	if m.controller.Session().Loading {
		return m.styles.loading.Render(m.spinner.View() + " " + label)
	}
	if !m.controller.CanSubmit() {
		return m.styles.buttonDisabled.Render(label)
	}
	return m.styles.button.Render(label)
}

func (m model) copyView() string {
	label := m.controller.CopyLabel()
	if label == domain.LabelCopied {
		return m.styles.buttonDone.Render(label)
	}
	return m.styles.button.Render(label)
}

func (m model) lengthView() string {
	value := m.input.Value()
	counter := fmt.Sprintf("%d/%d", utf8.RuneCountInString(value), domain.MaxPromptLength)
	if domain.ExceedsMaxLength(value) {
		return m.styles.errorBox.Render(counter + " " + domain.MessageOverLimit)
	}
	return m.styles.subtitle.Render(counter)
}
