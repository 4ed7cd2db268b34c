package form

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title          lipgloss.Style
	subtitle       lipgloss.Style
	input          lipgloss.Style
	button         lipgloss.Style
	buttonDisabled lipgloss.Style
	buttonDone     lipgloss.Style
	loading        lipgloss.Style
	errorBox       lipgloss.Style
	resultTitle    lipgloss.Style
	resultBox      lipgloss.Style
	section        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		subtitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("244")),
		button:         lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")),
		buttonDisabled: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245")).Background(lipgloss.Color("237")),
		buttonDone:     lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("34")),
		loading:        lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		errorBox:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		resultTitle:    lipgloss.NewStyle().Bold(true),
		resultBox:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		section:        lipgloss.NewStyle().MarginTop(1),
	}
}
