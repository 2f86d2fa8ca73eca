package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles for the form.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Focused    lipgloss.Style
	InputField lipgloss.Style
	Result     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default form styles.
func DefaultStyles() *Styles {
	primary := lipgloss.Color("#7C3AED")
	muted := lipgloss.Color("#6C7086")
	success := lipgloss.Color("#A6E3A1")
	errColour := lipgloss.Color("#F38BA8")

	return &Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Label:      lipgloss.NewStyle().Width(9),
		Focused:    lipgloss.NewStyle().Width(9).Bold(true).Foreground(primary),
		InputField: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(muted),
		Result:     lipgloss.NewStyle().Foreground(success),
		Error:      lipgloss.NewStyle().Foreground(errColour),
		Help:       lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
