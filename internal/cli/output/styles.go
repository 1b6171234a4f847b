package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Value   lipgloss.Style
	Key     lipgloss.Style
}

// DefaultStyles returns the styles used on color terminals.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:  plain,
		Bold:    plain,
		Muted:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Value:   plain,
		Key:     plain,
	}
}
