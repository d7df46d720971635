// Package report renders Balance and Register results as aligned
// terminal tables.
package report

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across balance/register
// rendering. Zero value is usable; NewStyles just documents intent.
type Styles struct {
	Header   lipgloss.Style
	Account  lipgloss.Style
	Amount   lipgloss.Style
	Negative lipgloss.Style
	Total    lipgloss.Style
	Dim      lipgloss.Style
}

// NewStyles returns the default style set.
func NewStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true),
		Account:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Amount:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Total:    lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Faint(true),
	}
}
