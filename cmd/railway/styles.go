package main

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles used by every command.
type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Miss  lipgloss.Style
	Dim   lipgloss.Style
}

var (
	primary = lipgloss.Color("#00ff9f")
	warning = lipgloss.Color("#ff5f87")
	dim     = lipgloss.Color("#6e7681")
)

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(primary),
		Label: lipgloss.NewStyle().Bold(true),
		Value: lipgloss.NewStyle().Foreground(primary),
		Miss:  lipgloss.NewStyle().Foreground(warning),
		Dim:   lipgloss.NewStyle().Foreground(dim),
	}
}

// plainStyles renders text unchanged.
func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{Title: s, Label: s, Value: s, Miss: s, Dim: s}
}
