package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/gantterm/internal/theme"
)

// Styles is the lipgloss surface of a resolved theme.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	SubHeader   lipgloss.Style
	Sidebar     lipgloss.Style
	Selected    lipgloss.Style
	Footer      lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
}

func NewStyles(th theme.Config) Styles {
	header := lipgloss.NewStyle().
		Background(lipgloss.Color(th.HeaderBackground)).
		Foreground(lipgloss.Color(th.HeaderForeground))
	return Styles{
		Title:       header.Bold(true),
		Header:      header,
		SubHeader:   header.Foreground(lipgloss.Color(th.SubHeaderForeground)),
		Sidebar:     lipgloss.NewStyle().Background(lipgloss.Color(th.SidebarBackground)),
		Selected:    lipgloss.NewStyle().Background(lipgloss.Color(th.SidebarBackground)).Bold(true).Reverse(true),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.SubHeaderForeground)),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		StatusInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
	}
}
