package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	launcherStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	thinkingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	closedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
