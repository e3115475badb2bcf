package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.Color("#9ece6a")
	colorError   = lipgloss.Color("#f7768e")
	colorMuted   = lipgloss.Color("#565f89")
	colorPath    = lipgloss.Color("#7aa2f7")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	pathStyle    = lipgloss.NewStyle().Foreground(colorPath)
)
