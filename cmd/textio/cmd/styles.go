package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - Same as the console log formatter for consistency
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
)

type outputStyles struct {
	header     lipgloss.Style
	index      lipgloss.Style
	separator  lipgloss.Style
	ok         lipgloss.Style
	missing    lipgloss.Style
	errorLabel lipgloss.Style
}

var styles = outputStyles{
	header:     lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
	index:      lipgloss.NewStyle().Foreground(ColorMuted),
	separator:  lipgloss.NewStyle().Foreground(ColorSecondary),
	ok:         lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
	missing:    lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	errorLabel: lipgloss.NewStyle().Foreground(ColorError).Bold(true),
}

// fieldSeparator joins tokenized fields; with --pretty it is a coloured bar
func fieldSeparator() string {
	if pretty {
		return styles.separator.Render(" │ ")
	}
	return "\t"
}

// fileHeader renders the heading printed before each file's lines when
// several files are listed with --pretty
func fileHeader(path string) string {
	return styles.header.Render("==> " + path + " <==")
}
