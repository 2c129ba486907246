package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ByLCY/designkit/themebridge"
)

// styles 是一套随宿主主题切换的样式。
type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	focused  lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	frame    lipgloss.Style
}

func stylesFor(theme string) styles {
	accent, text, muted, border := lipgloss.Color("#3b82f6"), lipgloss.Color("#1f2937"), lipgloss.Color("244"), lipgloss.Color("#e5e7eb")
	if theme == themebridge.Dark {
		accent, text, muted, border = lipgloss.Color("#60a5fa"), lipgloss.Color("#f3f4f6"), lipgloss.Color("240"), lipgloss.Color("#374151")
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		label:    lipgloss.NewStyle().Foreground(text),
		focused:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		value:    lipgloss.NewStyle().Foreground(text),
		muted:    lipgloss.NewStyle().Foreground(muted),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		button:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(accent),
		disabled: lipgloss.NewStyle().Padding(0, 2).Foreground(muted).Background(border),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(1, 2),
	}
}
