package tui

import (
	"fmt"
	"strings"
)

var fieldLabels = [...]string{"Design type", "Style", "Color scheme", "Description"}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render("AI Design Generator"))
	b.WriteString("\n\n")

	switch m.state {
	case StateSettings:
		m.viewSettings(&b)
	case StateGenerating:
		fmt.Fprintf(&b, "%s Generating %s...\n", m.spinner.View(), m.Intent().Type)
	default:
		m.viewForm(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(m.styles.failure.Render(m.status))
		} else {
			b.WriteString(m.styles.success.Render(m.status))
		}
		b.WriteString("\n")
	}
	return m.styles.frame.Render(b.String())
}

func (m Model) viewForm(b *strings.Builder) {
	values := []string{
		string(typeOptions[m.choices[fieldType]]),
		string(styleOptions[m.choices[fieldStyle]]),
		string(schemeOptions[m.choices[fieldScheme]]),
	}
	for i, label := range fieldLabels {
		style := m.styles.label
		cursor := "  "
		if m.focus == i {
			style = m.styles.focused
			cursor = "> "
		}
		b.WriteString(style.Render(cursor + label + ": "))
		if i < fieldDescription {
			b.WriteString(m.styles.value.Render("‹ " + values[i] + " ›"))
		} else {
			b.WriteString(m.description.View())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	button := m.styles.disabled
	if m.focus == fieldSubmit {
		button = m.styles.button
	}
	b.WriteString(button.Render("Generate Design"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.muted.Render("tab/↑↓ move · ←→ change · enter select · ctrl+s settings · esc quit"))
	b.WriteString("\n")
}

func (m Model) viewSettings(b *strings.Builder) {
	b.WriteString(m.styles.label.Render("OpenRouter API key"))
	b.WriteString("\n")
	b.WriteString(m.apiKey.View())
	b.WriteString("\n")
	if m.keys != nil && m.keys.HasKey() {
		b.WriteString(m.styles.muted.Render("current: " + m.keys.Masked()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	button := m.styles.disabled
	if strings.TrimSpace(m.apiKey.Value()) != "" {
		button = m.styles.button
	}
	b.WriteString(button.Render("Save"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.muted.Render("enter save · esc back · ctrl+c quit"))
	b.WriteString("\n")
}
