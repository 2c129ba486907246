package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ByLCY/designkit/aigen"
	"github.com/ByLCY/designkit/studio"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case ThemeMsg:
		m.theme = msg.Theme
		m.styles = stylesFor(msg.Theme)
		return m, nil
	case spinner.TickMsg:
		if m.state != StateGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case GeneratedMsg:
		return m.handleGenerated(msg), nil
	case savedMsg:
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
			return m, nil
		}
		m.status, m.failed = "API key saved", false
		m.enterForm()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case StateSettings:
			return m.updateSettings(msg)
		case StateForm:
			return m.updateForm(msg)
		}
	}
	return m, nil
}

func (m Model) handleGenerated(msg GeneratedMsg) Model {
	if msg.Err != nil {
		m.status, m.failed = statusText(msg.Err), true
		if errors.Is(msg.Err, aigen.ErrMissingCredential) {
			m.enterSettings()
			return m
		}
		m.enterForm()
		return m
	}
	m.last = msg.Outcome
	m.status, m.failed = "Design generated successfully!", false
	if msg.Outcome != nil {
		m.status = fmt.Sprintf("Design generated successfully! %d elements (%s)", len(msg.Outcome.Elements), msg.Outcome.Source)
	}
	m.enterForm()
	return m
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.keys != nil && m.keys.HasKey() {
			m.enterForm()
		}
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.apiKey.Value())
		// 输入为空时保存按钮不可用
		if value == "" || m.keys == nil {
			return m, nil
		}
		return m, saveCmd(m.keys, value)
	}
	var cmd tea.Cmd
	m.apiKey, cmd = m.apiKey.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.enterSettings()
		return m, nil
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "left", "right":
		if m.focus < fieldDescription {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			m.choices[m.focus] = (m.choices[m.focus] + step + 3) % 3
			return m, nil
		}
	case "enter":
		if m.focus == fieldDescription {
			m.setFocus(fieldSubmit)
			return m, nil
		}
		if m.focus == fieldSubmit {
			return m.startGenerate()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}
	if m.focus == fieldDescription {
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.keys == nil || !m.keys.HasKey() {
		m.status, m.failed = statusText(aigen.ErrMissingCredential), true
		m.enterSettings()
		return m, nil
	}
	if m.generate == nil {
		m.status, m.failed = "generation is not configured", true
		return m, nil
	}
	m.state = StateGenerating
	m.status, m.failed = "", false
	m.description.Blur()
	req := studio.Request{Intent: m.Intent()}
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.generate, req))
}

// statusText 把生成错误转换为界面上显示的文字。
func statusText(err error) string {
	var upstream *aigen.UpstreamError
	switch {
	case errors.Is(err, aigen.ErrMissingCredential):
		return "API key not set"
	case errors.Is(err, aigen.ErrInvalidFormat):
		return "Invalid AI response format"
	case errors.As(err, &upstream):
		return fmt.Sprintf("Failed to generate design: status %d", upstream.StatusCode)
	default:
		return err.Error()
	}
}
