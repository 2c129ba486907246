package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/studio"
	"github.com/ByLCY/designkit/themebridge"
)

// State 是界面当前所处的视图。
type State int

const (
	StateForm State = iota
	StateSettings
	StateGenerating
)

func (s State) String() string {
	switch s {
	case StateSettings:
		return "settings"
	case StateGenerating:
		return "generating"
	default:
		return "form"
	}
}

// GenerateFunc 执行一次生成，通常是 studio.Service.Generate。
type GenerateFunc func(ctx context.Context, req studio.Request) (*studio.Outcome, error)

// KeyStore 是设置页需要的凭据操作，*credential.Cache 实现该接口。
type KeyStore interface {
	HasKey() bool
	Masked() string
	Save(key string) error
}

// ThemeMsg 携带宿主推送的主题。
type ThemeMsg struct {
	Theme string
}

// GeneratedMsg 报告一次生成的结果。
type GeneratedMsg struct {
	Outcome *studio.Outcome
	Err     error
}

type savedMsg struct {
	err error
}

// form fields
const (
	fieldType = iota
	fieldStyle
	fieldScheme
	fieldDescription
	fieldSubmit
	fieldCount
)

var (
	typeOptions   = []layout.DesignType{layout.LandingPage, layout.Dashboard, layout.MobileApp}
	styleOptions  = []layout.Style{layout.StyleMinimal, layout.StyleModern, layout.StyleClassic}
	schemeOptions = []layout.ColorScheme{layout.SchemeLight, layout.SchemeDark, layout.SchemeColorful}
)

// Model 是设计生成界面的 Bubbletea 状态。
type Model struct {
	ctx      context.Context
	generate GenerateFunc
	keys     KeyStore

	state   State
	focus   int
	choices [3]int

	description textinput.Model
	apiKey      textinput.Model
	spinner     spinner.Model

	theme  string
	styles styles

	status   string
	failed   bool
	last     *studio.Outcome
	width    int
	height   int
	quitting bool
}

// NewModel 创建界面模型。没有已保存的 API key 时直接进入设置页。
func NewModel(ctx context.Context, generate GenerateFunc, keys KeyStore, theme string) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	desc := textinput.New()
	desc.Placeholder = "Describe your design (optional)"
	desc.CharLimit = 500

	key := textinput.New()
	key.Placeholder = "sk-or-..."
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot

	if theme != themebridge.Dark {
		theme = themebridge.Light
	}
	m := Model{
		ctx:         ctx,
		generate:    generate,
		keys:        keys,
		description: desc,
		apiKey:      key,
		spinner:     s,
		theme:       theme,
		styles:      stylesFor(theme),
	}
	if keys == nil || !keys.HasKey() {
		m.enterSettings()
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	if m.state == StateSettings {
		return textinput.Blink
	}
	return nil
}

// State 返回当前视图。
func (m Model) State() State { return m.state }

// Theme 返回当前主题。
func (m Model) Theme() string { return m.theme }

// Status 返回最近一条状态消息。
func (m Model) Status() string { return m.status }

// Intent 返回表单当前选择的设计意图。
func (m Model) Intent() layout.Intent {
	return layout.Intent{
		Type:        typeOptions[m.choices[fieldType]],
		Style:       styleOptions[m.choices[fieldStyle]],
		ColorScheme: schemeOptions[m.choices[fieldScheme]],
		Description: m.description.Value(),
	}
}

// Last 返回最近一次成功生成的结果。
func (m Model) Last() *studio.Outcome { return m.last }

func (m *Model) enterSettings() {
	m.state = StateSettings
	m.apiKey.SetValue("")
	m.apiKey.Focus()
	m.description.Blur()
}

func (m *Model) enterForm() {
	m.state = StateForm
	m.apiKey.Blur()
	m.setFocus(m.focus)
}

func (m *Model) setFocus(i int) {
	m.focus = (i + fieldCount) % fieldCount
	if m.focus == fieldDescription {
		m.description.Focus()
	} else {
		m.description.Blur()
	}
}

func generateCmd(ctx context.Context, fn GenerateFunc, req studio.Request) tea.Cmd {
	return func() tea.Msg {
		out, err := fn(ctx, req)
		return GeneratedMsg{Outcome: out, Err: err}
	}
}

func saveCmd(keys KeyStore, value string) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: keys.Save(value)}
	}
}
