package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"cityassist/internal/i18n"
	"cityassist/internal/state"
)

const versionNotesMarkdown = `# CityAssist

## 0.3.0

- Secure workspace with city-hosted models (MUC-GPT Secure, MUC-Mistral Large)
- Assistant import and export as JSON definitions
- Quick prompts on assistant chats

## 0.2.0

- Assistant editor with AI-generated system prompts
- Favorites and department publishing
- German translation

## 0.1.0

- Chats with simulated assistant replies
- Recommended and community assistant catalog
- Local persistence
`

// VersionModel shows the release notes in a scrollable viewport.
type VersionModel struct {
	ctrl     *state.Controller
	viewport viewport.Model
	width    int
	height   int
}

func NewVersionModel(ctrl *state.Controller, width, height int) VersionModel {
	vp := viewport.New(width-6, height-6)
	vp.KeyMap.Down = key.NewBinding(key.WithKeys("down"))
	vp.KeyMap.Up = key.NewBinding(key.WithKeys("up"))
	vp.KeyMap.PageDown = key.NewBinding(key.WithKeys("pgdown"))
	vp.KeyMap.PageUp = key.NewBinding(key.WithKeys("pgup"))
	vp.KeyMap.HalfPageDown = key.NewBinding()
	vp.KeyMap.HalfPageUp = key.NewBinding()

	m := VersionModel{ctrl: ctrl, viewport: vp, width: width, height: height}
	m.render()
	return m
}

func (m *VersionModel) render() {
	renderer := createMarkdownRenderer(m.width)
	content := versionNotesMarkdown
	if renderer != nil {
		if rendered, err := renderer.Render(versionNotesMarkdown); err == nil {
			content = strings.TrimRight(rendered, "\n")
		}
	}
	m.viewport.SetContent(content)
}

func (m VersionModel) Init() tea.Cmd {
	return nil
}

func (m VersionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 6
		m.viewport.Height = msg.Height - 6
		m.render()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+x":
			return m, tea.Quit
		case "esc", "enter":
			return m, emit(HomeRequested{})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m VersionModel) View() string {
	lang := m.ctrl.Language()
	var b strings.Builder
	b.WriteString(TitleStyle.Render(i18n.T(i18n.KeyVersionNotes, lang)) + "\n\n")
	b.WriteString(ViewportBorderStyle.Render(m.viewport.View()) + "\n")
	b.WriteString(helpStyle.Render("↑/↓: Scroll • Esc: " + i18n.T(i18n.KeyBack, lang)))
	return b.String()
}
