package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cityassist/internal/catalog"
	"cityassist/internal/i18n"
	"cityassist/internal/models"
	"cityassist/internal/state"
)

const promptGenerationDelay = 1500 * time.Millisecond

type editorSection int

const (
	sectionIcon editorSection = iota
	sectionName
	sectionDescription
	sectionPrompt
	sectionBehavior
	sectionTools
	sectionQuickPrompts
	sectionDepartments
	sectionCount
)

// promptGeneratedMsg delivers the simulated AI-generated system prompt.
type promptGeneratedMsg struct {
	prompt string
}

// EditorModel is the assistant create/edit form.
type EditorModel struct {
	ctrl *state.Controller

	existing *models.Assistant

	icon         textinput.Model
	name         textinput.Model
	description  textinput.Model
	prompt       textarea.Model
	quickPrompts textarea.Model

	behaviorIndex int

	tools       []models.Tool
	toolCursor  int
	toolEnabled map[models.Tool]bool

	departments []models.FlatDepartment
	deptCursor  int
	deptEnabled map[string]bool

	section    editorSection
	generating bool
	spinner    spinner.Model
	errText    string

	width  int
	height int
}

func NewEditorModel(ctrl *state.Controller, existing *models.Assistant, width, height int) EditorModel {
	lang := ctrl.Language()

	icon := textinput.New()
	icon.CharLimit = 8
	icon.Width = 10

	name := textinput.New()
	name.Placeholder = i18n.T(i18n.KeyNamePlaceholder, lang)
	name.CharLimit = 100
	name.Width = width - 12

	description := textinput.New()
	description.Placeholder = i18n.T(i18n.KeyDescriptionPlaceholder, lang)
	description.CharLimit = 300
	description.Width = width - 12

	prompt := textarea.New()
	prompt.CharLimit = 4000
	prompt.SetWidth(width - 12)
	prompt.SetHeight(4)
	prompt.ShowLineNumbers = false

	quick := textarea.New()
	quick.Placeholder = "One prompt per line"
	quick.CharLimit = 2000
	quick.SetWidth(width - 12)
	quick.SetHeight(3)
	quick.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	m := EditorModel{
		ctrl:         ctrl,
		existing:     existing,
		icon:         icon,
		name:         name,
		description:  description,
		prompt:       prompt,
		quickPrompts: quick,
		behaviorIndex: 1,
		tools:        models.Tools(),
		toolEnabled:  make(map[models.Tool]bool),
		departments:  models.FlattenDepartments(catalog.Departments()),
		deptEnabled:  make(map[string]bool),
		spinner:      sp,
		width:        width,
		height:       height,
	}

	if existing != nil {
		m.icon.SetValue(existing.Icon)
		m.name.SetValue(existing.Name)
		m.description.SetValue(existing.Description)
		m.prompt.SetValue(existing.SystemPrompt)
		m.quickPrompts.SetValue(strings.Join(existing.QuickPrompts, "\n"))
		for i, b := range behaviorOrder {
			if b == existing.ResponseBehavior {
				m.behaviorIndex = i
			}
		}
		for _, t := range existing.AllowedTools {
			m.toolEnabled[models.Tool(t)] = true
		}
		for _, d := range existing.PublishedDepartments {
			m.deptEnabled[d] = true
		}
	}

	m.section = sectionName
	m.name.Focus()
	return m
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// draft collects the form into an assistant draft.
func (m EditorModel) draft() models.AssistantDraft {
	var tools []string
	for _, t := range m.tools {
		if m.toolEnabled[t] {
			tools = append(tools, string(t))
		}
	}

	var depts []string
	for _, d := range m.departments {
		if m.deptEnabled[d.ID] {
			depts = append(depts, d.ID)
		}
	}

	var prompts []string
	for _, line := range strings.Split(m.quickPrompts.Value(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			prompts = append(prompts, line)
		}
	}

	return models.AssistantDraft{
		Name:                 strings.TrimSpace(m.name.Value()),
		Description:          strings.TrimSpace(m.description.Value()),
		Icon:                 strings.TrimSpace(m.icon.Value()),
		SystemPrompt:         strings.TrimSpace(m.prompt.Value()),
		ResponseBehavior:     behaviorOrder[m.behaviorIndex],
		AllowedTools:         tools,
		PublishedDepartments: depts,
		QuickPrompts:         prompts,
	}
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.name.Width = msg.Width - 12
		m.description.Width = msg.Width - 12
		m.prompt.SetWidth(msg.Width - 12)
		m.quickPrompts.SetWidth(msg.Width - 12)
		return m, nil

	case promptGeneratedMsg:
		m.generating = false
		m.prompt.SetValue(msg.prompt)
		return m, nil

	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+x":
			return m, tea.Quit

		case "esc":
			return m, emit(EditorCancelled{})

		case "tab":
			m.setSection((m.section + 1) % sectionCount)
			return m, nil

		case "shift+tab":
			m.setSection((m.section + sectionCount - 1) % sectionCount)
			return m, nil

		case "ctrl+s":
			draft := m.draft()
			if err := draft.Validate(); err != nil {
				m.errText = i18n.T(i18n.KeyFillRequiredFields, m.ctrl.Language())
				return m, nil
			}
			return m, emit(AssistantSaved{Existing: m.existing, Draft: draft})

		case "ctrl+e":
			if m.existing != nil {
				return m, emit(ExportRequested{Assistant: *m.existing})
			}
			return m, nil

		case "ctrl+g":
			return m.startGeneration()
		}
		return m.updateSection(msg)
	}
	return m, nil
}

// startGeneration kicks off the simulated prompt generation; it needs a
// description to work from.
func (m EditorModel) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	description := strings.TrimSpace(m.description.Value())
	if description == "" {
		m.errText = i18n.T(i18n.KeyAddDescriptionFirst, m.ctrl.Language())
		return m, nil
	}
	m.generating = true
	m.errText = ""

	name := strings.TrimSpace(m.name.Value())
	prompt := generateSystemPrompt(name, description)
	return m, tea.Batch(
		m.spinner.Tick,
		tea.Tick(promptGenerationDelay, func(time.Time) tea.Msg {
			return promptGeneratedMsg{prompt: prompt}
		}),
	)
}

// generateSystemPrompt fabricates a plausible system prompt from the form
// fields, standing in for a real generation backend.
func generateSystemPrompt(name, description string) string {
	who := "a helpful assistant"
	if name != "" {
		who = name
	}
	if !strings.HasSuffix(description, ".") {
		description += "."
	}
	return fmt.Sprintf("You are %s. %s Answer clearly and factually, structure longer answers with headings or lists, and ask a clarifying question when a request is ambiguous.", who, description)
}

func (m *EditorModel) setSection(s editorSection) {
	m.icon.Blur()
	m.name.Blur()
	m.description.Blur()
	m.prompt.Blur()
	m.quickPrompts.Blur()

	m.section = s
	switch s {
	case sectionIcon:
		m.icon.Focus()
	case sectionName:
		m.name.Focus()
	case sectionDescription:
		m.description.Focus()
	case sectionPrompt:
		m.prompt.Focus()
	case sectionQuickPrompts:
		m.quickPrompts.Focus()
	}
}

func (m EditorModel) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.section {
	case sectionIcon:
		m.icon, cmd = m.icon.Update(msg)
	case sectionName:
		m.name, cmd = m.name.Update(msg)
	case sectionDescription:
		m.description, cmd = m.description.Update(msg)
	case sectionPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case sectionQuickPrompts:
		m.quickPrompts, cmd = m.quickPrompts.Update(msg)

	case sectionBehavior:
		switch msg.String() {
		case "left":
			if m.behaviorIndex > 0 {
				m.behaviorIndex--
			}
		case "right":
			if m.behaviorIndex < len(behaviorOrder)-1 {
				m.behaviorIndex++
			}
		}

	case sectionTools:
		switch msg.String() {
		case "up":
			if m.toolCursor > 0 {
				m.toolCursor--
			}
		case "down":
			if m.toolCursor < len(m.tools)-1 {
				m.toolCursor++
			}
		case " ", "enter":
			t := m.tools[m.toolCursor]
			m.toolEnabled[t] = !m.toolEnabled[t]
		}

	case sectionDepartments:
		switch msg.String() {
		case "up":
			if m.deptCursor > 0 {
				m.deptCursor--
			}
		case "down":
			if m.deptCursor < len(m.departments)-1 {
				m.deptCursor++
			}
		case " ", "enter":
			id := m.departments[m.deptCursor].ID
			m.deptEnabled[id] = !m.deptEnabled[id]
		}
	}
	return m, cmd
}

func (m EditorModel) View() string {
	lang := m.ctrl.Language()
	var b strings.Builder

	title := i18n.T(i18n.KeyCreateNewAssistant, lang)
	if m.existing != nil {
		title = i18n.T(i18n.KeyEditAssistantTitle, lang)
	}
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	b.WriteString(SubtitleStyle.Render(i18n.T(i18n.KeyBasicInformation, lang)) + "\n")
	b.WriteString(m.fieldLabel(sectionIcon, i18n.T(i18n.KeyIcon, lang)) + " " + m.icon.View() + "\n")
	b.WriteString(m.fieldLabel(sectionName, i18n.T(i18n.KeyName, lang)+" *") + "\n" + m.name.View() + "\n")
	b.WriteString(m.fieldLabel(sectionDescription, i18n.T(i18n.KeyDescriptionLabel, lang)+" *") + "\n" + m.description.View() + "\n\n")

	promptLabel := m.fieldLabel(sectionPrompt, i18n.T(i18n.KeySystemPromptLabel, lang))
	if m.generating {
		promptLabel += "  " + m.spinner.View() + " " + SubtitleStyle.Render(i18n.T(i18n.KeyGenerating, lang))
	} else {
		promptLabel += "  " + DimmedItemStyle.Render("Ctrl+G: "+i18n.T(i18n.KeyGenerateWithAI, lang))
	}
	b.WriteString(promptLabel + "\n" + m.prompt.View() + "\n\n")

	b.WriteString(m.fieldLabel(sectionBehavior, i18n.T(i18n.KeyResponseBehavior, lang)) + "\n")
	var choices []string
	for i, behavior := range behaviorOrder {
		text := behaviorLabel(behavior, lang)
		if i == m.behaviorIndex {
			choices = append(choices, ActiveButtonStyle.Padding(0, 1).Render(text))
		} else {
			choices = append(choices, InactiveButtonStyle.Padding(0, 1).Render(text))
		}
	}
	b.WriteString(strings.Join(choices, " ") + "\n\n")

	b.WriteString(m.fieldLabel(sectionTools, i18n.T(i18n.KeyAllowedTools, lang)) + "\n")
	b.WriteString(m.renderTools() + "\n")

	b.WriteString(m.fieldLabel(sectionQuickPrompts, i18n.T(i18n.KeyQuickPromptsLabel, lang)) + "\n")
	b.WriteString(m.quickPrompts.View() + "\n\n")

	b.WriteString(m.fieldLabel(sectionDepartments, i18n.T(i18n.KeyPublishDepartments, lang)) + "\n")
	b.WriteString(m.renderDepartments() + "\n")

	if m.errText != "" {
		b.WriteString(ErrorMessageStyle.Render(m.errText) + "\n")
	}

	helpText := "Tab: Next Field • Space: Toggle • Ctrl+S: Save • Ctrl+G: Generate Prompt • Esc: Cancel"
	if m.existing != nil {
		helpText = "Tab: Next Field • Space: Toggle • Ctrl+S: Save • Ctrl+E: Export • Esc: Cancel"
	}
	b.WriteString(helpStyle.Render(helpText))

	return b.String()
}

func (m EditorModel) fieldLabel(s editorSection, text string) string {
	if m.section == s {
		return ActiveLabelStyle.Render(text)
	}
	return InactiveLabelStyle.Render(text)
}

func (m EditorModel) renderTools() string {
	var b strings.Builder
	for i, t := range m.tools {
		check := "[ ]"
		if m.toolEnabled[t] {
			check = "[x]"
		}
		name, _ := models.ToolDisplayName(string(t))
		line := fmt.Sprintf("%s %s", check, name)

		if m.section == sectionTools && i == m.toolCursor {
			b.WriteString(SelectedItemStyle.Render("▶ "+line) + "\n")
		} else {
			b.WriteString(NormalItemStyle.Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (m EditorModel) renderDepartments() string {
	var b strings.Builder
	for i, d := range m.departments {
		check := "[ ]"
		if m.deptEnabled[d.ID] {
			check = "[x]"
		}
		indent := strings.Repeat("  ", d.Depth)
		line := fmt.Sprintf("%s%s %s", indent, check, d.Name)

		if m.section == sectionDepartments && i == m.deptCursor {
			b.WriteString(SelectedItemStyle.Render("▶ "+line) + "\n")
		} else {
			b.WriteString(NormalItemStyle.Render("  "+line) + "\n")
		}
	}
	return b.String()
}
