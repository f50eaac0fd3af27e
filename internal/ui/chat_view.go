package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"cityassist/internal/i18n"
	"cityassist/internal/models"
	"cityassist/internal/securemode"
	"cityassist/internal/state"
)

const (
	titleHeight    = 4
	textareaHeight = 5
	helpHeight     = 2
	chatPadding    = 2
)

type chatMode int

const (
	modeCompose chatMode = iota
	modeModelSelect
	modeSettings
	modeRename
)

// ChatModel renders the conversation view: message history in a viewport,
// a compose box and inline panels for model selection, chat settings and
// renaming.
type ChatModel struct {
	ctrl *state.Controller

	viewport   viewport.Model
	textarea   textarea.Model
	spinner    spinner.Model
	mdRenderer *glamour.TermRenderer

	mode    chatMode
	waiting bool
	errText string

	// model selection panel
	modelChoices []securemode.LLMModel
	modelIndex   int

	// settings panel
	behaviorIndex int
	instructions  textarea.Model
	settingsFocus int // 0 = behavior, 1 = instructions

	renameInput textinput.Model

	width  int
	height int
}

// createMarkdownRenderer creates a markdown renderer with fallback handling
func createMarkdownRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-10),
	)
	if err == nil {
		return renderer
	}
	log.Error().Err(err).Msg("failed to create markdown renderer with auto style, trying fallback")

	renderer, err = glamour.NewTermRenderer(
		glamour.WithWordWrap(width - 10),
	)
	if err == nil {
		return renderer
	}
	log.Error().Err(err).Msg("failed to create markdown renderer with basic style, using no style")

	renderer, err = glamour.NewTermRenderer()
	if err != nil {
		log.Error().Err(err).Msg("failed to create basic markdown renderer")
		return nil
	}
	return renderer
}

func NewChatModel(ctrl *state.Controller, width, height int) ChatModel {
	ta := textarea.New()
	ta.Placeholder = i18n.T(i18n.KeyTypeYourMessage, ctrl.Language())
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetWidth(width - 4)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	// Keep only essential editing keys
	ta.KeyMap.CharacterForward = key.NewBinding(key.WithKeys("right"))
	ta.KeyMap.CharacterBackward = key.NewBinding(key.WithKeys("left"))
	ta.KeyMap.LineStart = key.NewBinding(key.WithKeys("home"))
	ta.KeyMap.LineEnd = key.NewBinding(key.WithKeys("end"))
	ta.KeyMap.DeleteCharacterBackward = key.NewBinding(key.WithKeys("backspace"))
	ta.KeyMap.DeleteCharacterForward = key.NewBinding(key.WithKeys("delete"))
	ta.KeyMap.LineNext = key.NewBinding()
	ta.KeyMap.LinePrevious = key.NewBinding()
	ta.KeyMap.WordForward = key.NewBinding()
	ta.KeyMap.WordBackward = key.NewBinding()
	ta.KeyMap.DeleteWordBackward = key.NewBinding()
	ta.KeyMap.DeleteWordForward = key.NewBinding()
	ta.KeyMap.DeleteAfterCursor = key.NewBinding()
	ta.KeyMap.DeleteBeforeCursor = key.NewBinding()
	ta.KeyMap.InsertNewline = key.NewBinding()
	ta.KeyMap.Paste = key.NewBinding()

	viewportHeight := height - titleHeight - textareaHeight - helpHeight - chatPadding
	vp := viewport.New(width-6, viewportHeight)
	vp.SetContent("")
	vp.MouseWheelDelta = 2

	vp.KeyMap.Down = key.NewBinding(key.WithKeys("down"))
	vp.KeyMap.Up = key.NewBinding(key.WithKeys("up"))
	vp.KeyMap.PageDown = key.NewBinding(key.WithKeys("pgdown"))
	vp.KeyMap.PageUp = key.NewBinding(key.WithKeys("pgup"))
	vp.KeyMap.HalfPageDown = key.NewBinding()
	vp.KeyMap.HalfPageUp = key.NewBinding()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	instructions := textarea.New()
	instructions.CharLimit = 2000
	instructions.SetWidth(width - 12)
	instructions.SetHeight(4)
	instructions.ShowLineNumbers = false

	ri := textinput.New()
	ri.CharLimit = 200

	return ChatModel{
		ctrl:         ctrl,
		viewport:     vp,
		textarea:     ta,
		spinner:      sp,
		mdRenderer:   createMarkdownRenderer(width),
		instructions: instructions,
		renameInput:  ri,
		width:        width,
		height:       height,
	}
}

// Refresh re-renders the viewport from the current chat.
func (m *ChatModel) Refresh() {
	m.textarea.Placeholder = i18n.T(i18n.KeyTypeYourMessage, m.ctrl.Language())
	m.renderMessages()
	m.viewport.GotoBottom()
}

// SetWaiting toggles the reply-in-flight indicator.
func (m *ChatModel) SetWaiting(waiting bool) {
	m.waiting = waiting
	if !waiting {
		m.errText = ""
	}
}

// SetError surfaces a failed reply in the status line.
func (m *ChatModel) SetError(text string) {
	m.waiting = false
	m.errText = text
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := msg.Height - titleHeight - textareaHeight - helpHeight - chatPadding
		m.viewport.Width = msg.Width - 6
		m.viewport.Height = viewportHeight
		m.textarea.SetWidth(msg.Width - 4)
		m.instructions.SetWidth(msg.Width - 12)
		m.mdRenderer = createMarkdownRenderer(msg.Width)
		m.renderMessages()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeModelSelect:
			return m.updateModelSelect(msg)
		case modeSettings:
			return m.updateSettings(msg)
		case modeRename:
			return m.updateRename(msg)
		}
		switch msg.String() {
		case "ctrl+x":
			return m, tea.Quit

		case "esc":
			return m, emit(HomeRequested{})

		case "ctrl+l":
			m.mode = modeModelSelect
			m.modelChoices = m.ctrl.Gate().SelectableModels()
			m.modelIndex = 0
			if chat := m.ctrl.CurrentChat(); chat != nil {
				for i, mm := range m.modelChoices {
					if mm.ID == chat.LLMModel {
						m.modelIndex = i
					}
				}
			}
			return m, nil

		case "ctrl+o":
			return m.openSettings()

		case "ctrl+r":
			if chat := m.ctrl.CurrentChat(); chat != nil {
				m.mode = modeRename
				m.renameInput.SetValue(chat.Title)
				m.renameInput.Focus()
				m.textarea.Blur()
			}
			return m, nil

		case "enter":
			if !m.waiting && m.textarea.Value() != "" {
				content := m.textarea.Value()
				m.textarea.Reset()
				return m, emit(MessageSubmitted{Content: content})
			}
			return m, nil

		default:
			// Number keys fire quick prompts while the chat is still empty.
			if cmd := m.quickPromptFor(msg.String()); cmd != nil {
				return m, cmd
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if !m.waiting && m.mode == modeCompose {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// quickPromptFor maps "1".."9" to the assistant's quick prompts when the
// conversation has no messages yet.
func (m ChatModel) quickPromptFor(keyName string) tea.Cmd {
	chat := m.ctrl.CurrentChat()
	if chat == nil || len(chat.Messages) > 0 || m.waiting {
		return nil
	}
	if len(keyName) != 1 || keyName[0] < '1' || keyName[0] > '9' {
		return nil
	}
	assistant := m.ctrl.Catalog().Resolve(chat.AssistantID)
	if assistant == nil {
		return nil
	}
	idx := int(keyName[0] - '1')
	if idx >= len(assistant.QuickPrompts) {
		return nil
	}
	return emit(MessageSubmitted{Content: assistant.QuickPrompts[idx]})
}

func (m ChatModel) openSettings() (tea.Model, tea.Cmd) {
	chat := m.ctrl.CurrentChat()
	if chat == nil {
		return m, nil
	}
	m.mode = modeSettings
	m.settingsFocus = 0
	m.behaviorIndex = 1
	for i, b := range behaviorOrder {
		if b == chat.ResponseBehavior {
			m.behaviorIndex = i
		}
	}
	m.instructions.SetValue(chat.SystemPrompt)
	m.instructions.Placeholder = i18n.T(i18n.KeyCustomInstructionsPlaceholder, m.ctrl.Language())
	m.textarea.Blur()
	return m, nil
}

var behaviorOrder = models.ResponseBehaviors()

func (m ChatModel) updateModelSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.modelIndex > 0 {
			m.modelIndex--
		}
	case "down":
		if m.modelIndex < len(m.modelChoices)-1 {
			m.modelIndex++
		}
	case "enter":
		if m.modelIndex < len(m.modelChoices) {
			id := m.modelChoices[m.modelIndex].ID
			m.mode = modeCompose
			m.textarea.Focus()
			return m, emit(ModelSelected{ModelID: id})
		}
	case "esc":
		m.mode = modeCompose
		m.textarea.Focus()
	}
	return m, nil
}

func (m ChatModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.settingsFocus = (m.settingsFocus + 1) % 2
		if m.settingsFocus == 1 {
			m.instructions.Focus()
		} else {
			m.instructions.Blur()
		}
		return m, nil

	case "left":
		if m.settingsFocus == 0 && m.behaviorIndex > 0 {
			m.behaviorIndex--
			return m, nil
		}

	case "right":
		if m.settingsFocus == 0 && m.behaviorIndex < len(behaviorOrder)-1 {
			m.behaviorIndex++
			return m, nil
		}

	case "ctrl+s":
		behavior := behaviorOrder[m.behaviorIndex]
		prompt := m.instructions.Value()
		m.mode = modeCompose
		m.instructions.Blur()
		m.textarea.Focus()
		return m, emit(ChatSettingsSaved{Behavior: behavior, SystemPrompt: prompt})

	case "esc":
		m.mode = modeCompose
		m.instructions.Blur()
		m.textarea.Focus()
		return m, nil
	}

	if m.settingsFocus == 1 {
		var cmd tea.Cmd
		m.instructions, cmd = m.instructions.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ChatModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.renameInput.Value()
		m.mode = modeCompose
		m.renameInput.Blur()
		m.textarea.Focus()
		if chat := m.ctrl.CurrentChat(); chat != nil && title != "" {
			return m, emit(ChatRenamed{ChatID: chat.ID, Title: title})
		}
		return m, nil

	case "esc":
		m.mode = modeCompose
		m.renameInput.Blur()
		m.textarea.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m ChatModel) View() string {
	lang := m.ctrl.Language()
	chat := m.ctrl.CurrentChat()
	if chat == nil {
		return errorStyle.Render("No chat selected\n\nPress Esc to go back")
	}

	var b strings.Builder

	title := chat.Title
	if title == "" {
		title = i18n.T(i18n.KeyNewChat, lang)
	}
	b.WriteString(TitleStyle.Render(title))
	if m.ctrl.Gate().Active() {
		b.WriteString("  " + SecureBadgeStyle.Render(i18n.T(i18n.KeySecureMode, lang)))
	}
	b.WriteString("\n")

	b.WriteString(statusBarStyle.Render(m.statusLine(chat, lang)) + "\n\n")

	switch m.mode {
	case modeModelSelect:
		b.WriteString(m.renderModelSelect(lang))
	case modeSettings:
		b.WriteString(m.renderSettings(lang))
	case modeRename:
		b.WriteString(ActiveLabelStyle.Render(i18n.T(i18n.KeyRenameChat, lang)) + "\n")
		b.WriteString(m.renameInput.View() + "\n")
	default:
		b.WriteString(ViewportBorderStyle.Render(m.viewport.View()))
		b.WriteString("\n")
		b.WriteString(m.textarea.View() + "\n")
	}

	helpText := "Enter: Send • Ctrl+L: Model • Ctrl+O: Settings • Ctrl+R: Rename • ↑/↓: Scroll • Esc: Back • Ctrl+X: Exit"
	switch m.mode {
	case modeModelSelect:
		helpText = "↑/↓: Navigate • Enter: Select • Esc: Back"
	case modeSettings:
		helpText = "Tab: Focus • ←/→: Style • Ctrl+S: Save • Esc: Cancel"
	case modeRename:
		helpText = "Enter: Save • Esc: Cancel"
	}
	b.WriteString(helpStyle.Render(helpText))

	return b.String()
}

func (m ChatModel) statusLine(chat *models.Chat, lang i18n.Language) string {
	assistant := m.ctrl.Catalog().Resolve(chat.AssistantID)
	behavior := models.EffectiveBehavior(chat, assistant)

	modelName := chat.LLMModel
	if modelName == "" {
		modelName = securemode.DefaultModelID(m.ctrl.Gate().Active())
	}
	if mm, ok := securemode.ModelByID(modelName); ok {
		modelName = mm.Name
	}

	line := fmt.Sprintf("%s | %s", modelName, behaviorLabel(behavior, lang))
	if assistant != nil {
		line = fmt.Sprintf("%s %s | %s", assistant.Icon, assistant.Name, line)
	}
	if m.waiting {
		line += " | " + m.spinner.View() + " ..."
	}
	if m.errText != "" {
		line += " | " + ErrorMessageStyle.Render(m.errText)
	}
	return line
}

func behaviorLabel(b models.ResponseBehavior, lang i18n.Language) string {
	switch b {
	case models.BehaviorPrecise:
		return i18n.T(i18n.KeyPrecise, lang)
	case models.BehaviorCreative:
		return i18n.T(i18n.KeyCreative, lang)
	default:
		return i18n.T(i18n.KeyBalanced, lang)
	}
}

func (m ChatModel) renderModelSelect(lang i18n.Language) string {
	var b strings.Builder
	b.WriteString(ActiveLabelStyle.Render(i18n.T(i18n.KeySelectAIModel, lang)) + "\n")
	b.WriteString(SubtitleStyle.Render(i18n.T(i18n.KeyChooseAIForChat, lang)) + "\n\n")

	for i, mm := range m.modelChoices {
		indicator := "  "
		style := NormalItemStyle
		if i == m.modelIndex {
			indicator = "▶ "
			style = SelectedItemStyle
		}
		b.WriteString(style.Render(indicator+mm.Name) + "\n")
		b.WriteString(DimmedItemStyle.Render("    "+mm.Description) + "\n")
	}
	return b.String()
}

func (m ChatModel) renderSettings(lang i18n.Language) string {
	var b strings.Builder
	b.WriteString(ActiveLabelStyle.Render(i18n.T(i18n.KeyChatSettings, lang)) + "\n")
	b.WriteString(SubtitleStyle.Render(i18n.T(i18n.KeyCustomizeAIResponses, lang)) + "\n\n")

	label := InactiveLabelStyle
	if m.settingsFocus == 0 {
		label = ActiveLabelStyle
	}
	b.WriteString(label.Render(i18n.T(i18n.KeyResponseStyle, lang)) + "\n")

	var choices []string
	for i, behavior := range behaviorOrder {
		text := behaviorLabel(behavior, lang)
		if i == m.behaviorIndex {
			choices = append(choices, ActiveButtonStyle.Padding(0, 1).Render(text))
		} else {
			choices = append(choices, InactiveButtonStyle.Padding(0, 1).Render(text))
		}
	}
	b.WriteString(strings.Join(choices, " ") + "\n")

	descKey := i18n.KeyBalancedDescription
	switch behaviorOrder[m.behaviorIndex] {
	case models.BehaviorPrecise:
		descKey = i18n.KeyPreciseDescription
	case models.BehaviorCreative:
		descKey = i18n.KeyCreativeDescription
	}
	b.WriteString(DimmedItemStyle.Render(i18n.T(descKey, lang)) + "\n\n")

	label = InactiveLabelStyle
	if m.settingsFocus == 1 {
		label = ActiveLabelStyle
	}
	b.WriteString(label.Render(i18n.T(i18n.KeyCustomInstructions, lang)) + "\n")
	b.WriteString(SubtitleStyle.Render(i18n.T(i18n.KeyTellAIHowToBehave, lang)) + "\n")
	b.WriteString(m.instructions.View() + "\n")

	return b.String()
}

// safeRenderMarkdown renders markdown with panic recovery and fallback.
func (m *ChatModel) safeRenderMarkdown(content string) string {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("panic in markdown rendering")
		}
	}()

	if m.mdRenderer == nil || content == "" {
		return content
	}

	rendered, err := m.mdRenderer.Render(content)
	if err != nil {
		log.Error().Err(err).Msg("markdown rendering error, falling back to plain text")
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

func (m *ChatModel) renderMessages() {
	chat := m.ctrl.CurrentChat()
	if chat == nil {
		m.viewport.SetContent("")
		return
	}
	lang := m.ctrl.Language()

	if len(chat.Messages) == 0 {
		var b strings.Builder
		b.WriteString(TitleStyle.Render(i18n.T(i18n.KeyReadyToChat, lang)) + "\n")
		b.WriteString(SubtitleStyle.Render(i18n.T(i18n.KeyStartConversationBelow, lang)) + "\n")
		if assistant := m.ctrl.Catalog().Resolve(chat.AssistantID); assistant != nil && len(assistant.QuickPrompts) > 0 {
			b.WriteString("\n" + ActiveLabelStyle.Render(i18n.T(i18n.KeyQuickPrompts, lang)) + "\n")
			for i, qp := range assistant.QuickPrompts {
				b.WriteString(NormalItemStyle.Render(fmt.Sprintf("%d. %s", i+1, qp)) + "\n")
			}
		}
		m.viewport.SetContent(b.String())
		return
	}

	assistantName := i18n.T(i18n.KeyTheAssistant, lang)
	if assistant := m.ctrl.Catalog().Resolve(chat.AssistantID); assistant != nil {
		assistantName = assistant.Name
	}

	var b strings.Builder
	for _, msg := range chat.Messages {
		var label string
		if msg.Role == models.RoleUser {
			label = UserMessageLabelStyle.Render("You:")
		} else {
			label = BotMessageLabelStyle.Render(assistantName + ":")
		}
		timestamp := TimestampStyle.Render(msg.Timestamp.Format("15:04"))
		rendered := m.safeRenderMarkdown(msg.Content)
		b.WriteString(MessageContentStyle.Render(label + " " + timestamp + "\n" + rendered))
		b.WriteString("\n\n")
	}
	m.viewport.SetContent(b.String())
}
