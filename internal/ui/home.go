package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cityassist/internal/i18n"
	"cityassist/internal/models"
	"cityassist/internal/state"
)

type homeFocus int

const (
	focusInput homeFocus = iota
	focusChats
	focusRecommended
)

// HomeModel is the landing screen: a message box that starts a new chat,
// the recommended assistants row and the chat history.
type HomeModel struct {
	ctrl *state.Controller

	input       textinput.Model
	chatList    list.Model
	recommended []models.Assistant
	recIndex    int

	focus         homeFocus
	renaming      bool
	renameInput   textinput.Model
	renameChatID  string
	pendingDelete string

	width  int
	height int
}

type chatItem struct {
	chat models.Chat
}

func (i chatItem) Title() string { return i.chat.Title }
func (i chatItem) Description() string {
	return fmt.Sprintf("%s | %d messages", i.chat.UpdatedAt.Format("2006-01-02 15:04"), len(i.chat.Messages))
}
func (i chatItem) FilterValue() string { return i.chat.Title }

func NewHomeModel(ctrl *state.Controller, width, height int) HomeModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T(i18n.KeyStartConversation, ctrl.Language())
	ti.CharLimit = 2000
	ti.Width = width - 8
	ti.Focus()

	ri := textinput.New()
	ri.CharLimit = 200

	l := list.New(nil, list.NewDefaultDelegate(), width, height-12)
	l.Title = i18n.T(i18n.KeyChatHistory, ctrl.Language())
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	// Disable all built-in key bindings except arrows and filter
	l.KeyMap.CursorUp = key.NewBinding(key.WithKeys("up"))
	l.KeyMap.CursorDown = key.NewBinding(key.WithKeys("down"))
	l.KeyMap.NextPage = key.NewBinding()
	l.KeyMap.PrevPage = key.NewBinding()
	l.KeyMap.GoToStart = key.NewBinding()
	l.KeyMap.GoToEnd = key.NewBinding()
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("/"))
	l.KeyMap.ClearFilter = key.NewBinding(key.WithKeys("esc"))
	l.KeyMap.CancelWhileFiltering = key.NewBinding(key.WithKeys("esc"))
	l.KeyMap.AcceptWhileFiltering = key.NewBinding(key.WithKeys("enter"))
	l.KeyMap.ShowFullHelp = key.NewBinding()
	l.KeyMap.CloseFullHelp = key.NewBinding()
	l.KeyMap.Quit = key.NewBinding()
	l.KeyMap.ForceQuit = key.NewBinding()

	m := HomeModel{
		ctrl:        ctrl,
		input:       ti,
		chatList:    l,
		renameInput: ri,
		recommended: ctrl.Catalog().RecommendedAssistants(),
		width:       width,
		height:      height,
	}
	m.Refresh()
	return m
}

// Refresh re-reads the chat collection and translated labels.
func (m *HomeModel) Refresh() {
	lang := m.ctrl.Language()
	m.input.Placeholder = i18n.T(i18n.KeyStartConversation, lang)
	m.chatList.Title = i18n.T(i18n.KeyChatHistory, lang)

	chats := m.ctrl.Chats()
	items := make([]list.Item, len(chats))
	for i, c := range chats {
		items[i] = chatItem{chat: c}
	}
	m.chatList.SetItems(items)
	m.pendingDelete = ""
}

func (m HomeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		m.chatList.SetSize(msg.Width, msg.Height-12)
		return m, nil

	case tea.KeyMsg:
		if m.renaming {
			return m.updateRename(msg)
		}
		switch msg.String() {
		case "ctrl+x":
			return m, tea.Quit

		case "tab":
			m.focus = (m.focus + 1) % 3
			if m.focus == focusInput {
				m.input.Focus()
			} else {
				m.input.Blur()
			}
			m.pendingDelete = ""
			return m, nil

		case "ctrl+a":
			return m, emit(DiscoveryRequested{})

		case "ctrl+s":
			return m, emit(SecureModeToggled{})

		case "ctrl+g":
			return m, emit(LanguageSelected{Language: nextLanguage(m.ctrl.Language())})

		case "ctrl+v":
			return m, emit(VersionRequested{})

		case "ctrl+t":
			return m, emit(TermsRequested{})

		case "ctrl+n":
			return m, emit(StartChatRequested{})

		case "enter":
			return m.handleEnter()

		case "left":
			if m.focus == focusRecommended && m.recIndex > 0 {
				m.recIndex--
				return m, nil
			}

		case "right":
			if m.focus == focusRecommended && m.recIndex < len(m.recommended)-1 {
				m.recIndex++
				return m, nil
			}

		case "ctrl+r":
			if m.focus == focusChats {
				if item, ok := m.chatList.SelectedItem().(chatItem); ok {
					m.renaming = true
					m.renameChatID = item.chat.ID
					m.renameInput.SetValue(item.chat.Title)
					m.renameInput.Focus()
				}
			}
			return m, nil

		case "ctrl+d":
			if m.focus == focusChats {
				return m.handleDelete()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusChats:
		m.chatList, cmd = m.chatList.Update(msg)
	}
	return m, cmd
}

func (m HomeModel) handleEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusInput:
		text := m.input.Value()
		m.input.Reset()
		return m, emit(StartChatRequested{Text: text})

	case focusChats:
		if item, ok := m.chatList.SelectedItem().(chatItem); ok {
			return m, emit(ChatSelected{Chat: item.chat})
		}

	case focusRecommended:
		if m.recIndex < len(m.recommended) {
			a := m.recommended[m.recIndex]
			return m, emit(StartChatRequested{Assistant: &a})
		}
	}
	return m, nil
}

// handleDelete requires pressing delete twice on the same chat.
func (m HomeModel) handleDelete() (tea.Model, tea.Cmd) {
	item, ok := m.chatList.SelectedItem().(chatItem)
	if !ok {
		return m, nil
	}
	if m.pendingDelete != item.chat.ID {
		m.pendingDelete = item.chat.ID
		return m, nil
	}
	m.pendingDelete = ""
	return m, emit(ChatDeleted{ChatID: item.chat.ID})
}

func (m HomeModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.renameInput.Value()
		chatID := m.renameChatID
		m.renaming = false
		m.renameInput.Blur()
		if title != "" {
			return m, emit(ChatRenamed{ChatID: chatID, Title: title})
		}
		return m, nil

	case "esc":
		m.renaming = false
		m.renameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m HomeModel) View() string {
	lang := m.ctrl.Language()
	var sections []string

	title := TitleStyle.Render("CityAssist")
	if m.ctrl.Gate().Active() {
		title += "  " + SecureBadgeStyle.Render(i18n.T(i18n.KeySecureMode, lang))
	}
	sections = append(sections, title)

	inputLabel := InactiveLabelStyle
	if m.focus == focusInput {
		inputLabel = ActiveLabelStyle
	}
	sections = append(sections,
		inputLabel.Render(i18n.T(i18n.KeyNewChat, lang)),
		m.input.View(),
	)

	recLabel := InactiveLabelStyle
	if m.focus == focusRecommended {
		recLabel = ActiveLabelStyle
	}
	sections = append(sections, recLabel.Render(i18n.T(i18n.KeyRecommendedForYou, lang)))
	sections = append(sections, m.renderRecommended())

	if m.renaming {
		sections = append(sections,
			ActiveLabelStyle.Render(i18n.T(i18n.KeyRenameChat, lang)),
			m.renameInput.View(),
		)
	} else if len(m.ctrl.Chats()) == 0 {
		sections = append(sections, DimmedItemStyle.Render(i18n.T(i18n.KeyNoChatsYet, lang)))
	} else {
		sections = append(sections, m.chatList.View())
		if m.pendingDelete != "" {
			sections = append(sections, ErrorMessageStyle.Render(i18n.T(i18n.KeyConfirmDeletion, lang)))
		}
	}

	helpText := "Tab: Focus • Enter: Open/Start • Ctrl+A: Assistants • Ctrl+R: Rename • Ctrl+D: Delete • Ctrl+S: Secure Mode • Ctrl+G: Language • Ctrl+X: Exit"
	sections = append(sections, helpStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HomeModel) renderRecommended() string {
	cards := make([]string, 0, len(m.recommended))
	for i, a := range m.recommended {
		label := fmt.Sprintf("%s %s", a.Icon, a.Name)
		if m.focus == focusRecommended && i == m.recIndex {
			cards = append(cards, ActiveButtonStyle.Padding(0, 1).Render(label))
		} else {
			cards = append(cards, InactiveButtonStyle.Padding(0, 1).Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// nextLanguage cycles through the supported languages in order.
func nextLanguage(current i18n.Language) i18n.Language {
	langs := i18n.Supported()
	for i, l := range langs {
		if l == current {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}

// emit wraps a message in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
