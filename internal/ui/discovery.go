package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cityassist/internal/i18n"
	"cityassist/internal/models"
	"cityassist/internal/state"
)

type discoveryFilter int

const (
	filterAll discoveryFilter = iota
	filterRecommended
	filterYours
	filterFavorites
)

type discoverySort int

const (
	sortSubscriptions discoverySort = iota
	sortTitle
	sortUpdated
)

type discoveryMode int

const (
	browsing discoveryMode = iota
	searching
	importing
)

// DiscoveryModel is the assistant marketplace: browse, search, filter and
// sort the merged catalog, and manage user assistants from here.
type DiscoveryModel struct {
	ctrl *state.Controller

	search      textinput.Model
	importInput textinput.Model
	mode        discoveryMode

	filter discoveryFilter
	sort   discoverySort
	cursor int

	pendingDelete string
	status        string

	width  int
	height int
}

func NewDiscoveryModel(ctrl *state.Controller, width, height int) DiscoveryModel {
	si := textinput.New()
	si.Placeholder = i18n.T(i18n.KeySearchAssistants, ctrl.Language())
	si.CharLimit = 200
	si.Width = width - 8

	ii := textinput.New()
	ii.Placeholder = "/path/to/assistant.json"
	ii.CharLimit = 500
	ii.Width = width - 8

	return DiscoveryModel{
		ctrl:        ctrl,
		search:      si,
		importInput: ii,
		width:       width,
		height:      height,
	}
}

// Refresh clears transient state after the catalog changed.
func (m *DiscoveryModel) Refresh() {
	m.search.Placeholder = i18n.T(i18n.KeySearchAssistants, m.ctrl.Language())
	m.pendingDelete = ""
	if m.cursor >= len(m.visible()) {
		m.cursor = 0
	}
}

// SetStatus shows a transient line, e.g. import/export results.
func (m *DiscoveryModel) SetStatus(text string) {
	m.status = text
}

// visible applies filter, search and sort to the merged catalog.
func (m DiscoveryModel) visible() []models.Assistant {
	var out []models.Assistant
	for _, a := range m.ctrl.Catalog().Merged() {
		switch m.filter {
		case filterRecommended:
			if a.CreatedBy != models.CreatedBySystem {
				continue
			}
		case filterYours:
			if a.CreatedBy != models.CreatedByUser {
				continue
			}
		case filterFavorites:
			if !m.ctrl.IsFavorite(a.ID) {
				continue
			}
		}
		if !matchesSearch(a, m.search.Value()) {
			continue
		}
		out = append(out, a)
	}

	switch m.sort {
	case sortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case sortUpdated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SubscriptionCount > out[j].SubscriptionCount
		})
	}
	return out
}

// matchesSearch checks name, description and tool names, case-insensitive.
func matchesSearch(a models.Assistant, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), query) {
		return true
	}
	for _, tool := range a.AllowedTools {
		if name, ok := models.ToolDisplayName(tool); ok && strings.Contains(strings.ToLower(name), query) {
			return true
		}
		if strings.Contains(strings.ToLower(tool), query) {
			return true
		}
	}
	return false
}

func (m DiscoveryModel) Init() tea.Cmd {
	return nil
}

func (m DiscoveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = msg.Width - 8
		m.importInput.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case searching:
			return m.updateSearch(msg)
		case importing:
			return m.updateImport(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m DiscoveryModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.visible()

	switch msg.String() {
	case "ctrl+x":
		return m, tea.Quit

	case "esc":
		return m, emit(HomeRequested{})

	case "/":
		m.mode = searching
		m.search.Focus()
		return m, textinput.Blink

	case "tab":
		m.filter = (m.filter + 1) % 4
		m.cursor = 0
		m.pendingDelete = ""
		return m, nil

	case "ctrl+o":
		m.sort = (m.sort + 1) % 3
		m.cursor = 0
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.pendingDelete = ""
		return m, nil

	case "down":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		m.pendingDelete = ""
		return m, nil

	case "enter":
		if m.cursor < len(items) {
			a := items[m.cursor]
			return m, emit(StartChatRequested{Assistant: &a})
		}
		return m, nil

	case "f":
		if m.cursor < len(items) {
			return m, emit(FavoriteToggled{AssistantID: items[m.cursor].ID})
		}
		return m, nil

	case "e":
		if m.cursor < len(items) && items[m.cursor].Editable() {
			a := items[m.cursor]
			return m, emit(EditorRequested{Assistant: &a})
		}
		return m, nil

	case "n":
		return m, emit(EditorRequested{})

	case "x":
		if m.cursor < len(items) {
			return m, emit(ExportRequested{Assistant: items[m.cursor]})
		}
		return m, nil

	case "i":
		m.mode = importing
		m.importInput.Reset()
		m.importInput.Focus()
		return m, textinput.Blink

	case "ctrl+d":
		if m.cursor >= len(items) || !items[m.cursor].Editable() {
			return m, nil
		}
		if m.pendingDelete != items[m.cursor].ID {
			m.pendingDelete = items[m.cursor].ID
			return m, nil
		}
		m.pendingDelete = ""
		return m, emit(AssistantDeleted{AssistantID: items[m.cursor].ID})
	}
	return m, nil
}

func (m DiscoveryModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = browsing
		m.search.Blur()
		m.cursor = 0
		return m, nil

	case "esc":
		m.mode = browsing
		m.search.Reset()
		m.search.Blur()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m DiscoveryModel) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.importInput.Value())
		m.mode = browsing
		m.importInput.Blur()
		if path != "" {
			return m, emit(ImportRequested{Path: path})
		}
		return m, nil

	case "esc":
		m.mode = browsing
		m.importInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m DiscoveryModel) View() string {
	lang := m.ctrl.Language()
	var b strings.Builder

	b.WriteString(TitleStyle.Render(i18n.T(i18n.KeyDiscoverAssistants, lang)) + "\n")
	b.WriteString(SubtitleStyle.Render(i18n.T(i18n.KeyBrowseAndUse, lang)) + "\n\n")

	b.WriteString(m.renderFilterTabs(lang) + "\n")

	if m.mode == searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	if m.mode == importing {
		b.WriteString(ActiveLabelStyle.Render(i18n.T(i18n.KeyImport, lang)) + "\n")
		b.WriteString(m.importInput.View() + "\n")
	}
	b.WriteString("\n")

	items := m.visible()
	if len(items) == 0 {
		b.WriteString(DimmedItemStyle.Render(i18n.T(i18n.KeyNoAssistantsFound, lang)) + "\n")
		b.WriteString(DimmedItemStyle.Render(i18n.T(i18n.KeyTryAdjusting, lang)) + "\n")
	} else {
		b.WriteString(m.renderItems(items, lang))
	}

	if m.pendingDelete != "" {
		b.WriteString(ErrorMessageStyle.Render(i18n.T(i18n.KeyConfirmDeletion, lang)) + "\n")
	}
	if m.status != "" {
		b.WriteString(statusBarStyle.Render(m.status) + "\n")
	}

	helpText := "↑/↓: Navigate • Enter: Start Chat • Tab: Filter • /: Search • Ctrl+O: Sort • F: Favorite • E: Edit • N: New • I: Import • X: Export • Ctrl+D: Delete • Esc: Back"
	b.WriteString(helpStyle.Render(helpText))

	return b.String()
}

func (m DiscoveryModel) renderFilterTabs(lang i18n.Language) string {
	labels := []string{
		i18n.T(i18n.KeyAll, lang),
		i18n.T(i18n.KeyRecommended, lang),
		i18n.T(i18n.KeyYours, lang),
		i18n.T(i18n.KeyFavorites, lang),
	}
	tabs := make([]string, len(labels))
	for i, label := range labels {
		if discoveryFilter(i) == m.filter {
			tabs[i] = ActiveButtonStyle.Padding(0, 1).Render(label)
		} else {
			tabs[i] = InactiveButtonStyle.Padding(0, 1).Render(label)
		}
	}

	sortLabels := []string{
		i18n.T(i18n.KeySortSubscriptions, lang),
		i18n.T(i18n.KeySortTitle, lang),
		i18n.T(i18n.KeySortUpdated, lang),
	}
	sortTag := statusBarStyle.Render("⇅ " + sortLabels[m.sort])

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(tabs, " "), "  ", sortTag)
}

func (m DiscoveryModel) renderItems(items []models.Assistant, lang i18n.Language) string {
	// Keep the cursor visible in a window of rows.
	maxRows := (m.height - 14) / 2
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(items) {
		end = len(items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		a := items[i]

		marker := "  "
		style := NormalItemStyle
		if i == m.cursor {
			marker = "▶ "
			style = SelectedItemStyle
		}

		line := fmt.Sprintf("%s%s %s", marker, a.Icon, a.Name)
		if m.ctrl.IsFavorite(a.ID) {
			line += " " + FavoriteMarkStyle.Render("★")
		}
		if a.CreatedBy == models.CreatedByUser {
			line += " " + DimmedItemStyle.Render("("+i18n.T(i18n.KeyYours, lang)+")")
		}
		b.WriteString(style.Render(line) + "\n")

		detail := a.Description
		if a.SubscriptionCount > 0 {
			detail = fmt.Sprintf("%s • %d", detail, a.SubscriptionCount)
		}
		b.WriteString(DimmedItemStyle.Render("    "+detail) + "\n")
	}

	if len(items) > maxRows {
		b.WriteString(DimmedItemStyle.Render(fmt.Sprintf("    %d-%d / %d", start+1, end, len(items))) + "\n")
	}
	return b.String()
}
