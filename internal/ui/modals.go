package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"cityassist/internal/i18n"
)

// Modal dialogs are rendered as overlay foregrounds on top of the current
// screen. They hold no application state; the root model decides when to
// show them and reacts to the messages they emit.

// TermsModal shows the terms of use. Accepting emits TermsAccepted; a
// read-only view opened from the sidebar just closes.
type TermsModal struct {
	language i18n.Language
	readOnly bool
	width    int
}

func NewTermsModal(language i18n.Language, readOnly bool, width int) TermsModal {
	return TermsModal{language: language, readOnly: readOnly, width: width}
}

func (m TermsModal) Init() tea.Cmd {
	return nil
}

func (m TermsModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "enter":
		if m.readOnly {
			return m, emit(TermsDismissed{})
		}
		return m, emit(TermsAccepted{})
	case "esc":
		if m.readOnly {
			return m, emit(TermsDismissed{})
		}
	}
	return m, nil
}

func (m TermsModal) View() string {
	lang := m.language
	width := m.width / 2
	if width < 48 {
		width = 48
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(i18n.T(i18n.KeyTermsTitle, lang)) + "\n\n")
	b.WriteString(wrapText(i18n.T(i18n.KeyTermsBody, lang), width-6) + "\n\n")
	if m.readOnly {
		b.WriteString(ActiveButtonStyle.Padding(0, 1).Render(i18n.T(i18n.KeyClose, lang)))
	} else {
		b.WriteString(ActiveButtonStyle.Padding(0, 1).Render(i18n.T(i18n.KeyAcceptTerms, lang)))
	}
	return ModalBorderStyle.Width(width).Render(b.String())
}

// SecureIntroModal is the one-time secure workspace introduction. "Got it"
// emits SecureIntroConfirmed, Esc dismisses without acknowledging.
type SecureIntroModal struct {
	language i18n.Language
	width    int
}

func NewSecureIntroModal(language i18n.Language, width int) SecureIntroModal {
	return SecureIntroModal{language: language, width: width}
}

func (m SecureIntroModal) Init() tea.Cmd {
	return nil
}

func (m SecureIntroModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "enter":
		return m, emit(SecureIntroConfirmed{})
	case "esc":
		return m, emit(SecureIntroDismissed{})
	}
	return m, nil
}

func (m SecureIntroModal) View() string {
	lang := m.language
	width := m.width / 2
	if width < 48 {
		width = 48
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(i18n.T(i18n.KeySecureIntroTitle, lang)) + "\n")
	b.WriteString(SubtitleStyle.Render(i18n.T(i18n.KeySecureIntroSubtitle, lang)) + "\n\n")
	b.WriteString(ActiveLabelStyle.Render(i18n.T(i18n.KeySecureIntroPrivacy, lang)) + "\n")
	b.WriteString(wrapText(i18n.T(i18n.KeySecureIntroPrivacyBody, lang), width-6) + "\n\n")
	b.WriteString(ActiveLabelStyle.Render(i18n.T(i18n.KeySecureIntroModels, lang)) + "\n")
	b.WriteString(wrapText(i18n.T(i18n.KeySecureIntroModelsBody, lang), width-6) + "\n\n")
	b.WriteString(ActiveButtonStyle.Padding(0, 1).Render(i18n.T(i18n.KeySecureIntroConfirm, lang)))
	return ModalBorderStyle.Width(width).Render(b.String())
}

// RenderModalOverlay composites a modal over a background view.
func RenderModalOverlay(modal tea.Model, backgroundView string) string {
	overlayModel := overlay.New(
		modal,
		&staticViewModel{content: backgroundView},
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
	return overlayModel.View()
}

// staticViewModel renders pre-rendered content as an overlay background.
type staticViewModel struct {
	content string
}

func (m staticViewModel) Init() tea.Cmd {
	return nil
}

func (m staticViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m staticViewModel) View() string {
	return m.content
}

// wrapText word-wraps plain text to the given width.
func wrapText(text string, width int) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
