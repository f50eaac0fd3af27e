package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"cityassist/internal/config"
	"cityassist/internal/export"
	"cityassist/internal/i18n"
	"cityassist/internal/logging"
	"cityassist/internal/securemode"
	"cityassist/internal/simulate"
	"cityassist/internal/state"
	"cityassist/internal/store"
	"cityassist/internal/ui"
)

type appModel struct {
	ctrl      *state.Controller
	responder simulate.Responder
	exportDir string

	homeModel      ui.HomeModel
	chatModel      ui.ChatModel
	discoveryModel ui.DiscoveryModel
	editorModel    ui.EditorModel
	versionModel   ui.VersionModel

	termsModal       ui.TermsModal
	secureIntroModal ui.SecureIntroModal
	showTerms        bool
	showSecureIntro  bool

	width  int
	height int
	err    error
}

// replyArrivedMsg carries a finished responder call back into the event
// loop.
type replyArrivedMsg struct {
	job *state.ReplyJob
	res simulate.Result
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve data directory: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(dataDir, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	kv, err := store.NewBadgerKV(filepath.Join(dataDir, "db"))
	if err != nil {
		log.Error().Err(err).Msg("failed to open store")
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	exportDir, err := cfg.ResolveExportDir()
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve export directory")
		fmt.Fprintf(os.Stderr, "Failed to resolve export directory: %v\n", err)
		os.Exit(1)
	}

	var responder simulate.Responder
	if cfg.Backend.Kind == config.BackendOpenAI {
		responder = simulate.NewOpenAIResponder(cfg.Backend.OpenAI.APIKey, cfg.Backend.OpenAI.BaseURL, cfg.Backend.OpenAI.Model)
	} else {
		responder = simulate.NewSimulator()
	}

	ctrl := state.NewController(kv, i18n.Parse(cfg.Language))

	width, height := 80, 24
	initial := appModel{
		ctrl:           ctrl,
		responder:      responder,
		exportDir:      exportDir,
		homeModel:      ui.NewHomeModel(ctrl, width, height),
		chatModel:      ui.NewChatModel(ctrl, width, height),
		discoveryModel: ui.NewDiscoveryModel(ctrl, width, height),
		editorModel:    ui.NewEditorModel(ctrl, nil, width, height),
		versionModel:   ui.NewVersionModel(ctrl, width, height),
		width:          width,
		height:         height,
	}

	if !ctrl.TermsAccepted() {
		initial.showTerms = true
		initial.termsModal = ui.NewTermsModal(ctrl.Language(), false, width)
	}

	p := tea.NewProgram(initial, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.homeModel.Init(), m.chatModel.Init())
}

// runReply executes a reply job off the event loop and feeds the result
// back as a message.
func (m appModel) runReply(job *state.ReplyJob) tea.Cmd {
	responder := m.responder
	return func() tea.Msg {
		res := responder.GenerateReply(context.Background(), job.Request())
		return replyArrivedMsg{job: job, res: res}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.broadcastSize(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showTerms {
			newModal, cmd := m.termsModal.Update(msg)
			m.termsModal = newModal.(ui.TermsModal)
			return m, cmd
		}
		if m.showSecureIntro {
			newModal, cmd := m.secureIntroModal.Update(msg)
			m.secureIntroModal = newModal.(ui.SecureIntroModal)
			return m, cmd
		}

	case replyArrivedMsg:
		return m.handleReply(msg)

	case ui.StartChatRequested:
		_, job := m.ctrl.StartChat(msg.Text, msg.Assistant)
		m.chatModel.SetWaiting(job != nil)
		m.chatModel.Refresh()
		if job != nil {
			return m, m.runReply(job)
		}
		return m, nil

	case ui.ChatSelected:
		m.ctrl.SelectChat(msg.Chat)
		m.chatModel.SetWaiting(false)
		m.chatModel.Refresh()
		return m, nil

	case ui.ChatDeleted:
		m.ctrl.DeleteChat(msg.ChatID)
		m.homeModel.Refresh()
		return m, nil

	case ui.ChatRenamed:
		m.ctrl.RenameChat(msg.ChatID, msg.Title)
		m.homeModel.Refresh()
		m.chatModel.Refresh()
		return m, nil

	case ui.MessageSubmitted:
		job := m.ctrl.SendMessage(msg.Content)
		m.chatModel.SetWaiting(job != nil)
		m.chatModel.Refresh()
		if job != nil {
			return m, m.runReply(job)
		}
		return m, nil

	case ui.ModelSelected:
		st := m.ctrl.SelectModel(msg.ModelID)
		if st == securemode.AwaitingIntroAck {
			m.showSecureIntro = true
			m.secureIntroModal = ui.NewSecureIntroModal(m.ctrl.Language(), m.width)
		}
		m.chatModel.Refresh()
		return m, nil

	case ui.ChatSettingsSaved:
		if current := m.ctrl.CurrentChat(); current != nil {
			updated := current.Clone()
			updated.ResponseBehavior = msg.Behavior
			updated.SystemPrompt = msg.SystemPrompt
			m.ctrl.UpdateChat(updated)
		}
		m.chatModel.Refresh()
		return m, nil

	case ui.HomeRequested:
		m.ctrl.Navigate(state.ViewHome)
		m.homeModel.Refresh()
		return m, nil

	case ui.DiscoveryRequested:
		m.ctrl.Navigate(state.ViewDiscovery)
		m.discoveryModel.Refresh()
		return m, nil

	case ui.VersionRequested:
		m.ctrl.Navigate(state.ViewVersion)
		return m, nil

	case ui.TermsRequested:
		m.showTerms = true
		m.termsModal = ui.NewTermsModal(m.ctrl.Language(), m.ctrl.TermsAccepted(), m.width)
		return m, nil

	case ui.TermsAccepted:
		m.ctrl.AcceptTerms()
		m.showTerms = false
		return m, nil

	case ui.TermsDismissed:
		m.showTerms = false
		return m, nil

	case ui.SecureModeToggled:
		st := m.ctrl.Gate().Toggle()
		if st == securemode.AwaitingIntroAck {
			m.showSecureIntro = true
			m.secureIntroModal = ui.NewSecureIntroModal(m.ctrl.Language(), m.width)
		}
		return m, nil

	case ui.SecureIntroConfirmed:
		m.ctrl.Gate().ConfirmIntro()
		m.showSecureIntro = false
		return m, nil

	case ui.SecureIntroDismissed:
		m.ctrl.Gate().CancelIntro()
		m.showSecureIntro = false
		return m, nil

	case ui.LanguageSelected:
		m.ctrl.SetLanguage(msg.Language)
		m.homeModel.Refresh()
		m.chatModel.Refresh()
		m.discoveryModel.Refresh()
		return m, nil

	case ui.EditorRequested:
		m.ctrl.EditAssistant(msg.Assistant)
		m.editorModel = ui.NewEditorModel(m.ctrl, msg.Assistant, m.width, m.height)
		return m, m.editorModel.Init()

	case ui.AssistantSaved:
		return m.handleAssistantSaved(msg)

	case ui.EditorCancelled:
		m.ctrl.Navigate(state.ViewDiscovery)
		m.discoveryModel.Refresh()
		return m, nil

	case ui.AssistantDeleted:
		m.ctrl.DeleteAssistant(msg.AssistantID)
		m.discoveryModel.Refresh()
		return m, nil

	case ui.FavoriteToggled:
		m.ctrl.ToggleFavorite(msg.AssistantID)
		m.discoveryModel.Refresh()
		return m, nil

	case ui.ExportRequested:
		lang := m.ctrl.Language()
		path, err := export.WriteFile(m.exportDir, msg.Assistant)
		if err != nil {
			log.Error().Err(err).Msg("export failed")
			m.discoveryModel.SetStatus(i18n.Tf(i18n.KeyExportFailed, lang, err))
		} else {
			m.discoveryModel.SetStatus(i18n.Tf(i18n.KeyExported, lang, path))
		}
		return m, nil

	case ui.ImportRequested:
		return m.handleImport(msg.Path)
	}

	return m.delegate(msg)
}

func (m appModel) handleReply(msg replyArrivedMsg) (tea.Model, tea.Cmd) {
	if msg.res.Err != nil {
		log.Error().Err(msg.res.Err).Str("chat", msg.job.ChatID).Msg("reply failed")
		m.ctrl.AbandonReply(msg.job)
		m.chatModel.SetError(i18n.Tf(i18n.KeyReplyFailed, msg.job.Language, msg.res.Err))
		return m, nil
	}

	delivered := m.ctrl.CompleteReply(msg.job, msg.res.Message)
	if delivered {
		m.chatModel.SetWaiting(false)
		m.chatModel.Refresh()
		m.homeModel.Refresh()
	}
	return m, nil
}

func (m appModel) handleAssistantSaved(msg ui.AssistantSaved) (tea.Model, tea.Cmd) {
	if msg.Existing == nil {
		if _, err := m.ctrl.CreateAssistant(msg.Draft); err != nil {
			log.Error().Err(err).Msg("failed to create assistant")
			return m, nil
		}
	} else {
		updated := *msg.Existing
		updated.Name = msg.Draft.Name
		updated.Description = msg.Draft.Description
		updated.Icon = msg.Draft.Icon
		updated.SystemPrompt = msg.Draft.SystemPrompt
		updated.ResponseBehavior = msg.Draft.ResponseBehavior
		updated.AllowedTools = msg.Draft.AllowedTools
		updated.PublishedDepartments = msg.Draft.PublishedDepartments
		updated.QuickPrompts = msg.Draft.QuickPrompts
		if err := m.ctrl.UpdateAssistant(updated); err != nil {
			log.Error().Err(err).Msg("failed to update assistant")
			return m, nil
		}
		m.ctrl.Navigate(state.ViewDiscovery)
	}
	m.discoveryModel.Refresh()
	return m, nil
}

func (m appModel) handleImport(path string) (tea.Model, tea.Cmd) {
	lang := m.ctrl.Language()
	doc, err := export.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("import failed")
		m.discoveryModel.SetStatus(i18n.T(i18n.KeyImportFailed, lang))
		return m, nil
	}
	a, err := m.ctrl.CreateAssistant(doc.Draft())
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("imported assistant is invalid")
		m.discoveryModel.SetStatus(i18n.T(i18n.KeyImportFailed, lang))
		return m, nil
	}
	m.discoveryModel.Refresh()
	m.discoveryModel.SetStatus(i18n.Tf(i18n.KeyImported, lang, a.Name))
	return m, nil
}

// broadcastSize forwards the terminal size to every screen so switching
// views never renders with stale dimensions.
func (m appModel) broadcastSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	newHome, cmd := m.homeModel.Update(msg)
	m.homeModel = newHome.(ui.HomeModel)
	cmds = append(cmds, cmd)

	newChat, cmd := m.chatModel.Update(msg)
	m.chatModel = newChat.(ui.ChatModel)
	cmds = append(cmds, cmd)

	newDiscovery, cmd := m.discoveryModel.Update(msg)
	m.discoveryModel = newDiscovery.(ui.DiscoveryModel)
	cmds = append(cmds, cmd)

	newEditor, cmd := m.editorModel.Update(msg)
	m.editorModel = newEditor.(ui.EditorModel)
	cmds = append(cmds, cmd)

	newVersion, cmd := m.versionModel.Update(msg)
	m.versionModel = newVersion.(ui.VersionModel)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// delegate routes a message to the active screen.
func (m appModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.ctrl.View() {
	case state.ViewChat:
		newModel, cmd := m.chatModel.Update(msg)
		m.chatModel = newModel.(ui.ChatModel)
		return m, cmd

	case state.ViewDiscovery:
		newModel, cmd := m.discoveryModel.Update(msg)
		m.discoveryModel = newModel.(ui.DiscoveryModel)
		return m, cmd

	case state.ViewEditor:
		newModel, cmd := m.editorModel.Update(msg)
		m.editorModel = newModel.(ui.EditorModel)
		return m, cmd

	case state.ViewVersion:
		newModel, cmd := m.versionModel.Update(msg)
		m.versionModel = newModel.(ui.VersionModel)
		return m, cmd

	default:
		newModel, cmd := m.homeModel.Update(msg)
		m.homeModel = newModel.(ui.HomeModel)
		return m, cmd
	}
}

func (m appModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err)
	}

	var base string
	switch m.ctrl.View() {
	case state.ViewChat:
		base = m.chatModel.View()
	case state.ViewDiscovery:
		base = m.discoveryModel.View()
	case state.ViewEditor:
		base = m.editorModel.View()
	case state.ViewVersion:
		base = m.versionModel.View()
	default:
		base = m.homeModel.View()
	}

	if m.showTerms {
		return ui.RenderModalOverlay(m.termsModal, base)
	}
	if m.showSecureIntro {
		return ui.RenderModalOverlay(m.secureIntroModal, base)
	}
	return base
}
