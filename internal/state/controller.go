// Package state owns the canonical in-memory copies of assistants, chats
// and favorites, mediates every mutation, and keeps the persisted store in
// sync. All methods run on the single UI event loop; asynchrony is limited
// to reply jobs the caller schedules and completes.
package state

import (
	"time"

	"github.com/rs/zerolog/log"

	"cityassist/internal/catalog"
	"cityassist/internal/i18n"
	"cityassist/internal/models"
	"cityassist/internal/securemode"
	"cityassist/internal/simulate"
	"cityassist/internal/store"
)

// ReplyJob is a scheduled assistant reply. The caller runs it through a
// Responder and feeds the outcome back into CompleteReply. The chat
// snapshot is taken at schedule time; completion merges by chat id, never
// by object identity.
type ReplyJob struct {
	Token      uint64
	ChatID     string
	Chat       models.Chat
	Assistant  *models.Assistant
	FirstReply bool
	SecureMode bool
	Language   i18n.Language
}

// Request converts the job into a responder request.
func (j *ReplyJob) Request() simulate.Request {
	return simulate.Request{
		Chat:       j.Chat,
		Assistant:  j.Assistant,
		FirstReply: j.FirstReply,
		SecureMode: j.SecureMode,
		Language:   j.Language,
	}
}

// Controller is the application state controller.
type Controller struct {
	kv store.KV

	chats      []models.Chat
	assistants []models.Assistant // user-created only
	favorites  []string

	catalog *catalog.Resolver
	gate    *securemode.Gate

	view     View
	current  *models.Chat
	editing  *models.Assistant
	language i18n.Language

	// pending tracks live reply tokens per chat id so replies for deleted
	// chats can be dropped instead of resurrecting the chat.
	pending   map[string]map[uint64]struct{}
	nextToken uint64
}

// NewController loads all persisted collections and session defaults.
func NewController(kv store.KV, defaultLanguage i18n.Language) *Controller {
	c := &Controller{
		kv:         kv,
		chats:      store.LoadChats(kv),
		assistants: store.LoadAssistants(kv),
		favorites:  store.LoadFavorites(kv),
		gate:       securemode.NewGate(kv),
		view:       ViewHome,
		pending:    make(map[string]map[uint64]struct{}),
	}
	c.catalog = catalog.NewResolver(func() []models.Assistant { return c.assistants })

	if code := store.LoadLanguage(kv); code != "" {
		c.language = i18n.Parse(code)
	} else {
		c.language = defaultLanguage
	}
	return c
}

// Accessors.

func (c *Controller) Chats() []models.Chat               { return c.chats }
func (c *Controller) UserAssistants() []models.Assistant { return c.assistants }
func (c *Controller) Favorites() []string                { return c.favorites }
func (c *Controller) Catalog() *catalog.Resolver         { return c.catalog }
func (c *Controller) Gate() *securemode.Gate             { return c.gate }
func (c *Controller) Language() i18n.Language            { return c.language }
func (c *Controller) Editing() *models.Assistant         { return c.editing }

// CurrentChat returns the chat being viewed, or nil.
func (c *Controller) CurrentChat() *models.Chat { return c.current }

// View returns the effective view. A chat view without a current chat is
// not renderable and degrades to home.
func (c *Controller) View() View {
	if c.view == ViewChat && c.current == nil {
		return ViewHome
	}
	return c.view
}

// Navigate switches views. Navigating home also closes the current chat.
func (c *Controller) Navigate(v View) {
	c.view = v
	if v == ViewHome {
		c.current = nil
	}
}

func (c *Controller) IsFavorite(assistantID string) bool {
	for _, id := range c.favorites {
		if id == assistantID {
			return true
		}
	}
	return false
}

// TermsAccepted reports whether the terms sentinel is persisted.
func (c *Controller) TermsAccepted() bool {
	return store.LoadFlag(c.kv, store.KeyTermsAccepted)
}

func (c *Controller) AcceptTerms() {
	if err := store.SetFlag(c.kv, store.KeyTermsAccepted); err != nil {
		log.Error().Err(err).Msg("failed to persist terms flag")
	}
}

// SetLanguage switches and persists the UI language.
func (c *Controller) SetLanguage(lang i18n.Language) {
	c.language = lang
	if err := store.SaveLanguage(c.kv, string(lang)); err != nil {
		log.Error().Err(err).Msg("failed to persist language")
	}
}

// Chat operations.

// StartChat creates a new chat, makes it current and navigates to the
// chat view immediately. A non-empty message becomes the first user
// message and schedules one simulated reply; the chat only enters the
// chats collection when that reply completes. An empty message yields an
// empty chat and no reply.
func (c *Controller) StartChat(message string, assistant *models.Assistant) (models.Chat, *ReplyJob) {
	chat := models.NewChat(message, assistant)
	c.current = &chat
	c.view = ViewChat

	var job *ReplyJob
	if message != "" {
		job = c.scheduleReply(chat, assistant, true)
	}
	return chat.Clone(), job
}

// SendMessage appends a user message to the current chat and schedules a
// reply scoped to that chat's id. Without a current chat this is a silent
// no-op.
func (c *Controller) SendMessage(content string) *ReplyJob {
	if c.current == nil {
		return nil
	}

	updated := c.current.Clone()
	updated.Append(models.NewMessage(models.RoleUser, content))
	c.current = &updated

	assistant := c.catalog.Resolve(updated.AssistantID)
	return c.scheduleReply(updated, assistant, false)
}

func (c *Controller) scheduleReply(snapshot models.Chat, assistant *models.Assistant, first bool) *ReplyJob {
	c.nextToken++
	token := c.nextToken
	if c.pending[snapshot.ID] == nil {
		c.pending[snapshot.ID] = make(map[uint64]struct{})
	}
	c.pending[snapshot.ID][token] = struct{}{}

	return &ReplyJob{
		Token:      token,
		ChatID:     snapshot.ID,
		Chat:       snapshot.Clone(),
		Assistant:  assistant,
		FirstReply: first,
		SecureMode: c.gate.Active(),
		Language:   c.language,
	}
}

// CompleteReply merges a finished reply into the live collection: the chat
// with the job's id is replaced by the finalized snapshot, or the snapshot
// is inserted at the front when no chat matches (the first reply of a
// brand-new chat). Replies whose job was cancelled by a chat deletion are
// dropped. Returns whether the reply was delivered.
func (c *Controller) CompleteReply(job *ReplyJob, msg models.Message) bool {
	if job == nil {
		return false
	}
	if !c.releaseToken(job.ChatID, job.Token) {
		log.Debug().Str("chat", job.ChatID).Msg("dropping reply for deleted chat")
		return false
	}

	final := job.Chat.Clone()
	final.Messages = append(final.Messages, msg)

	found := false
	for i := range c.chats {
		if c.chats[i].ID == final.ID {
			c.chats[i] = final
			found = true
			break
		}
	}
	if !found {
		c.chats = append([]models.Chat{final}, c.chats...)
	}

	if c.current != nil && c.current.ID == final.ID {
		cc := final.Clone()
		c.current = &cc
	}

	c.persistChats()
	return true
}

// AbandonReply releases a job whose responder failed; the chat collection
// stays untouched and the UI reports the error.
func (c *Controller) AbandonReply(job *ReplyJob) {
	if job != nil {
		c.releaseToken(job.ChatID, job.Token)
	}
}

func (c *Controller) releaseToken(chatID string, token uint64) bool {
	tokens, ok := c.pending[chatID]
	if !ok {
		return false
	}
	if _, live := tokens[token]; !live {
		return false
	}
	delete(tokens, token)
	if len(tokens) == 0 {
		delete(c.pending, chatID)
	}
	return true
}

// SelectChat makes a chat current and navigates to it. Pure view
// transition, nothing is persisted.
func (c *Controller) SelectChat(chat models.Chat) {
	cc := chat.Clone()
	c.current = &cc
	c.view = ViewChat
}

// UpdateChat replaces the chat with a matching id and always makes the
// given chat current; persistence only happens when the id was found.
func (c *Controller) UpdateChat(chat models.Chat) {
	cc := chat.Clone()
	c.current = &cc

	for i := range c.chats {
		if c.chats[i].ID == chat.ID {
			c.chats[i] = chat.Clone()
			c.persistChats()
			return
		}
	}
}

// RenameChat retitles a chat in place. An unknown id is a silent no-op
// and causes no persistence write.
func (c *Controller) RenameChat(chatID, title string) {
	for i := range c.chats {
		if c.chats[i].ID == chatID {
			c.chats[i].Title = title
			c.persistChats()
			if c.current != nil && c.current.ID == chatID {
				c.current.Title = title
			}
			return
		}
	}
}

// DeleteChat removes a chat, cancels its pending replies and, when it was
// the current chat, navigates home.
func (c *Controller) DeleteChat(chatID string) {
	kept := c.chats[:0]
	for _, ch := range c.chats {
		if ch.ID != chatID {
			kept = append(kept, ch)
		}
	}
	c.chats = kept
	c.persistChats()

	delete(c.pending, chatID)

	if c.current != nil && c.current.ID == chatID {
		c.current = nil
		c.view = ViewHome
	}
}

// Assistant operations.

// EditAssistant stages an assistant for the editor; nil stages a blank
// editor for creation.
func (c *Controller) EditAssistant(a *models.Assistant) {
	c.editing = a
	c.view = ViewEditor
}

// CreateAssistant materializes a draft as a user assistant. Validation
// failures block the operation before any state mutation.
func (c *Controller) CreateAssistant(draft models.AssistantDraft) (models.Assistant, error) {
	if err := draft.Validate(); err != nil {
		return models.Assistant{}, err
	}

	a := models.NewAssistant(draft)
	c.assistants = append(c.assistants, a)
	c.persistAssistants()

	c.editing = nil
	c.view = ViewDiscovery
	return a, nil
}

// UpdateAssistant replaces a user assistant by id, preserving identity
// fields and refreshing UpdatedAt. Unknown ids, including every built-in
// assistant, are ignored.
func (c *Controller) UpdateAssistant(updated models.Assistant) error {
	if err := updated.Draft().Validate(); err != nil {
		return err
	}

	for i := range c.assistants {
		if c.assistants[i].ID != updated.ID {
			continue
		}
		updated.CreatedBy = models.CreatedByUser
		updated.IsPublic = len(updated.PublishedDepartments) > 0
		updated.UpdatedAt = time.Now()
		c.assistants[i] = updated
		c.persistAssistants()
		break
	}
	return nil
}

// DeleteAssistant removes a user assistant and cascades removal from the
// favorites set. Built-in ids never match and are therefore ignored.
func (c *Controller) DeleteAssistant(assistantID string) {
	kept := c.assistants[:0]
	removed := false
	for _, a := range c.assistants {
		if a.ID == assistantID {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return
	}
	c.assistants = kept
	c.persistAssistants()

	if c.IsFavorite(assistantID) {
		c.removeFavorite(assistantID)
		c.persistFavorites()
	}
}

// ToggleFavorite adds or removes an assistant id from the favorites set.
// Favoriting a nonexistent id is inert but not rejected.
func (c *Controller) ToggleFavorite(assistantID string) {
	if c.IsFavorite(assistantID) {
		c.removeFavorite(assistantID)
	} else {
		c.favorites = append(c.favorites, assistantID)
	}
	c.persistFavorites()
}

func (c *Controller) removeFavorite(assistantID string) {
	kept := c.favorites[:0]
	for _, id := range c.favorites {
		if id != assistantID {
			kept = append(kept, id)
		}
	}
	c.favorites = kept
}

// SelectModel applies a model choice to the current chat and lets the
// gate react: picking a private-allowed model from standard mode engages
// secure mode (or the intro detour on first use).
func (c *Controller) SelectModel(modelID string) securemode.State {
	st := c.gate.SelectModel(modelID)
	if c.current != nil {
		updated := c.current.Clone()
		updated.LLMModel = modelID
		c.UpdateChat(updated)
	}
	return st
}

// Persistence. Every write serializes the entire collection so storage
// always matches in-memory state; failures are logged and the session
// continues on the in-memory copy.

func (c *Controller) persistChats() {
	if err := store.SaveChats(c.kv, c.chats); err != nil {
		log.Error().Err(err).Msg("failed to persist chats")
	}
}

func (c *Controller) persistAssistants() {
	if err := store.SaveAssistants(c.kv, c.assistants); err != nil {
		log.Error().Err(err).Msg("failed to persist assistants")
	}
}

func (c *Controller) persistFavorites() {
	if err := store.SaveFavorites(c.kv, c.favorites); err != nil {
		log.Error().Err(err).Msg("failed to persist favorites")
	}
}
