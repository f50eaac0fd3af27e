package state

import (
	"testing"

	"cityassist/internal/i18n"
	"cityassist/internal/models"
	"cityassist/internal/securemode"
	"cityassist/internal/store"
)

func newTestController() (*Controller, *store.Memory) {
	kv := store.NewMemory()
	return NewController(kv, i18n.English), kv
}

func assistantDraft(name string) models.AssistantDraft {
	return models.AssistantDraft{
		Name:        name,
		Description: "A test assistant",
	}
}

func TestStartChatWithMessage(t *testing.T) {
	ctrl, _ := newTestController()

	chat, job := ctrl.StartChat("Hello", nil)

	if len(chat.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(chat.Messages))
	}
	if chat.Messages[0].Role != models.RoleUser {
		t.Errorf("expected user role, got %s", chat.Messages[0].Role)
	}
	if chat.Title != "Hello" {
		t.Errorf("expected title 'Hello', got %q", chat.Title)
	}
	if job == nil {
		t.Fatal("expected a reply job")
	}
	if !job.FirstReply {
		t.Error("expected a first-reply job")
	}
	if ctrl.View() != ViewChat {
		t.Errorf("expected chat view, got %s", ctrl.View())
	}

	// The chat must not enter the collection before the reply completes.
	if len(ctrl.Chats()) != 0 {
		t.Errorf("expected no stored chats yet, got %d", len(ctrl.Chats()))
	}

	reply := models.NewMessage(models.RoleAssistant, "Hi there")
	if !ctrl.CompleteReply(job, reply) {
		t.Fatal("expected the reply to be delivered")
	}

	chats := ctrl.Chats()
	if len(chats) != 1 {
		t.Fatalf("expected 1 stored chat, got %d", len(chats))
	}
	if len(chats[0].Messages) != 2 {
		t.Errorf("expected 2 messages after reply, got %d", len(chats[0].Messages))
	}
	if current := ctrl.CurrentChat(); current == nil || len(current.Messages) != 2 {
		t.Error("expected the current chat to carry the reply")
	}
}

func TestStartChatEmptyMessage(t *testing.T) {
	ctrl, kv := newTestController()

	assistant := models.NewAssistant(assistantDraft("Tourist Guide"))
	chat, job := ctrl.StartChat("", &assistant)

	if job != nil {
		t.Error("expected no reply job for an empty opening message")
	}
	if len(chat.Messages) != 0 {
		t.Errorf("expected no messages, got %d", len(chat.Messages))
	}
	if chat.Title != "Chat with Tourist Guide" {
		t.Errorf("unexpected title %q", chat.Title)
	}
	if chat.AssistantID != assistant.ID {
		t.Error("expected the chat to be bound to the assistant")
	}
	if kv.SetCount[store.KeyChats] != 0 {
		t.Error("an empty chat must not be persisted")
	}
}

func TestStartChatTitleTruncation(t *testing.T) {
	ctrl, _ := newTestController()

	long := ""
	for i := 0; i < 60; i++ {
		long += "x"
	}
	chat, _ := ctrl.StartChat(long, nil)

	if got := len([]rune(chat.Title)); got != 50 {
		t.Errorf("expected title truncated to 50 runes, got %d", got)
	}
}

func TestSendMessageMergesByID(t *testing.T) {
	ctrl, _ := newTestController()

	chat, job := ctrl.StartChat("Hello", nil)
	ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "Hi"))

	job = ctrl.SendMessage("How do I register a car?")
	if job == nil {
		t.Fatal("expected a reply job")
	}
	if job.FirstReply {
		t.Error("follow-up replies must not be first replies")
	}
	if job.ChatID != chat.ID {
		t.Error("job must be scoped to the current chat id")
	}

	ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "At the KVR."))

	chats := ctrl.Chats()
	if len(chats) != 1 {
		t.Fatalf("expected the reply to replace the chat, got %d chats", len(chats))
	}
	if len(chats[0].Messages) != 4 {
		t.Errorf("expected 4 messages, got %d", len(chats[0].Messages))
	}
}

func TestSendMessageWithoutCurrentChat(t *testing.T) {
	ctrl, kv := newTestController()

	if job := ctrl.SendMessage("hello"); job != nil {
		t.Error("expected no job without a current chat")
	}
	if kv.SetCount[store.KeyChats] != 0 {
		t.Error("expected no persistence write")
	}
}

func TestCompleteReplyUnknownChatUnshifts(t *testing.T) {
	ctrl, _ := newTestController()

	// Two chats created back to back; the second completes first.
	_, job1 := ctrl.StartChat("first", nil)
	_, job2 := ctrl.StartChat("second", nil)

	ctrl.CompleteReply(job2, models.NewMessage(models.RoleAssistant, "reply 2"))
	ctrl.CompleteReply(job1, models.NewMessage(models.RoleAssistant, "reply 1"))

	chats := ctrl.Chats()
	if len(chats) != 2 {
		t.Fatalf("expected 2 chats, got %d", len(chats))
	}
	// Later completion is inserted at the front.
	if chats[0].Title != "first" {
		t.Errorf("expected the most recently completed chat first, got %q", chats[0].Title)
	}
}

func TestDeleteChatCancelsPendingReply(t *testing.T) {
	ctrl, _ := newTestController()

	chat, job := ctrl.StartChat("Hello", nil)
	ctrl.DeleteChat(chat.ID)

	if ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "too late")) {
		t.Error("a reply for a deleted chat must be dropped")
	}
	if len(ctrl.Chats()) != 0 {
		t.Error("a dropped reply must not resurrect the chat")
	}
}

func TestDeleteCurrentChatNavigatesHome(t *testing.T) {
	ctrl, _ := newTestController()

	chat, job := ctrl.StartChat("Hello", nil)
	ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "Hi"))

	ctrl.DeleteChat(chat.ID)

	if ctrl.CurrentChat() != nil {
		t.Error("expected no current chat after deletion")
	}
	if ctrl.View() != ViewHome {
		t.Errorf("expected home view, got %s", ctrl.View())
	}
}

func TestAbandonReplyKeepsCollectionUntouched(t *testing.T) {
	ctrl, kv := newTestController()

	_, job := ctrl.StartChat("Hello", nil)
	ctrl.AbandonReply(job)

	if len(ctrl.Chats()) != 0 {
		t.Error("abandoning a reply must not store the chat")
	}
	if kv.SetCount[store.KeyChats] != 0 {
		t.Error("abandoning a reply must not persist anything")
	}
	// The token is released; a late completion is dropped.
	if ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "late")) {
		t.Error("a completed abandoned job must be dropped")
	}
}

func TestRenameChat(t *testing.T) {
	ctrl, kv := newTestController()

	chat, job := ctrl.StartChat("Hello", nil)
	ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "Hi"))
	writes := kv.SetCount[store.KeyChats]

	ctrl.RenameChat(chat.ID, "Car registration")

	if ctrl.Chats()[0].Title != "Car registration" {
		t.Errorf("expected renamed title, got %q", ctrl.Chats()[0].Title)
	}
	if ctrl.CurrentChat().Title != "Car registration" {
		t.Error("expected the current chat to pick up the new title")
	}
	if kv.SetCount[store.KeyChats] != writes+1 {
		t.Error("expected exactly one persistence write for the rename")
	}
}

func TestRenameUnknownChatIsSilentNoop(t *testing.T) {
	ctrl, kv := newTestController()

	ctrl.RenameChat("no-such-id", "title")

	if kv.SetCount[store.KeyChats] != 0 {
		t.Error("renaming an unknown chat must not write to storage")
	}
}

func TestUpdateChatPersistsOnlyWhenFound(t *testing.T) {
	ctrl, kv := newTestController()

	// Not in the collection: current is set, nothing persisted.
	loose := models.NewChat("draft", nil)
	ctrl.UpdateChat(loose)
	if ctrl.CurrentChat() == nil || ctrl.CurrentChat().ID != loose.ID {
		t.Error("expected the chat to become current")
	}
	if kv.SetCount[store.KeyChats] != 0 {
		t.Error("updating an unstored chat must not persist")
	}

	// In the collection: the update is persisted.
	chat, job := ctrl.StartChat("Hello", nil)
	ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "Hi"))
	writes := kv.SetCount[store.KeyChats]

	updated := chat.Clone()
	updated.ResponseBehavior = models.BehaviorCreative
	updated.SystemPrompt = "Answer in verse."
	ctrl.UpdateChat(updated)

	if kv.SetCount[store.KeyChats] != writes+1 {
		t.Error("expected one persistence write for the stored chat")
	}
	if got := ctrl.Chats()[0].ResponseBehavior; got != models.BehaviorCreative {
		t.Errorf("expected creative behavior, got %s", got)
	}
}

func TestCreateAssistantValidation(t *testing.T) {
	ctrl, kv := newTestController()

	_, err := ctrl.CreateAssistant(models.AssistantDraft{Name: "only a name"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if len(ctrl.UserAssistants()) != 0 {
		t.Error("a failed create must not mutate state")
	}
	if kv.SetCount[store.KeyAssistants] != 0 {
		t.Error("a failed create must not persist")
	}
}

func TestCreateAssistant(t *testing.T) {
	ctrl, kv := newTestController()

	draft := assistantDraft("Protokoll-Helfer")
	draft.PublishedDepartments = []string{"rit"}

	a, err := ctrl.CreateAssistant(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.CreatedBy != models.CreatedByUser {
		t.Errorf("expected user-created, got %s", a.CreatedBy)
	}
	if !a.IsPublic {
		t.Error("publishing to a department must make the assistant public")
	}
	if ctrl.View() != ViewDiscovery {
		t.Errorf("expected discovery view after save, got %s", ctrl.View())
	}
	if kv.SetCount[store.KeyAssistants] != 1 {
		t.Error("expected one persistence write")
	}
	if ctrl.Catalog().Resolve(a.ID) == nil {
		t.Error("expected the new assistant to resolve through the catalog")
	}
}

func TestCreateAssistantWithoutDepartmentsIsPrivate(t *testing.T) {
	ctrl, _ := newTestController()

	a, err := ctrl.CreateAssistant(assistantDraft("Private Helper"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.IsPublic {
		t.Error("an unpublished assistant must not be public")
	}
}

func TestUpdateAssistant(t *testing.T) {
	ctrl, _ := newTestController()

	a, _ := ctrl.CreateAssistant(assistantDraft("Old Name"))

	a.Name = "New Name"
	a.CreatedBy = models.CreatedBySystem // must be restored on update
	a.PublishedDepartments = []string{"kvr"}
	if err := ctrl.UpdateAssistant(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ctrl.UserAssistants()[0]
	if got.Name != "New Name" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	if got.CreatedBy != models.CreatedByUser {
		t.Error("updates must preserve user ownership")
	}
	if !got.IsPublic {
		t.Error("publication state must be re-derived on update")
	}
}

func TestUpdateAssistantUnknownIDIgnored(t *testing.T) {
	ctrl, kv := newTestController()

	ghost := models.NewAssistant(assistantDraft("Ghost"))
	if err := ctrl.UpdateAssistant(ghost); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ctrl.UserAssistants()) != 0 {
		t.Error("updating an unknown assistant must not add it")
	}
	if kv.SetCount[store.KeyAssistants] != 0 {
		t.Error("updating an unknown assistant must not persist")
	}
}

func TestDeleteAssistantCascadesFavorites(t *testing.T) {
	ctrl, _ := newTestController()

	a, _ := ctrl.CreateAssistant(assistantDraft("Doomed"))
	ctrl.ToggleFavorite(a.ID)
	if !ctrl.IsFavorite(a.ID) {
		t.Fatal("expected the assistant to be a favorite")
	}

	ctrl.DeleteAssistant(a.ID)

	if len(ctrl.UserAssistants()) != 0 {
		t.Error("expected the assistant to be gone")
	}
	if ctrl.IsFavorite(a.ID) {
		t.Error("deletion must cascade into the favorites set")
	}
}

func TestDeleteAssistantUnknownIDIgnored(t *testing.T) {
	ctrl, kv := newTestController()

	ctrl.DeleteAssistant("rec-buergerservice") // built-in, never in the user set

	if kv.SetCount[store.KeyAssistants] != 0 {
		t.Error("deleting a built-in assistant must be a no-op")
	}
}

func TestToggleFavorite(t *testing.T) {
	ctrl, kv := newTestController()

	ctrl.ToggleFavorite("rec-buergerservice")
	if !ctrl.IsFavorite("rec-buergerservice") {
		t.Error("expected the id to be favorited")
	}

	ctrl.ToggleFavorite("rec-buergerservice")
	if ctrl.IsFavorite("rec-buergerservice") {
		t.Error("expected the id to be unfavorited")
	}
	if kv.SetCount[store.KeyFavorites] != 2 {
		t.Errorf("expected 2 persistence writes, got %d", kv.SetCount[store.KeyFavorites])
	}
}

func TestSelectModelEngagesSecureMode(t *testing.T) {
	ctrl, kv := newTestController()

	// First use detours through the intro.
	if st := ctrl.SelectModel("llama-3-70b"); st != securemode.AwaitingIntroAck {
		t.Fatalf("expected intro detour, got %s", st)
	}
	if ctrl.Gate().Active() {
		t.Error("secure mode must not engage before the intro is acknowledged")
	}

	ctrl.Gate().ConfirmIntro()
	ctrl.Gate().Disable()

	// With the intro acknowledged, the model choice engages directly.
	if st := ctrl.SelectModel("mistral-large"); st != securemode.Secure {
		t.Errorf("expected secure state, got %s", st)
	}

	if !store.LoadFlag(kv, store.KeyHasSeenSecureIntro) {
		t.Error("expected the intro flag to be persisted")
	}
}

func TestSelectModelUpdatesCurrentChat(t *testing.T) {
	ctrl, _ := newTestController()

	chat, job := ctrl.StartChat("Hello", nil)
	ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "Hi"))

	ctrl.SelectModel("claude-3-opus")

	if got := ctrl.CurrentChat().LLMModel; got != "claude-3-opus" {
		t.Errorf("expected the current chat to carry the model, got %q", got)
	}
	if got := ctrl.Chats()[0].LLMModel; got != "claude-3-opus" {
		t.Errorf("expected the stored chat to carry the model, got %q", got)
	}
	_ = chat
}

func TestViewDegradesWithoutCurrentChat(t *testing.T) {
	ctrl, _ := newTestController()

	ctrl.Navigate(ViewChat)
	if ctrl.View() != ViewHome {
		t.Errorf("a chat view without a chat must degrade to home, got %s", ctrl.View())
	}
}

func TestNavigateHomeClosesChat(t *testing.T) {
	ctrl, _ := newTestController()

	_, job := ctrl.StartChat("Hello", nil)
	ctrl.CompleteReply(job, models.NewMessage(models.RoleAssistant, "Hi"))

	ctrl.Navigate(ViewHome)
	if ctrl.CurrentChat() != nil {
		t.Error("navigating home must close the current chat")
	}
}

func TestLanguagePersistsAcrossSessions(t *testing.T) {
	kv := store.NewMemory()

	first := NewController(kv, i18n.English)
	first.SetLanguage(i18n.German)

	second := NewController(kv, i18n.English)
	if second.Language() != i18n.German {
		t.Errorf("expected persisted language, got %s", second.Language())
	}
}

func TestTermsFlag(t *testing.T) {
	kv := store.NewMemory()

	ctrl := NewController(kv, i18n.English)
	if ctrl.TermsAccepted() {
		t.Error("terms must start unaccepted")
	}
	ctrl.AcceptTerms()
	if !ctrl.TermsAccepted() {
		t.Error("expected the terms flag to be set")
	}

	again := NewController(kv, i18n.English)
	if !again.TermsAccepted() {
		t.Error("the terms flag must survive a restart")
	}
}

func TestCollectionsPersistAcrossSessions(t *testing.T) {
	kv := store.NewMemory()

	first := NewController(kv, i18n.English)
	a, _ := first.CreateAssistant(assistantDraft("Survivor"))
	first.ToggleFavorite(a.ID)
	_, job := first.StartChat("Hello", nil)
	first.CompleteReply(job, models.NewMessage(models.RoleAssistant, "Hi"))

	second := NewController(kv, i18n.English)
	if len(second.UserAssistants()) != 1 {
		t.Errorf("expected 1 assistant after reload, got %d", len(second.UserAssistants()))
	}
	if !second.IsFavorite(a.ID) {
		t.Error("expected the favorite to survive a reload")
	}
	if len(second.Chats()) != 1 {
		t.Errorf("expected 1 chat after reload, got %d", len(second.Chats()))
	}
}
