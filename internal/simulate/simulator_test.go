package simulate

import (
	"context"
	"strings"
	"testing"
	"time"

	"cityassist/internal/i18n"
	"cityassist/internal/models"
)

func testSimulator() *Simulator {
	return NewSimulatorWithDelays(time.Millisecond, time.Millisecond)
}

func request(firstReply bool) Request {
	chat := models.NewChat("Hello", nil)
	return Request{
		Chat:       chat,
		FirstReply: firstReply,
		Language:   i18n.English,
	}
}

func TestFirstReplyGreeting(t *testing.T) {
	s := testSimulator()

	res := s.GenerateReply(context.Background(), request(true))
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Message.Role != models.RoleAssistant {
		t.Errorf("expected assistant role, got %s", res.Message.Role)
	}
	if res.Message.Content != "Hello! How can I help you today?" {
		t.Errorf("unexpected greeting: %q", res.Message.Content)
	}
}

func TestFirstReplyGreetingWithAssistantPrompt(t *testing.T) {
	s := testSimulator()

	req := request(true)
	req.Assistant = &models.Assistant{
		Name:         "Bürgerservice",
		Description:  "Helps with municipal services.",
		SystemPrompt: "You are the Bürgerservice assistant.",
	}

	res := s.GenerateReply(context.Background(), req)
	if !strings.Contains(res.Message.Content, "Bürgerservice") {
		t.Errorf("expected the assistant name in the greeting, got %q", res.Message.Content)
	}
	if !strings.Contains(res.Message.Content, "Helps with municipal services.") {
		t.Errorf("expected the description in the greeting, got %q", res.Message.Content)
	}
}

func TestReplyNamesAssistantAndBehavior(t *testing.T) {
	s := testSimulator()

	req := request(false)
	req.Assistant = &models.Assistant{
		Name:             "Protokoll-Helfer",
		ResponseBehavior: models.BehaviorCreative,
	}

	res := s.GenerateReply(context.Background(), req)
	if !strings.Contains(res.Message.Content, "Protokoll-Helfer") {
		t.Errorf("expected the assistant name, got %q", res.Message.Content)
	}
	if !strings.Contains(res.Message.Content, "creative") {
		t.Errorf("expected the assistant's behavior, got %q", res.Message.Content)
	}
}

func TestReplyBehaviorPrecedence(t *testing.T) {
	s := testSimulator()

	// The chat's setting wins over the assistant's.
	req := request(false)
	req.Chat.ResponseBehavior = models.BehaviorPrecise
	req.Assistant = &models.Assistant{
		Name:             "Helper",
		ResponseBehavior: models.BehaviorCreative,
	}

	res := s.GenerateReply(context.Background(), req)
	if !strings.Contains(res.Message.Content, "precise") {
		t.Errorf("expected the chat behavior to win, got %q", res.Message.Content)
	}
}

func TestReplyWithoutAssistant(t *testing.T) {
	s := testSimulator()

	res := s.GenerateReply(context.Background(), request(false))
	if !strings.Contains(res.Message.Content, "the assistant") {
		t.Errorf("expected the generic assistant name, got %q", res.Message.Content)
	}
	if !strings.Contains(res.Message.Content, "balanced") {
		t.Errorf("expected the balanced fallback behavior, got %q", res.Message.Content)
	}
}

func TestSecureMarker(t *testing.T) {
	s := testSimulator()

	req := request(false)
	req.SecureMode = true
	req.Language = i18n.German

	res := s.GenerateReply(context.Background(), req)
	// The marker is fixed and never translated.
	if !strings.Contains(res.Message.Content, SecureMarker) {
		t.Errorf("expected the secure marker, got %q", res.Message.Content)
	}

	req.SecureMode = false
	res = s.GenerateReply(context.Background(), req)
	if strings.Contains(res.Message.Content, SecureMarker) {
		t.Errorf("expected no secure marker in standard mode, got %q", res.Message.Content)
	}
}

func TestReplyTranslated(t *testing.T) {
	s := testSimulator()

	req := request(false)
	req.Language = i18n.German

	res := s.GenerateReply(context.Background(), req)
	if !strings.Contains(res.Message.Content, "simulierte Antwort") {
		t.Errorf("expected a German reply, got %q", res.Message.Content)
	}
}

func TestCancellation(t *testing.T) {
	s := NewSimulatorWithDelays(time.Minute, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.GenerateReply(ctx, request(true))
	if res.Err == nil {
		t.Fatal("expected a cancellation error")
	}
}

func TestDelayConstants(t *testing.T) {
	if FirstReplyDelay != 500*time.Millisecond {
		t.Errorf("unexpected first reply delay: %v", FirstReplyDelay)
	}
	if ReplyDelay != 800*time.Millisecond {
		t.Errorf("unexpected reply delay: %v", ReplyDelay)
	}
}
