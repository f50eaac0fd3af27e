package simulate

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"cityassist/internal/models"
)

const defaultSystemPrompt = "You are a helpful AI assistant."

// OpenAIResponder answers through an OpenAI-compatible chat completion
// API. Network and inference failures are mapped onto Result.Err so the
// chat UI can render them.
type OpenAIResponder struct {
	client *openai.Client
	model  string
}

func NewOpenAIResponder(apiKey, baseURL, model string) *OpenAIResponder {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIResponder{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (r *OpenAIResponder) GenerateReply(ctx context.Context, req Request) Result {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt(req),
		},
	}
	for _, m := range req.Chat.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	behavior := models.EffectiveBehavior(&req.Chat, req.Assistant)
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Messages:    messages,
		Temperature: behavior.Temperature(),
	})
	if err != nil {
		return Result{Err: fmt.Errorf("chat completion failed: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return Result{Err: fmt.Errorf("chat completion returned no choices")}
	}

	return Result{Message: models.NewMessage(models.RoleAssistant, resp.Choices[0].Message.Content)}
}

func systemPrompt(req Request) string {
	if req.Chat.SystemPrompt != "" {
		return req.Chat.SystemPrompt
	}
	if req.Assistant != nil && req.Assistant.SystemPrompt != "" {
		return req.Assistant.SystemPrompt
	}
	return defaultSystemPrompt
}
