package trainer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/ParkChanH/project-anchovy/internal/errors"
)

// openaiCompleter talks to any OpenAI-compatible chat-completion endpoint.
type openaiCompleter struct {
	client openai.Client
	model  openai.ChatModel
}

func newOpenAICompleter(cfg Config) *openaiCompleter {
	return &openaiCompleter{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
		),
		model: openai.ChatModel(cfg.Model),
	}
}

func (c *openaiCompleter) complete(ctx context.Context, messages []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       c.model,
		MaxTokens:   openai.Int(1024),
		Temperature: openai.Float(0.7),
		TopP:        openai.Float(0.9),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleUser:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		}
	}

	chat, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(chat.Choices[0].Message.Content), nil
}
