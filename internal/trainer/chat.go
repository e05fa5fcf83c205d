// Package trainer implements the AI coaching chat: it builds a system
// prompt from the user's profile and recent diary, talks to a
// chat-completion API, and parses structured actions out of the replies.
package trainer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/ParkChanH/project-anchovy/internal/diary"
	"github.com/ParkChanH/project-anchovy/internal/errors"
	"github.com/ParkChanH/project-anchovy/internal/profile"
)

// Message roles accepted in a chat exchange.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the trainer's answer: the raw text, its rendered HTML, and any
// structured actions the model proposed.
type Reply struct {
	Message string   `json:"message"`
	HTML    string   `json:"html"`
	Actions []Action `json:"actions"`
}

// ErrInvalidMessage marks malformed chat input.
var ErrInvalidMessage = errors.NewSentinel("invalid chat message")

// ProfileStore is the slice of the profile service the trainer needs.
type ProfileStore interface {
	GetOrCreate(ctx context.Context, id string) (profile.Profile, error)
	Apply(ctx context.Context, id string, update profile.Update) (profile.Profile, error)
}

// DiaryStore provides the recent activity window for the system prompt.
type DiaryStore interface {
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]diary.Log, error)
}

// completer abstracts the chat-completion API so tests can fake it.
type completer interface {
	complete(ctx context.Context, messages []Message) (string, error)
}

// Config holds the chat-completion endpoint settings. The defaults target
// the DeepSeek OpenAI-compatible API.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"
)

// Service handles the coaching chat.
type Service struct {
	llm      completer
	profiles ProfileStore
	diaries  DiaryStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new trainer service.
func NewService(cfg Config, profiles ProfileStore, diaries DiaryStore, logger *slog.Logger) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &Service{
		llm:      newOpenAICompleter(cfg),
		profiles: profiles,
		diaries:  diaries,
		logger:   logger,
		now:      time.Now,
	}
}

// Chat sends the conversation to the model with the user's context
// prepended and parses the reply.
func (s *Service) Chat(ctx context.Context, userID string, messages []Message) (Reply, error) {
	if err := validateMessages(messages); err != nil {
		return Reply{}, err
	}

	p, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return Reply{}, fmt.Errorf("get profile: %w", err)
	}
	to := s.now().UTC()
	logs, err := s.diaries.ListRange(ctx, userID, to.AddDate(0, 0, -7), to)
	if err != nil {
		return Reply{}, fmt.Errorf("list recent logs: %w", err)
	}

	full := make([]Message, 0, len(messages)+1)
	full = append(full, Message{Role: RoleSystem, Content: SystemPrompt(p, logs)})
	full = append(full, messages...)

	content, err := s.llm.complete(ctx, full)
	if err != nil {
		return Reply{}, fmt.Errorf("chat completion: %w", err)
	}

	text, actions, err := splitActions(content)
	if err != nil {
		// A malformed action line must not lose the reply text; surface
		// the text and drop the actions.
		s.logger.LogAttrs(ctx, slog.LevelWarn, "dropping malformed actions", errors.SlogError(err))
		actions = nil
	}
	html, err := renderMarkdown(text)
	if err != nil {
		return Reply{}, fmt.Errorf("render reply: %w", err)
	}

	return Reply{Message: text, HTML: html, Actions: actions}, nil
}

// Greeting builds the opening message for a user.
func (s *Service) Greeting(ctx context.Context, userID string) (string, error) {
	p, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get profile: %w", err)
	}
	return InitialGreeting(p), nil
}

// ExecuteAction applies one action against the user's profile.
func (s *Service) ExecuteAction(ctx context.Context, userID string, action Action) (ActionResult, error) {
	return Execute(ctx, s.profiles, userID, action)
}

func validateMessages(messages []Message) error {
	if len(messages) == 0 {
		return errors.Wrap(ErrInvalidMessage, "empty conversation")
	}
	for _, m := range messages {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return errors.Wrap(ErrInvalidMessage, "unexpected role", slog.String("role", m.Role))
		}
		if strings.TrimSpace(m.Content) == "" {
			return errors.Wrap(ErrInvalidMessage, "empty message content")
		}
	}
	return nil
}

const actionsMarker = "[ACTIONS]"

// splitActions separates the free-text reply from the trailing actions
// line, if present.
func splitActions(content string) (string, []Action, error) {
	idx := strings.LastIndex(content, actionsMarker)
	if idx < 0 {
		return strings.TrimSpace(content), nil, nil
	}
	text := strings.TrimSpace(content[:idx])
	raw := strings.TrimSpace(content[idx+len(actionsMarker):])
	actions, err := ParseActions([]byte(raw))
	if err != nil {
		return text, nil, err
	}
	return text, actions, nil
}

func renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
