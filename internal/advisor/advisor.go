package advisor

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/BoyTiger-1/budget-ai/internal/log"
)

const chatPersona = "You're a helpful budgeting assistant for teens. Give practical, encouraging advice in simple language. Keep it short and friendly."

// Advisor serves chat, categorization and recommendation requests. The
// client is nil when no API key is configured; every method degrades to
// its deterministic fallback in that case.
type Advisor struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *log.Logger
}

func New(apiKey, model string, timeout time.Duration, logger *log.Logger) *Advisor {
	a := &Advisor{
		model:   model,
		timeout: timeout,
		logger:  logger.WithComponent(log.ComponentAdvisor),
	}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// Enabled reports whether model-backed answers are available.
func (a *Advisor) Enabled() bool {
	return a.client != nil
}

// Respond answers a chat message. Model failures are logged and never
// surface to the caller; the rule engine answers instead.
func (a *Advisor) Respond(ctx context.Context, message string, snap Snapshot) string {
	if a.Enabled() {
		reply, err := a.chat(ctx, message, snap)
		if err == nil && reply != "" {
			return reply
		}
		if err != nil {
			a.logger.WarnContext(ctx, "chat completion failed, answering from rules", log.FieldError, err.Error())
		}
	}
	return RuleResponse(message, snap)
}

func (a *Advisor) chat(ctx context.Context, message string, snap Snapshot) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatPersona},
			{Role: openai.ChatMessageRoleSystem, Content: contextBlock(snap)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   300,
		Temperature: 0.8,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
