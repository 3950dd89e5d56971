package advisor

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/log"
)

// Categorize suggests a starter category for an expense description.
// The model is asked first when available; any failure, and any answer
// outside the starter set, falls through to keyword matching.
func (a *Advisor) Categorize(ctx context.Context, description string, amount core.Money) string {
	if a.Enabled() {
		name, err := a.categorizeWithModel(ctx, description, amount)
		if err == nil {
			return name
		}
		a.logger.WarnContext(ctx, "model categorization failed, matching keywords", log.FieldError, err.Error())
	}
	return KeywordCategory(description)
}

func (a *Advisor) categorizeWithModel(ctx context.Context, description string, amount core.Money) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Categorize this expense: %q for $%s.\n"+
		"Return ONLY the category name from this list: Food, Transport, Fun, Shopping, Other.\n"+
		"Return just the category name, nothing else.", description, amount)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		MaxTokens:   10,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices")
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	name, ok := canonicalCategory(answer)
	if !ok {
		return "", fmt.Errorf("unexpected category %q", answer)
	}
	return name, nil
}

// canonicalCategory maps a free-form answer onto the exact starter
// category name, ignoring case and trailing punctuation.
func canonicalCategory(answer string) (string, bool) {
	answer = strings.TrimRight(strings.TrimSpace(answer), ".!")
	for _, c := range core.StarterCategories {
		if strings.EqualFold(c.Name, answer) {
			return c.Name, true
		}
	}
	return "", false
}

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"Food", []string{"food", "restaurant", "grocery", "eat", "meal", "cafe", "pizza", "burger"}},
	{"Transport", []string{"uber", "taxi", "bus", "train", "gas", "fuel", "parking", "transport"}},
	{"Fun", []string{"movie", "game", "entertainment", "fun", "party", "concert"}},
	{"Shopping", []string{"shop", "store", "buy", "purchase", "amazon", "clothes"}},
}

// KeywordCategory is the deterministic categorizer: first keyword list
// with a substring hit wins, anything unmatched lands in Other.
func KeywordCategory(description string) string {
	desc := strings.ToLower(description)
	for _, ck := range categoryKeywords {
		for _, word := range ck.words {
			if strings.Contains(desc, word) {
				return ck.category
			}
		}
	}
	return "Other"
}
