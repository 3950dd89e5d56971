package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/BoyTiger-1/budget-ai/internal/core"
	"github.com/BoyTiger-1/budget-ai/internal/log"
)

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Recommend produces budget recommendations. Model output must be a
// JSON array of title/description objects; anything else falls through
// to the rule-based set.
func (a *Advisor) Recommend(ctx context.Context, snap Snapshot) []Recommendation {
	if a.Enabled() {
		recs, err := a.recommendWithModel(ctx, snap)
		if err == nil {
			return recs
		}
		a.logger.WarnContext(ctx, "model recommendations failed, using rules", log.FieldError, err.Error())
	}
	return FallbackRecommendations(snap)
}

func (a *Advisor) recommendWithModel(ctx context.Context, snap Snapshot) ([]Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	spending := make(map[string]core.Money, len(snap.CategorySpending))
	for _, c := range snap.CategorySpending {
		spending[c.Name] = c.Amount
	}
	spendingJSON, err := json.Marshal(spending)
	if err != nil {
		return nil, fmt.Errorf("encode spending: %w", err)
	}

	prompt := fmt.Sprintf("Based on this financial data:\n"+
		"Income: $%s\n"+
		"Expenses: $%s\n"+
		"Category Spending: %s\n"+
		"Net Worth: $%s\n\n"+
		"Provide 3 specific budget recommendations. Format as JSON array with objects containing 'title' and 'description' fields.",
		snap.TotalIncome, snap.TotalExpenses, spendingJSON, snap.NetWorth)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices")
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var recs []Recommendation
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &recs); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	for _, r := range recs {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("recommendation with empty title")
		}
	}
	return recs, nil
}

// FallbackRecommendations derives up to three recommendations from the
// snapshot without any model involvement. The list may be empty for a
// fresh ledger.
func FallbackRecommendations(snap Snapshot) []Recommendation {
	recs := make([]Recommendation, 0, 3)

	if snap.TotalIncome.Cents > 0 && snap.TotalExpenses.Cents*10 > snap.TotalIncome.Cents*8 {
		pct := float64(snap.TotalExpenses.Cents) / float64(snap.TotalIncome.Cents) * 100
		recs = append(recs, Recommendation{
			Title:       "Reduce Spending",
			Description: fmt.Sprintf("You're spending %.1f%% of your income. Try to reduce expenses by 10-20%%.", pct),
		})
	}

	if snap.TopCategory != nil {
		recs = append(recs, Recommendation{
			Title:       fmt.Sprintf("Review %s Spending", *snap.TopCategory),
			Description: fmt.Sprintf("%s is your biggest expense category. Consider setting a weekly limit.", *snap.TopCategory),
		})
	}

	if snap.TotalDebts.Cents > 0 {
		recs = append(recs, Recommendation{
			Title:       "Pay Down Debt",
			Description: fmt.Sprintf("You have $%s in debt. Focus on paying high-interest debt first.", snap.TotalDebts),
		})
	}

	return recs
}
