package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"

	"github.com/talvey/aha-critic/internal/models"
)

// A field shorter than this carries no real signal and is called out to the
// model as effectively missing.
const shortFieldThreshold = 20

const systemPrompt = `You are a product operations reviewer for newly submitted product ideas.

A well-described idea states an explicit problem, a measurable impact (how often it happens, what it costs), and an outcome-focused ask.
A poorly described idea prescribes a specific solution, is vague about the underlying pain, or leaves fields empty.

Judge the submission and respond with a single JSON object containing exactly these fields:
- "needs_improvement": boolean, true when the submitter should be asked for more detail
- "issues_found": array of short strings naming what is missing or weak
- "critique": string, a short friendly comment asking the submitter for the missing problem/impact detail; empty when needs_improvement is false`

// OpenAIAnalyzer asks a chat-completion model to judge the idea. Calls are
// rate limited client-side so a webhook burst cannot drain the API quota.
type OpenAIAnalyzer struct {
	client  openai.Client
	model   string
	limiter *rate.Limiter
}

func NewOpenAIAnalyzer(apiKey, model, baseURL string) *OpenAIAnalyzer {
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	// Single attempt; delivery latency stays bounded by one call timeout.
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIAnalyzer{
		client:  openai.NewClient(opts...),
		model:   model,
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

func (a *OpenAIAnalyzer) Review(ctx context.Context, idea *models.Idea) (*models.Review, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(idea)),
		},
		MaxTokens:   openai.Int(500),
		Temperature: openai.Float(0.2),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	var review models.Review
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &review); err != nil {
		return nil, fmt.Errorf("failed to parse review: %w", err)
	}

	log.Printf("🔎 Review for %q: needs_improvement=%t issues=%d", idea.Name, review.NeedsImprovement, len(review.IssuesFound))

	return &review, nil
}

func buildUserPrompt(idea *models.Idea) string {
	var b strings.Builder

	title := idea.Name
	if title == "" {
		title = "this idea"
	}
	fmt.Fprintf(&b, "Idea: %s\n\n", title)

	for _, f := range []struct {
		label string
		value string
	}{
		{"Current behavior", idea.CurrentBehavior},
		{"Impact", idea.Impact},
		{"Requested behavior", idea.RequestedBehavior},
		{"Full description", idea.Description},
	} {
		value := strings.TrimSpace(f.value)
		if len(value) < shortFieldThreshold {
			if value == "" {
				fmt.Fprintf(&b, "%s: (effectively missing)\n", f.label)
			} else {
				fmt.Fprintf(&b, "%s: %s (effectively missing, under %d characters)\n", f.label, value, shortFieldThreshold)
			}
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", f.label, value)
	}

	return b.String()
}
