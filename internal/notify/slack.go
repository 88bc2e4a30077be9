// Package notify delivers best-effort review notifications to a Slack
// incoming webhook.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"

	"github.com/talvey/aha-critic/internal/models"
	"github.com/talvey/aha-critic/internal/text"
)

type Status string

const (
	StatusDelivered Status = "delivered"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result reports what happened to one notification. Skipped means no webhook
// URL is configured. The caller logs it; a Result is never a fatal error.
type Result struct {
	Status Status
	Err    error
}

type Notifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts text plus optional blocks to the configured webhook. With no URL
// configured it returns Skipped without touching the network.
func (n *Notifier) Send(ctx context.Context, summary string, blocks []slack.Block) Result {
	if n.webhookURL == "" {
		return Result{Status: StatusSkipped}
	}

	msg := &slack.WebhookMessage{Text: summary}
	if len(blocks) > 0 {
		msg.Blocks = &slack.Blocks{BlockSet: blocks}
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
		return Result{Status: StatusFailed, Err: err}
	}

	return Result{Status: StatusDelivered}
}

// Slack caps header text at 150 characters.
const headerLimit = 149

// BuildIdeaBlocks lays out the review message: header, idea link and
// customer, the four content fields, then the draft critique.
func BuildIdeaBlocks(idea *models.Idea, critique, baseURL string) []slack.Block {
	name := idea.Name
	if name == "" {
		name = "Unnamed idea"
	}
	customer := idea.CustomerName
	if customer == "" {
		customer = "—"
	}

	ideaURL := idea.URL
	if ideaURL == "" && baseURL != "" {
		ideaURL = fmt.Sprintf("%s/ideas/%s", baseURL, idea.DisplayRef())
	}
	ideaField := fmt.Sprintf("*Idea:*\n%s", idea.DisplayRef())
	if ideaURL != "" {
		ideaField = fmt.Sprintf("*Idea:*\n<%s|Open in Aha!>", ideaURL)
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType,
			text.Shorten(fmt.Sprintf("%s (%s)", name, customer), headerLimit), true, false)),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, ideaField, false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Customer:*\n%s", customer), false, false),
		}, nil),
		slack.NewDividerBlock(),
	}

	for _, f := range []struct {
		label string
		value string
	}{
		{"Current behavior", idea.CurrentBehavior},
		{"Impact", idea.Impact},
		{"Requested behavior", idea.RequestedBehavior},
		{"Full description", idea.Description},
	} {
		body := "_[Not provided]_"
		if f.value != "" {
			body = text.Shorten(f.value, text.DefaultLimit)
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*%s:*\n%s", f.label, body), false, false),
			nil, nil))
	}

	blocks = append(blocks,
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Draft critique (for your review)*\n```%s```", text.Shorten(critique, text.DefaultLimit)), false, false),
			nil, nil))

	return blocks
}
