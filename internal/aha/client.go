// Package aha is a minimal client for the Aha! ideas REST API.
package aha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DraftPrefix tags comments as pending human review before being finalized.
const DraftPrefix = "[DRAFT – review required]"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Comment is the parsed body of an accepted comment response. Aha! returns
// more fields; only the ones worth logging are kept.
type Comment struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type commentResponse struct {
	Comment Comment `json:"comment"`
}

// commentShapes are the request-body variants tried in order. Some Aha!
// accounts expect the visibility enum, older ones a private boolean. The
// first accepted response wins.
var commentShapes = []struct {
	name  string
	build func(body string) any
}{
	{
		name: "visibility_enum",
		build: func(body string) any {
			return map[string]any{"comment": map[string]any{"body": body, "visibility": "private"}}
		},
	},
	{
		name: "private_bool",
		build: func(body string) any {
			return map[string]any{"comment": map[string]any{"body": body, "private": true}}
		},
	},
}

func NewClient(baseURL, token string) *Client {
	if token == "" {
		log.Fatal("AHA_API_TOKEN is required")
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// PostPrivateComment posts a draft private comment on the idea. Each request
// shape is tried in order; when all are rejected an empty comment and the
// last status are returned. It never panics past this boundary.
func (c *Client) PostPrivateComment(ctx context.Context, ideaID, body string) (*Comment, error) {
	draft := DraftPrefix + "\n\n" + body
	url := fmt.Sprintf("%s/api/v1/ideas/%s/comments", c.baseURL, ideaID)

	var lastStatus int
	var lastErr error

	for _, shape := range commentShapes {
		comment, status, err := c.postComment(ctx, url, shape.build(draft))
		if err != nil {
			log.Printf("⚠️ comment shape %s for idea %s: %v", shape.name, ideaID, err)
			lastErr = err
			continue
		}
		if status < http.StatusMultipleChoices {
			return comment, nil
		}

		log.Printf("⚠️ Aha! rejected comment shape %s for idea %s (status %d)", shape.name, ideaID, status)
		lastStatus = status
	}

	if lastStatus == 0 && lastErr != nil {
		return &Comment{}, fmt.Errorf("all comment shapes failed: %w", lastErr)
	}
	return &Comment{}, fmt.Errorf("all comment shapes rejected, last status %d", lastStatus)
}

func (c *Client) postComment(ctx context.Context, url string, payload any) (*Comment, int, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, nil
	}

	var parsed commentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		// Accepted but unparseable is still a success for the caller.
		log.Printf("⚠️ could not parse Aha! comment response: %v", err)
		return &Comment{}, resp.StatusCode, nil
	}

	return &parsed.Comment, resp.StatusCode, nil
}
