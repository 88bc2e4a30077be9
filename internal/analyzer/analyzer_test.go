package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/talvey/aha-critic/internal/models"
)

func TestStaticAnalyzerAlwaysAsksForDetail(t *testing.T) {
	t.Parallel()

	review, err := NewStaticAnalyzer().Review(context.Background(), &models.Idea{Name: "Add dark mode"})
	if err != nil {
		t.Fatalf("static review: %v", err)
	}
	if !review.NeedsImprovement {
		t.Fatalf("static review must always need improvement")
	}
	if review.Critique != StaticCritique {
		t.Fatalf("critique mismatch: got=%q", review.Critique)
	}
}

func TestBuildUserPromptFlagsShortFields(t *testing.T) {
	t.Parallel()

	idea := &models.Idea{
		Name:        "Add dark mode",
		Description: "add a dark mode toggle",
		Impact:      "big",
	}
	prompt := buildUserPrompt(idea)

	if !strings.Contains(prompt, "Idea: Add dark mode") {
		t.Fatalf("prompt missing title: %q", prompt)
	}
	if !strings.Contains(prompt, "Full description: add a dark mode toggle") {
		t.Fatalf("prompt missing description: %q", prompt)
	}
	if !strings.Contains(prompt, "Impact: big (effectively missing") {
		t.Fatalf("short field not flagged: %q", prompt)
	}
	if !strings.Contains(prompt, "Current behavior: (effectively missing)") {
		t.Fatalf("empty field not flagged: %q", prompt)
	}
}

// chatCompletion wraps content into a minimal chat-completions response body.
func chatCompletion(content string) string {
	msg, _ := json.Marshal(content)
	return fmt.Sprintf(`{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":%s}}]}`, msg)
}

func TestOpenAIAnalyzerParsesReview(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion(`{"needs_improvement":true,"issues_found":["no measurable impact"],"critique":"please quantify the impact"}`))
	}))
	defer srv.Close()

	a := NewOpenAIAnalyzer("test-key", "gpt-4o-mini", srv.URL)
	review, err := a.Review(context.Background(), &models.Idea{Name: "Add dark mode", Description: "add a dark mode toggle"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if !review.NeedsImprovement {
		t.Fatalf("expected needs_improvement=true")
	}
	if len(review.IssuesFound) != 1 || review.IssuesFound[0] != "no measurable impact" {
		t.Fatalf("issues mismatch: %v", review.IssuesFound)
	}
	if review.Critique != "please quantify the impact" {
		t.Fatalf("critique mismatch: %q", review.Critique)
	}
}

func TestOpenAIAnalyzerAdequateIdea(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion(`{"needs_improvement":false,"issues_found":[],"critique":""}`))
	}))
	defer srv.Close()

	a := NewOpenAIAnalyzer("test-key", "gpt-4o-mini", srv.URL)
	review, err := a.Review(context.Background(), &models.Idea{Name: "Well described"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if review.NeedsImprovement {
		t.Fatalf("expected needs_improvement=false")
	}
}

func TestOpenAIAnalyzerMalformedContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion("sorry, I cannot help with that"))
	}))
	defer srv.Close()

	a := NewOpenAIAnalyzer("test-key", "gpt-4o-mini", srv.URL)
	if _, err := a.Review(context.Background(), &models.Idea{Name: "Add dark mode"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpenAIAnalyzerServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewOpenAIAnalyzer("test-key", "gpt-4o-mini", srv.URL)
	if _, err := a.Review(context.Background(), &models.Idea{Name: "Add dark mode"}); err == nil {
		t.Fatalf("expected API error")
	}
}
