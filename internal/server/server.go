// Package server exposes the inbound webhook endpoint and wires the review
// flow: receive idea event, analyze, comment back, notify Slack.
package server

import (
	"context"
	"log"
	"net/http"

	"github.com/slack-go/slack"

	"github.com/talvey/aha-critic/internal/aha"
	"github.com/talvey/aha-critic/internal/models"
	"github.com/talvey/aha-critic/internal/notify"
)

type Analyzer interface {
	Review(ctx context.Context, idea *models.Idea) (*models.Review, error)
}

type Publisher interface {
	PostPrivateComment(ctx context.Context, ideaID, body string) (*aha.Comment, error)
}

type Notifier interface {
	Send(ctx context.Context, summary string, blocks []slack.Block) notify.Result
}

type Server struct {
	ahaBaseURL string
	analyzer   Analyzer
	publisher  Publisher
	notifier   Notifier
}

func NewServer(ahaBaseURL string, analyzer Analyzer, publisher Publisher, notifier Notifier) *Server {
	return &Server{
		ahaBaseURL: ahaBaseURL,
		analyzer:   analyzer,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/aha/webhook", s.handleWebhook)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start runs the HTTP server on the given port.
func (s *Server) Start(port string) error {
	log.Printf("🚀 Idea critic starting on port %s", port)
	log.Printf("📡 Webhook endpoint: http://localhost:%s/aha/webhook", port)
	log.Printf("🏥 Health check: http://localhost:%s/health", port)

	return http.ListenAndServe(":"+port, s.Handler())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok": true}`))
}
