package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/talvey/aha-critic/internal/analyzer"
	"github.com/talvey/aha-critic/internal/models"
	"github.com/talvey/aha-critic/internal/notify"
)

type webhookResponse struct {
	Status string `json:"status"`
	IdeaID string `json:"idea_id,omitempty"`
	Action string `json:"action,omitempty"`
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	// Aha! probes the endpoint with GET/HEAD when the webhook is registered.
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deliveryID := uuid.New().String()[:8]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[%s] failed to read webhook body: %v", deliveryID, err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Lenient parse: a malformed or absent body is an empty event, not a
	// failure. It will be rejected below for having no idea id.
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		payload = map[string]any{}
	}

	if event, ok := payload["event"].(string); ok && event != "" && !strings.Contains(event, "create") {
		log.Printf("[%s] skipping non-creation event %q", deliveryID, event)
		writeJSON(w, webhookResponse{Status: "skipped"})
		return
	}

	ideaPayload, ok := payload["idea"].(map[string]any)
	if !ok {
		ideaPayload = payload
	}

	idea := models.IdeaFromPayload(ideaPayload)
	ideaID := idea.Identifier()
	if ideaID == "" {
		log.Printf("[%s] no idea id in payload", deliveryID)
		http.Error(w, "no idea id", http.StatusBadRequest)
		return
	}

	log.Printf("[%s] 💡 idea received: %s - %s", deliveryID, ideaID, idea.Name)

	ctx := r.Context()

	review, err := s.analyzer.Review(ctx, idea)
	if err != nil {
		// Degrade to the static critique; a human still gets to review.
		log.Printf("[%s] ⚠️ analysis failed, using static critique: %v", deliveryID, err)
		review = &models.Review{NeedsImprovement: true, Critique: analyzer.StaticCritique}
	}

	if !review.NeedsImprovement {
		log.Printf("[%s] ✅ idea %s adequately described, nothing to do", deliveryID, ideaID)
		writeJSON(w, webhookResponse{Status: "ok", IdeaID: ideaID, Action: "no_action_needed"})
		return
	}

	action := "commented"
	if _, err := s.publisher.PostPrivateComment(ctx, ideaID, review.Critique); err != nil {
		log.Printf("[%s] ⚠️ failed to post draft comment: %v", deliveryID, err)
		action = "comment_failed"
		warning := fmt.Sprintf("⚠️ Failed to add draft private note for idea %s: %v", ideaID, err)
		s.logDelivery(deliveryID, s.notifier.Send(ctx, warning, nil))
		writeJSON(w, webhookResponse{Status: "ok", IdeaID: ideaID, Action: action})
		return
	}

	name := idea.Name
	if name == "" {
		name = "idea"
	}
	blocks := notify.BuildIdeaBlocks(idea, review.Critique, s.ahaBaseURL)
	s.logDelivery(deliveryID, s.notifier.Send(ctx, "Draft note for "+name, blocks))

	writeJSON(w, webhookResponse{Status: "ok", IdeaID: ideaID, Action: action})
}

func (s *Server) logDelivery(deliveryID string, res notify.Result) {
	switch res.Status {
	case notify.StatusDelivered:
		log.Printf("[%s] 💬 Slack notification delivered", deliveryID)
	case notify.StatusSkipped:
		log.Printf("[%s] Slack notification skipped: no webhook configured", deliveryID)
	case notify.StatusFailed:
		log.Printf("[%s] ⚠️ Slack notification failed: %v", deliveryID, res.Err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
