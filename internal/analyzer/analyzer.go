// Package analyzer decides whether a newly submitted idea is described well
// enough to be actionable, and drafts a critique when it is not.
package analyzer

import (
	"context"

	"github.com/talvey/aha-critic/internal/models"
)

type Analyzer interface {
	Review(ctx context.Context, idea *models.Idea) (*models.Review, error)
}

// StaticCritique is the deterministic clarification request used by the
// static policy and as the fallback when the generative call fails.
const StaticCritique = "Thanks for submitting this idea! Could you describe the customer pain and measurable impact " +
	"in more detail—what currently happens, how often, and what the business effect is? " +
	"This will help us prioritize and design the right solution."

// StaticAnalyzer always asks for clarification. No external dependency.
type StaticAnalyzer struct{}

func NewStaticAnalyzer() *StaticAnalyzer {
	return &StaticAnalyzer{}
}

func (a *StaticAnalyzer) Review(ctx context.Context, idea *models.Idea) (*models.Review, error) {
	return &models.Review{
		NeedsImprovement: true,
		Critique:         StaticCritique,
	}, nil
}
