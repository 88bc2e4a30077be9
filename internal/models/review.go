package models

// Review is the transient outcome of a quality check. It lives for the
// duration of one webhook delivery and is never persisted.
type Review struct {
	NeedsImprovement bool     `json:"needs_improvement"`
	IssuesFound      []string `json:"issues_found"`
	Critique         string   `json:"critique"`
}
