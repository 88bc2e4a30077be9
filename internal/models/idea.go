package models

import (
	"strconv"

	"github.com/talvey/aha-critic/internal/text"
)

// Idea is the slice of an Aha! idea record this service cares about. The
// platform is the source of truth; nothing here is written back except a
// comment. Rich-text fields are stored tag-stripped.
type Idea struct {
	ID                string
	ReferenceNum      string
	Reference         string
	Name              string
	URL               string
	Description       string
	CurrentBehavior   string
	Impact            string
	RequestedBehavior string
	CustomerName      string
}

// IdeaFromPayload extracts an Idea from a lenient webhook payload. Fields may
// live at the top level or under custom_fields, depending on how the Aha!
// workspace form is configured.
func IdeaFromPayload(payload map[string]any) *Idea {
	cf, _ := payload["custom_fields"].(map[string]any)

	return &Idea{
		ID:                stringField(payload, "id"),
		ReferenceNum:      stringField(payload, "reference_num"),
		Reference:         stringField(payload, "reference"),
		Name:              stringField(payload, "name"),
		URL:               stringField(payload, "url"),
		Description:       text.StripTags(stringField(payload, "description")),
		CurrentBehavior:   text.StripTags(firstNonEmpty(stringField(payload, "current_behavior"), stringField(cf, "current_behavior"))),
		Impact:            text.StripTags(firstNonEmpty(stringField(payload, "impact"), stringField(cf, "impact"))),
		RequestedBehavior: text.StripTags(firstNonEmpty(stringField(payload, "requested_behavior"), stringField(cf, "requested_behavior"))),
		CustomerName: firstNonEmpty(
			stringField(payload, "customer_name"),
			stringField(cf, "customer_name"),
			stringField(cf, "organization"),
			stringField(cf, "organization_name"),
		),
	}
}

// Identifier resolves the id used for API calls: explicit id first, then the
// human-facing reference number, then the reference code.
func (i *Idea) Identifier() string {
	return firstNonEmpty(i.ID, i.ReferenceNum, i.Reference)
}

// DisplayRef is the reference shown to humans and used in idea URLs.
func (i *Idea) DisplayRef() string {
	return firstNonEmpty(i.ReferenceNum, i.Reference, i.ID)
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; Aha! ids are integers.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
