package checklist

import "kycagent/internal/kyc/models"

// Status tracks whether a checklist item has been satisfied.
type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
)

// Item is one KYC attribute tracked for completeness. Only Status, Value and
// the provenance fields ever change; the id set is fixed by the template.
type Item struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Required          bool                `json:"required"`
	Status            Status              `json:"status"`
	Value             string              `json:"value,omitempty"`
	SourceDocument    string              `json:"source_document,omitempty"`
	SourcePage        int                 `json:"source_page,omitempty"`
	SourceCoordinates *models.Coordinates `json:"source_coordinates,omitempty"`
}

// IsPending reports whether the item is required and still unsatisfied.
func (i Item) IsPending() bool {
	return i.Required && i.Status == StatusPending
}

// clone deep-copies the item, including its coordinates.
func (i Item) clone() Item {
	i.SourceCoordinates = i.SourceCoordinates.Clone()
	return i
}

// ItemPatch carries the fields UpdateItem merges into an item. Nil fields are
// left untouched.
type ItemPatch struct {
	Status            *Status
	Value             *string
	SourceDocument    *string
	SourcePage        *int
	SourceCoordinates *models.Coordinates
}

func (p ItemPatch) apply(item *Item) {
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.Value != nil {
		item.Value = *p.Value
	}
	if p.SourceDocument != nil {
		item.SourceDocument = *p.SourceDocument
	}
	if p.SourcePage != nil {
		item.SourcePage = *p.SourcePage
	}
	if p.SourceCoordinates != nil {
		item.SourceCoordinates = p.SourceCoordinates.Clone()
	}
}

// Clone deep-copies a checklist.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}

// PendingNames returns the names of required, pending items in order.
func PendingNames(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsPending() {
			names = append(names, item.Name)
		}
	}
	return names
}
