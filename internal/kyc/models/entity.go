package models

// Coordinates is a rectangle on a document page, in viewer units.
type Coordinates struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clone returns a copy of c, or nil when c is nil.
func (c *Coordinates) Clone() *Coordinates {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// EntitySource locates an entity in a document. Nil coordinates mean the
// viewer should highlight by term instead of by rectangle.
type EntitySource struct {
	Document    string       `json:"document"`
	Page        int          `json:"page"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ExtractedEntity is a typed value recognised in document text. Type must
// match a checklist item id to be mapped; Confidence is informational only.
type ExtractedEntity struct {
	Type       string       `json:"type"`
	Value      string       `json:"value"`
	Confidence float64      `json:"confidence"`
	Source     EntitySource `json:"source"`
}
