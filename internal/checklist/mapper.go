package checklist

import "kycagent/internal/kyc/models"

// Map applies recognised entities to a copy of items and returns the copy.
//
// An entity completes the item whose ID equals its Type and stamps the
// item with the entity's provenance. Entities without a matching item are
// dropped. When several entities share a type the last one wins; confidence
// is not consulted. The input slice is never modified and the output keeps
// its order and length.
func Map(entities []models.ExtractedEntity, items []Item) []Item {
	out := Clone(items)
	if len(out) == 0 {
		return out
	}

	index := make(map[string]int, len(out))
	for i, item := range out {
		index[item.ID] = i
	}

	for _, entity := range entities {
		i, ok := index[entity.Type]
		if !ok {
			continue
		}
		item := &out[i]
		item.Value = entity.Value
		item.Status = StatusComplete
		item.SourceDocument = entity.Source.Document
		item.SourcePage = entity.Source.Page
		item.SourceCoordinates = entity.Source.Coordinates.Clone()
	}
	return out
}
