package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycagent/internal/kyc/models"
)

func findItem(t *testing.T, items []Item, id string) Item {
	t.Helper()
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %q not found", id)
	return Item{}
}

func TestMap(t *testing.T) {
	t.Run("completes matching item with provenance", func(t *testing.T) {
		entities := []models.ExtractedEntity{{
			Type:       "full_name",
			Value:      "Jane Roe",
			Confidence: 0.9,
			Source: models.EntitySource{
				Document:    "passport.pdf",
				Page:        2,
				Coordinates: &models.Coordinates{X: 10, Y: 20, Width: 30, Height: 40},
			},
		}}

		out := Map(entities, Template())

		item := findItem(t, out, "full_name")
		assert.Equal(t, StatusComplete, item.Status)
		assert.Equal(t, "Jane Roe", item.Value)
		assert.Equal(t, "passport.pdf", item.SourceDocument)
		assert.Equal(t, 2, item.SourcePage)
		require.NotNil(t, item.SourceCoordinates)
		assert.Equal(t, models.Coordinates{X: 10, Y: 20, Width: 30, Height: 40}, *item.SourceCoordinates)
	})

	t.Run("does not modify the input checklist", func(t *testing.T) {
		in := Template()
		entities := []models.ExtractedEntity{{Type: "email", Value: "jane@example.org"}}

		out := Map(entities, in)

		assert.Equal(t, Template(), in)
		assert.Equal(t, StatusComplete, findItem(t, out, "email").Status)
	})

	t.Run("ignores entities with no matching item", func(t *testing.T) {
		entities := []models.ExtractedEntity{{Type: "passport_photo", Value: "x"}}

		out := Map(entities, Template())

		assert.Equal(t, Template(), out)
	})

	t.Run("last entity of a type wins regardless of confidence", func(t *testing.T) {
		entities := []models.ExtractedEntity{
			{Type: "address", Value: "1 First St", Confidence: 0.99},
			{Type: "address", Value: "2 Second St", Confidence: 0.10},
		}

		out := Map(entities, Template())

		assert.Equal(t, "2 Second St", findItem(t, out, "address").Value)
	})

	t.Run("preserves order and length", func(t *testing.T) {
		entities := []models.ExtractedEntity{
			{Type: "shareholders", Value: "A, B"},
			{Type: "full_name", Value: "Jane Roe"},
		}

		out := Map(entities, Template())

		require.Len(t, out, len(Template()))
		for i, item := range Template() {
			assert.Equal(t, item.ID, out[i].ID)
		}
	})

	t.Run("re-mapping overwrites a completed item", func(t *testing.T) {
		first := Map([]models.ExtractedEntity{{Type: "dob", Value: "01/01/1990", Source: models.EntitySource{Document: "a.pdf", Page: 1}}}, Template())

		second := Map([]models.ExtractedEntity{{Type: "dob", Value: "02/02/1992", Source: models.EntitySource{Document: "b.pdf", Page: 3}}}, first)

		dob := findItem(t, second, "dob")
		assert.Equal(t, "02/02/1992", dob.Value)
		assert.Equal(t, "b.pdf", dob.SourceDocument)
		assert.Nil(t, dob.SourceCoordinates)
	})

	t.Run("empty input yields a copy", func(t *testing.T) {
		assert.Empty(t, Map(nil, nil))
		assert.Equal(t, Template(), Map(nil, Template()))
	})

	t.Run("output coordinates do not alias entity coordinates", func(t *testing.T) {
		coords := &models.Coordinates{X: 5}
		out := Map([]models.ExtractedEntity{{Type: "phone", Source: models.EntitySource{Coordinates: coords}}}, Template())

		coords.X = 50

		assert.Equal(t, float64(5), findItem(t, out, "phone").SourceCoordinates.X)
	})
}
