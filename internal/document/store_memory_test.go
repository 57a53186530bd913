package document

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycagent/pkg/platform/sentinel"
)

func TestInMemoryStore(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("FindByID returns the stored instance", func(t *testing.T) {
		store := NewInMemoryStore()
		doc := store.Add(&Document{ID: "d1", OriginalName: "a.pdf", UploadDate: now})

		got, err := store.FindByID("d1")
		require.NoError(t, err)
		assert.Same(t, doc, got)

		got.SetText("cached")
		again, err := store.FindByID("d1")
		require.NoError(t, err)
		assert.Equal(t, "cached", again.Text())
	})

	t.Run("FindByID miss returns sentinel not found", func(t *testing.T) {
		store := NewInMemoryStore()
		_, err := store.FindByID("missing")
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})

	t.Run("List keeps insertion order and is a snapshot", func(t *testing.T) {
		store := NewInMemoryStore()
		store.Add(&Document{ID: "d1"})
		store.Add(&Document{ID: "d2"})

		list := store.List()
		require.Len(t, list, 2)
		assert.Equal(t, "d1", list[0].ID)
		assert.Equal(t, "d2", list[1].ID)

		store.Add(&Document{ID: "d3"})
		assert.Len(t, list, 2)
	})

	t.Run("Add does not enforce uniqueness", func(t *testing.T) {
		store := NewInMemoryStore()
		store.Add(&Document{ID: "dup", Filename: "first"})
		store.Add(&Document{ID: "dup", Filename: "second"})

		assert.Len(t, store.List(), 2)
		got, err := store.FindByID("dup")
		require.NoError(t, err)
		assert.Equal(t, "first", got.Filename)
	})

	t.Run("Delete removes the document", func(t *testing.T) {
		store := NewInMemoryStore()
		store.Add(&Document{ID: "d1"})
		store.Add(&Document{ID: "d2"})

		assert.True(t, store.Delete("d1"))
		assert.False(t, store.Delete("d1"))
		_, err := store.FindByID("d1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.Len(t, store.List(), 1)
	})
}
