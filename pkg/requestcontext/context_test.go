package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestContext(t *testing.T) {
	t.Run("empty context yields zero request id", func(t *testing.T) {
		assert.Empty(t, RequestID(context.Background()))
	})

	t.Run("injected values round trip", func(t *testing.T) {
		fixed := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
		ctx := WithTime(WithRequestID(context.Background(), "req-42"), fixed)

		assert.Equal(t, "req-42", RequestID(ctx))
		assert.Equal(t, fixed, Now(ctx))
	})

	t.Run("now falls back to wall clock", func(t *testing.T) {
		before := time.Now()
		got := Now(context.Background())
		assert.False(t, got.Before(before))
	})
}
