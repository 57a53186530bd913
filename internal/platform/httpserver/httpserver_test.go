package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	h := http.NotFoundHandler()

	srv := New(":5000", h, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, ":5000", srv.Addr)
	assert.NotZero(t, srv.ReadHeaderTimeout)
	assert.Greater(t, srv.WriteTimeout, srv.ReadTimeout)
	assert.NotNil(t, srv.ErrorLog)

	assert.Nil(t, New(":5000", h, nil).ErrorLog)
}
