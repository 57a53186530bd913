package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"kycagent/internal/kyc/adapters/fixture"
	"kycagent/internal/kyc/adapters/httpai"
	"kycagent/internal/kyc/adapters/websearch"
	"kycagent/internal/platform/config"
)

func TestBuildAI(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	recognizer, verifier := buildAI(config.AI{Provider: config.ProviderFixture}, log)
	assert.IsType(t, &fixture.Recognizer{}, recognizer)
	assert.IsType(t, &fixture.Verifier{}, verifier)

	recognizer, verifier = buildAI(config.AI{Provider: config.ProviderHTTP, APIKey: "k"}, log)
	assert.IsType(t, &httpai.Client{}, recognizer)
	assert.IsType(t, &httpai.Client{}, verifier)
}

func TestBuildSearcher_AlwaysCached(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := buildSearcher(config.Search{Provider: config.ProviderWeb}, nil, log)
	assert.IsType(t, &websearch.CachingSearcher{}, s)
}
