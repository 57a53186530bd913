package httpai

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api.mastra-ai.io/v1"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient builds a provider client. Zero config fields fall back to the
// package defaults.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
		schemas:    mustCompileSchemas(),
	}
}
