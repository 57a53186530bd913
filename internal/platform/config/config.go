package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ProviderFixture = "fixture"
	ProviderHTTP    = "http"
	ProviderWeb     = "web"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	UploadDir      string
	MaxUploadBytes int64
	AdminToken     string
	LogLevel       string
	LogFormat      string
	NotifyQueue    int

	AI     AI
	Search Search
	Redis  Redis
}

// AI configures the entity recognition and verification backend.
type AI struct {
	Provider string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

// Search configures web-search verification.
type Search struct {
	Provider string
	URL      string
	CacheTTL time.Duration
}

// Redis is optional; an empty URL keeps the search cache in memory.
type Redis struct {
	URL string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:       getEnv("KYC_ADDR", ":5000"),
		UploadDir:  getEnv("KYC_UPLOAD_DIR", "./uploads"),
		AdminToken: os.Getenv("KYC_ADMIN_TOKEN"),
		LogLevel:   getEnv("KYC_LOG_LEVEL", "info"),
		LogFormat:  getEnv("KYC_LOG_FORMAT", "text"),
		AI: AI{
			Provider: getEnv("KYC_AI_PROVIDER", ProviderFixture),
			BaseURL:  os.Getenv("KYC_AI_BASE_URL"),
			APIKey:   getEnv("KYC_AI_API_KEY", getEnv("MASTRA_AI_API_KEY", "demo-key")),
		},
		Search: Search{
			Provider: getEnv("KYC_SEARCH_PROVIDER", ProviderFixture),
			URL:      os.Getenv("KYC_SEARCH_URL"),
		},
		Redis: Redis{URL: os.Getenv("REDIS_URL")},
	}

	var err error
	if cfg.MaxUploadBytes, err = getInt64("KYC_MAX_UPLOAD_BYTES", 32<<20); err != nil {
		return Server{}, err
	}
	notifyQueue, err := getInt64("KYC_NOTIFY_QUEUE", 64)
	if err != nil {
		return Server{}, err
	}
	cfg.NotifyQueue = int(notifyQueue)
	if cfg.AI.Timeout, err = getDuration("KYC_AI_TIMEOUT", 30*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.Search.CacheTTL, err = getDuration("KYC_SEARCH_CACHE_TTL", 10*time.Minute); err != nil {
		return Server{}, err
	}

	switch cfg.AI.Provider {
	case ProviderFixture, ProviderHTTP:
	default:
		return Server{}, fmt.Errorf("KYC_AI_PROVIDER: unknown provider %q", cfg.AI.Provider)
	}
	switch cfg.Search.Provider {
	case ProviderFixture, ProviderWeb:
	default:
		return Server{}, fmt.Errorf("KYC_SEARCH_PROVIDER: unknown provider %q", cfg.Search.Provider)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
