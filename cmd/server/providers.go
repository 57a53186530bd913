package main

import (
	"log/slog"

	"kycagent/internal/kyc/adapters/fixture"
	"kycagent/internal/kyc/adapters/httpai"
	"kycagent/internal/kyc/adapters/websearch"
	"kycagent/internal/kyc/ports"
	"kycagent/internal/platform/config"
	"kycagent/internal/platform/redis"
)

// buildAI selects the recognition and verification backend.
func buildAI(cfg config.AI, log *slog.Logger) (ports.EntityRecognizer, ports.Verifier) {
	if cfg.Provider == config.ProviderHTTP {
		client := httpai.NewClient(httpai.Config{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		}, log)
		return client, client
	}
	return fixture.NewRecognizer(), fixture.NewVerifier()
}

// buildSearcher selects the web-search backend and wraps it in a cache,
// Redis-backed when a client is configured.
func buildSearcher(cfg config.Search, redisClient *redis.Client, log *slog.Logger) ports.Searcher {
	var next ports.Searcher = fixture.NewSearcher()
	if cfg.Provider == config.ProviderWeb {
		next = websearch.New(cfg.URL, log)
	}

	var cache websearch.Cache = websearch.NewMemoryCache()
	if redisClient != nil {
		cache = websearch.NewRedisCache(redisClient.Client)
	}
	return websearch.NewCachingSearcher(next, cache, cfg.CacheTTL, log)
}
