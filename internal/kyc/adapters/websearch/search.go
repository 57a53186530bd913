// Package websearch verifies entity values against a public HTML search
// engine and caches the answers.
package websearch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"kycagent/internal/kyc/models"
	"kycagent/pkg/platform/sentinel"
)

const (
	DefaultEndpoint   = "https://html.duckduckgo.com/html/"
	DefaultMaxResults = 5
	maxReadSize       = int64(2 * 1024 * 1024)
	userAgent         = "kycagent-verify/1.0"
)

// Searcher scrapes result blocks from an HTML search page.
type Searcher struct {
	endpoint   string
	maxResults int
	httpClient *http.Client
	log        *slog.Logger
}

type Option func(*Searcher)

func WithMaxResults(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *Searcher) {
		s.httpClient = c
	}
}

func New(endpoint string, logger *slog.Logger, opts ...Option) *Searcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Searcher{
		endpoint:   endpoint,
		maxResults: DefaultMaxResults,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchEntity runs a quoted query for value, qualified by the entity type.
// A page with no result blocks is a successful, empty answer.
func (s *Searcher) SearchEntity(ctx context.Context, entityType, value string) (*models.SearchResult, error) {
	start := time.Now()
	query := buildQuery(entityType, value)

	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse search endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: search request: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: search status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}

	hits, err := parseResults(io.LimitReader(resp.Body, maxReadSize), s.maxResults)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "web search completed",
		"entity_type", entityType,
		"results", len(hits),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &models.SearchResult{Success: true, Results: hits}, nil
}

func buildQuery(entityType, value string) string {
	query := `"` + strings.TrimSpace(value) + `"`
	if label := strings.ReplaceAll(strings.TrimSpace(entityType), "_", " "); label != "" {
		query += " " + label
	}
	return query
}

// parseResults reads result blocks in page order. Each block needs a title
// link; the snippet is optional.
func parseResults(r io.Reader, limit int) ([]models.SearchHit, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parse search page: %w", sentinel.ErrBadData, err)
	}

	hits := make([]models.SearchHit, 0, limit)
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a").First()
		title := collapse(link.Text())
		href, ok := link.Attr("href")
		if !ok || title == "" {
			return true
		}
		hits = append(hits, models.SearchHit{
			Title:   title,
			URL:     resolveRedirect(href),
			Snippet: collapse(sel.Find(".result__snippet").First().Text()),
		})
		return len(hits) < limit
	})
	return hits, nil
}

// resolveRedirect unwraps tracking links of the form /l/?uddg=<target>.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
