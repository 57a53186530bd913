package models

// VerificationResult summarises whether every required checklist item is
// satisfied. Issues follow checklist order, one per missing required item.
type VerificationResult struct {
	Verified bool     `json:"verified"`
	Issues   []string `json:"issues"`
}

// SearchHit is one web-verification result.
type SearchHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchResult is the payload returned by a web-verification lookup.
type SearchResult struct {
	Success bool        `json:"success"`
	Results []SearchHit `json:"results"`
}
