// Package fixture provides deterministic stand-ins for the AI provider. They
// ignore their input text and never fail, which keeps demos and tests stable.
package fixture

import (
	"context"
	"fmt"

	"kycagent/internal/checklist"
	"kycagent/internal/kyc/models"
)

type cannedEntity struct {
	kind       string
	value      string
	confidence float64
	y          float64
	width      float64
}

// canned values describe one fictional applicant laid out down page one.
var canned = []cannedEntity{
	{"full_name", "John Doe", 0.95, 200, 150},
	{"dob", "01/15/1980", 0.92, 230, 100},
	{"address", "123 Main Street, Anytown, USA", 0.88, 260, 300},
	{"id_number", "ABC123456789", 0.94, 290, 150},
	{"nationality", "United States", 0.91, 320, 150},
	{"phone", "+1 (555) 123-4567", 0.89, 350, 150},
	{"email", "john.doe@example.com", 0.93, 380, 200},
	{"occupation", "Software Engineer", 0.87, 410, 150},
}

// Recognizer returns the same applicant for every document.
type Recognizer struct{}

func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

func (Recognizer) RecognizeEntities(_ context.Context, _ string, documentID string) ([]models.ExtractedEntity, error) {
	out := make([]models.ExtractedEntity, 0, len(canned))
	for _, c := range canned {
		out = append(out, models.ExtractedEntity{
			Type:       c.kind,
			Value:      c.value,
			Confidence: c.confidence,
			Source: models.EntitySource{
				Document: documentID,
				Page:     1,
				Coordinates: &models.Coordinates{
					X:      100,
					Y:      c.y,
					Width:  c.width,
					Height: 30,
				},
			},
		})
	}
	return out, nil
}

// Verifier reports every required item that is still pending.
type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

func (Verifier) VerifyInformation(_ context.Context, items []checklist.Item) (*models.VerificationResult, error) {
	issues := make([]string, 0)
	for _, name := range checklist.PendingNames(items) {
		issues = append(issues, "Missing required information: "+name)
	}
	return &models.VerificationResult{
		Verified: len(issues) == 0,
		Issues:   issues,
	}, nil
}

// Searcher returns a single public-records hit for any value.
type Searcher struct{}

func NewSearcher() *Searcher {
	return &Searcher{}
}

func (Searcher) SearchEntity(_ context.Context, _ string, value string) (*models.SearchResult, error) {
	return &models.SearchResult{
		Success: true,
		Results: []models.SearchHit{{
			Title:   "Verification result for " + value,
			URL:     "https://example.com/verification",
			Snippet: fmt.Sprintf("Information about %s found in public records.", value),
		}},
	}, nil
}
