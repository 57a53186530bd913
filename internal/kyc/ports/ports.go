// Package ports declares the collaborators the KYC pipeline depends on. Each
// has a deterministic fixture adapter and a network adapter.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"

	"kycagent/internal/audit"
	"kycagent/internal/checklist"
	"kycagent/internal/kyc/models"
)

// TextExtractor turns a stored file into text. It never fails; unreadable
// files yield "".
type TextExtractor interface {
	Extract(ctx context.Context, path string) string
}

// EntityRecognizer finds checklist-typed entities in document text.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, text, documentID string) ([]models.ExtractedEntity, error)
}

// Verifier judges whether a checklist satisfies every required item.
type Verifier interface {
	VerifyInformation(ctx context.Context, items []checklist.Item) (*models.VerificationResult, error)
}

// Searcher looks an entity value up on the web.
type Searcher interface {
	SearchEntity(ctx context.Context, entityType, value string) (*models.SearchResult, error)
}

// AuditPort records service events and reads the trail back. Matches
// audit.Publisher.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
	ListByDocument(ctx context.Context, documentID string) ([]audit.Event, error)
}
