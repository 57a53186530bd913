package service

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"kycagent/internal/audit"
	"kycagent/internal/checklist"
	"kycagent/internal/document"
	"kycagent/internal/kyc/metrics"
	"kycagent/internal/kyc/ports"
	"kycagent/internal/notify"
	"kycagent/pkg/requestcontext"
)

type ChecklistStore interface {
	Checklist() []checklist.Item
	Reset()
	Update(items []checklist.Item)
	PendingItems() []string
}

type DocumentStore interface {
	Add(doc *document.Document) *document.Document
	FindByID(id string) (*document.Document, error)
	List() []*document.Document
	Delete(id string) bool
}

type FileStore interface {
	Save(name string, r io.Reader) (string, error)
	Open(path string) (*os.File, error)
	Remove(path string) error
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n notify.Notification) (*notify.Task, error)
}

// Service runs uploads through the processing pipeline and exposes the
// checklist and document operations behind the HTTP API.
type Service struct {
	checklists ChecklistStore
	documents  DocumentStore
	files      FileStore

	extractor  ports.TextExtractor
	recognizer ports.EntityRecognizer
	verifier   ports.Verifier
	searcher   ports.Searcher

	notifications  NotificationQueue
	auditPublisher ports.AuditPort
	logger         *slog.Logger
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher ports.AuditPort) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithNotifications(queue NotificationQueue) Option {
	return func(s *Service) {
		s.notifications = queue
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(
	checklists ChecklistStore,
	documents DocumentStore,
	files FileStore,
	extractor ports.TextExtractor,
	recognizer ports.EntityRecognizer,
	verifier ports.Verifier,
	searcher ports.Searcher,
	opts ...Option,
) *Service {
	s := &Service{
		checklists: checklists,
		documents:  documents,
		files:      files,
		extractor:  extractor,
		recognizer: recognizer,
		verifier:   verifier,
		searcher:   searcher,
		logger:     slog.Default(),
		tracer:     otel.Tracer("kycagent/internal/kyc/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) state() *ChecklistState {
	items := s.checklists.Checklist()
	pending := s.checklists.PendingItems()
	s.metrics.SetPending(len(pending))
	return &ChecklistState{Checklist: items, PendingItems: pending}
}

func (s *Service) logAudit(ctx context.Context, action audit.Action, documentID string, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	args := make([]any, 0, len(attributes)+8)
	args = append(args, attributes...)
	args = append(args,
		"event", string(action),
		"log_type", "audit",
	)
	if documentID != "" {
		args = append(args, "document_id", documentID)
	}
	if requestID != "" {
		args = append(args, "request_id", requestID)
	}
	s.logger.InfoContext(ctx, string(action), args...)

	if s.auditPublisher == nil {
		return
	}
	reason, _ := reasonFrom(attributes)
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Timestamp:  requestcontext.Now(ctx),
		Action:     action,
		DocumentID: documentID,
		Reason:     reason,
		RequestID:  requestID,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"event", string(action),
			"error", err,
		)
	}
}

func reasonFrom(attributes []any) (string, bool) {
	for i := 0; i+1 < len(attributes); i += 2 {
		if k, ok := attributes[i].(string); ok && k == "reason" {
			v, ok := attributes[i+1].(string)
			return v, ok
		}
	}
	return "", false
}
