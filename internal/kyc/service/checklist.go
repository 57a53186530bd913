package service

import (
	"context"
	"strings"

	"kycagent/internal/audit"
	"kycagent/internal/kyc/export"
	"kycagent/internal/kyc/models"
	"kycagent/internal/notify"
	dErrors "kycagent/pkg/domain-errors"
	"kycagent/pkg/requestcontext"
)

// ChecklistState returns the current checklist and pending items.
func (s *Service) ChecklistState(_ context.Context) *ChecklistState {
	return s.state()
}

// ResetChecklist discards all extracted values. Documents are kept.
func (s *Service) ResetChecklist(ctx context.Context) *ChecklistState {
	s.checklists.Reset()
	s.logAudit(ctx, audit.ActionChecklistReset, "")
	return s.state()
}

// ExportChecklist renders the current checklist as an XLSX workbook.
func (s *Service) ExportChecklist(ctx context.Context) ([]byte, error) {
	data, err := export.ChecklistXLSX(s.checklists.Checklist(), requestcontext.Now(ctx))
	if err != nil {
		s.logger.ErrorContext(ctx, "checklist export failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to export checklist")
	}
	return data, nil
}

// Search looks an entity value up through the configured searcher.
func (s *Service) Search(ctx context.Context, entityType, value string) (*models.SearchResult, error) {
	entityType = strings.TrimSpace(entityType)
	value = strings.TrimSpace(value)
	if entityType == "" || value == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "Entity type and value are required")
	}

	result, err := s.searcher.SearchEntity(ctx, entityType, value)
	if err != nil {
		s.logger.ErrorContext(ctx, "entity search failed",
			"entity_type", entityType,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify information")
	}
	return result, nil
}

// Notify queues a notification and waits for the worker to handle it.
func (s *Service) Notify(ctx context.Context, email, message string) error {
	if s.notifications == nil {
		return dErrors.New(dErrors.CodeInternal, "notifications are not configured")
	}
	task, err := s.notifications.Enqueue(ctx, notify.Notification{Email: email, Message: message})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to queue notification")
	}
	if err := task.Wait(ctx); err != nil {
		s.logger.ErrorContext(ctx, "notification failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send notification")
	}
	return nil
}

// AuditTrail returns the recorded events for one document, or the newest
// limit events across all documents when documentID is empty.
func (s *Service) AuditTrail(ctx context.Context, documentID string, limit int) ([]audit.Event, error) {
	if s.auditPublisher == nil {
		return []audit.Event{}, nil
	}

	var (
		events []audit.Event
		err    error
	)
	if documentID != "" {
		events, err = s.auditPublisher.ListByDocument(ctx, documentID)
	} else {
		events, err = s.auditPublisher.ListRecent(ctx, limit)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "audit trail read failed",
			"request_id", requestcontext.RequestID(ctx),
			"document_id", documentID,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read audit trail")
	}
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	if events == nil {
		events = []audit.Event{}
	}
	return events, nil
}
