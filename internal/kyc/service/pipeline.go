package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"kycagent/internal/audit"
	"kycagent/internal/checklist"
	"kycagent/internal/document"
	dErrors "kycagent/pkg/domain-errors"
	"kycagent/pkg/requestcontext"
)

const (
	phaseExtract   = "extract"
	phaseRecognize = "recognize"
	phaseCommit    = "commit"
	phaseVerify    = "verify"
)

// phaseError remembers which phase of a run failed.
type phaseError struct {
	phase string
	err   error
}

func (e *phaseError) Error() string { return e.phase + ": " + e.err.Error() }
func (e *phaseError) Unwrap() error { return e.err }

// Process runs one document through extraction, recognition, checklist
// commit and verification, then returns the committed checklist state.
//
// Any failure is reported as a single internal error. Nothing is rolled
// back: a failure in recognition leaves the checklist untouched, while a
// verification failure happens after the commit.
func (s *Service) Process(ctx context.Context, doc *document.Document) (*ChecklistState, error) {
	ctx, span := s.tracer.Start(ctx, "kyc.pipeline.process",
		trace.WithAttributes(
			attribute.String("document.id", doc.ID),
			attribute.String("document.file_type", doc.FileType),
		),
	)
	defer span.End()

	start := time.Now()
	err := s.run(ctx, doc)
	s.metrics.ObservePipeline(time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "processing failed")
		s.metrics.IncrementRun("failed")
		s.logger.ErrorContext(ctx, "document processing failed",
			"document_id", doc.ID,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		reason := "processing failed"
		var pe *phaseError
		if errors.As(err, &pe) {
			reason = pe.phase + " failed"
		}
		s.logAudit(ctx, audit.ActionProcessingFailed, doc.ID, "reason", reason)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to process document")
	}

	s.metrics.IncrementRun("processed")
	s.logAudit(ctx, audit.ActionDocumentProcessed, doc.ID)
	return s.state(), nil
}

func (s *Service) run(ctx context.Context, doc *document.Document) error {
	s.ensureExtracted(ctx, doc)

	phaseStart := time.Now()
	entities, err := s.recognizer.RecognizeEntities(ctx, doc.Text(), doc.ID)
	s.metrics.ObservePhase(phaseRecognize, time.Since(phaseStart))
	if err != nil {
		return &phaseError{phase: phaseRecognize, err: fmt.Errorf("recognize entities: %w", err)}
	}
	s.metrics.AddEntities(len(entities))

	phaseStart = time.Now()
	committed := checklist.Map(entities, s.checklists.Checklist())
	s.checklists.Update(committed)
	s.metrics.ObservePhase(phaseCommit, time.Since(phaseStart))

	phaseStart = time.Now()
	result, err := s.verifier.VerifyInformation(ctx, committed)
	s.metrics.ObservePhase(phaseVerify, time.Since(phaseStart))
	if err != nil {
		return &phaseError{phase: phaseVerify, err: fmt.Errorf("verify information: %w", err)}
	}
	if result == nil {
		return &phaseError{phase: phaseVerify, err: errors.New("verify information: empty result")}
	}

	s.metrics.IncrementVerification(result.Verified)
	s.logger.InfoContext(ctx, "checklist verified",
		"document_id", doc.ID,
		"entities", len(entities),
		"verified", result.Verified,
		"issues", len(result.Issues),
	)
	return nil
}

// ensureExtracted fills the document's text cache on first use only.
func (s *Service) ensureExtracted(ctx context.Context, doc *document.Document) {
	if doc.HasText() {
		return
	}
	phaseStart := time.Now()
	text := s.extractor.Extract(ctx, doc.Path)
	doc.SetText(text)
	s.metrics.ObservePhase(phaseExtract, time.Since(phaseStart))
	if text == "" {
		s.logger.WarnContext(ctx, "document produced no text",
			"document_id", doc.ID,
			"file_type", doc.FileType,
		)
	}
}
