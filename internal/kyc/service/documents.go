package service

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"

	"kycagent/internal/audit"
	"kycagent/internal/document"
	dErrors "kycagent/pkg/domain-errors"
	"kycagent/pkg/platform/sentinel"
	"kycagent/pkg/requestcontext"
)

// Upload stores the file, registers the document and processes it. The
// document stays registered even when processing fails.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if in.Content == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "No file uploaded")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to allocate document id")
	}
	docID := id.String()
	name := document.StoredName(docID, in.OriginalName)

	path, err := s.files.Save(name, in.Content)
	if errors.Is(err, document.ErrTooLarge) {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "File too large")
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store upload",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store document")
	}

	serverType := document.ClassifyFileType(in.ContentType, in.OriginalName)
	doc := s.documents.Add(&document.Document{
		ID:           docID,
		Filename:     name,
		OriginalName: in.OriginalName,
		Path:         path,
		UploadDate:   requestcontext.Now(ctx),
		FileType:     document.ResolveFileType(serverType, in.FileTypeHint),
	})
	s.metrics.IncrementUploaded()
	s.logAudit(ctx, audit.ActionDocumentUploaded, doc.ID, "file_type", doc.FileType)

	// A started run is never cancelled by the client going away.
	state, err := s.Process(context.WithoutCancel(ctx), doc)
	if err != nil {
		return nil, err
	}
	return &UploadResult{Document: doc.Summary(), State: state}, nil
}

// ListDocuments returns document summaries in upload order.
func (s *Service) ListDocuments(_ context.Context) []document.Summary {
	docs := s.documents.List()
	out := make([]document.Summary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.Summary())
	}
	return out
}

// OpenDocument returns the document and its stored file. Callers close the file.
func (s *Service) OpenDocument(ctx context.Context, id string) (*document.Document, *os.File, error) {
	doc, err := s.findDocument(id)
	if err != nil {
		return nil, nil, err
	}
	f, err := s.files.Open(doc.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, dErrors.New(dErrors.CodeNotFound, "document file not found")
		}
		s.logger.ErrorContext(ctx, "failed to open stored document",
			"document_id", id,
			"error", err,
		)
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to open document")
	}
	return doc, f, nil
}

// DeleteDocument forgets the document and removes its file. File removal is
// best effort; the checklist keeps any values the document contributed.
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	doc, err := s.findDocument(id)
	if err != nil {
		return err
	}
	if !s.documents.Delete(id) {
		return dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	if err := s.files.Remove(doc.Path); err != nil {
		s.logger.WarnContext(ctx, "failed to remove stored document",
			"document_id", id,
			"error", err,
		)
	}
	s.logAudit(ctx, audit.ActionDocumentDeleted, id)
	return nil
}

func (s *Service) findDocument(id string) (*document.Document, error) {
	doc, err := s.documents.FindByID(id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load document")
	}
	return doc, nil
}
