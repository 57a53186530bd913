package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"kycagent/internal/audit"
	"kycagent/internal/document"
	"kycagent/internal/kyc/export"
	"kycagent/internal/kyc/models"
	"kycagent/internal/kyc/service"
	"kycagent/internal/platform/metrics"
	"kycagent/internal/platform/middleware"
	dErrors "kycagent/pkg/domain-errors"
	"kycagent/pkg/platform/httputil"
	"kycagent/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

// Service defines the KYC operations exposed over HTTP.
type Service interface {
	Upload(ctx context.Context, in service.UploadInput) (*service.UploadResult, error)
	ListDocuments(ctx context.Context) []document.Summary
	OpenDocument(ctx context.Context, id string) (*document.Document, *os.File, error)
	DeleteDocument(ctx context.Context, id string) error
	ChecklistState(ctx context.Context) *service.ChecklistState
	ResetChecklist(ctx context.Context) *service.ChecklistState
	ExportChecklist(ctx context.Context) ([]byte, error)
	Search(ctx context.Context, entityType, value string) (*models.SearchResult, error)
	Notify(ctx context.Context, email, message string) error
	AuditTrail(ctx context.Context, documentID string, limit int) ([]audit.Event, error)
}

const (
	uploadField       = "document"
	fileTypeField     = "fileType"
	multipartMemLimit = 8 << 20
	defaultAuditLimit = 100
)

// Handler wires the KYC endpoints to the service.
type Handler struct {
	service        Service
	logger         *slog.Logger
	metrics        *metrics.Metrics
	adminToken     string
	maxUploadBytes int64
}

type Option func(*Handler)

// WithAdminToken guards the reset, delete and audit routes with X-Admin-Token.
func WithAdminToken(token string) Option {
	return func(h *Handler) {
		h.adminToken = token
	}
}

// WithMaxUploadBytes caps the upload request body.
func WithMaxUploadBytes(n int64) Option {
	return func(h *Handler) {
		h.maxUploadBytes = n
	}
}

// New constructs a KYC handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics, opts ...Option) *Handler {
	h := &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the KYC endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(kycRouter chi.Router) {
		kycRouter.Use(middleware.Recovery(h.logger))
		kycRouter.Use(middleware.RequestID)
		kycRouter.Use(middleware.RequestTime)
		kycRouter.Use(middleware.Logger(h.logger))
		kycRouter.Use(middleware.LatencyMiddleware(h.metrics))

		kycRouter.Post("/api/upload", h.handleUpload)
		kycRouter.Get("/api/documents", h.handleListDocuments)
		kycRouter.Get("/api/documents/{id}", h.handleGetDocument)
		kycRouter.Get("/api/checklist", h.handleGetChecklist)
		kycRouter.Get("/api/checklist/export", h.handleExportChecklist)
		kycRouter.Post("/api/verify", h.handleVerify)
		kycRouter.Post("/api/notify", h.handleNotify)

		kycRouter.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdminToken(h.adminToken, h.logger))
			admin.Delete("/api/documents/{id}", h.handleDeleteDocument)
			admin.Post("/api/reset", h.handleReset)
			admin.Get("/api/audit", h.handleAudit)
		})
	})
}

// handleUpload stores the multipart "document" file and runs it through the pipeline.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.WarnContext(ctx, "upload too large",
				"request_id", requestID,
				"limit", tooLarge.Limit,
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "File too large"))
			return
		}
		h.logger.WarnContext(ctx, "upload without multipart body",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "No file uploaded"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "No file uploaded"))
		return
	}
	defer file.Close()

	result, err := h.service.Upload(ctx, service.UploadInput{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		FileTypeHint: r.FormValue(fileTypeField),
		Content:      file,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "document upload failed",
			"request_id", requestID,
			"filename", header.Filename,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toUploadResponse(result))
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ListDocuments(r.Context()))
}

// handleGetDocument streams the stored file back to the client.
func (h *Handler) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	doc, file, err := h.service.OpenDocument(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "document lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"document_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": doc.OriginalName}))
	http.ServeContent(w, r, doc.OriginalName, doc.UploadDate, file)
}

func (h *Handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteDocument(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "document delete failed",
			"request_id", requestcontext.RequestID(ctx),
			"document_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetChecklist(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ChecklistState(r.Context()))
}

// handleExportChecklist returns the checklist as an XLSX workbook.
func (h *Handler) handleExportChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.service.ExportChecklist(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="kyc-checklist.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	state := h.service.ResetChecklist(r.Context())
	httputil.WriteJSON(w, http.StatusOK, ResetResponse{
		Message:        "Checklist reset successfully",
		ChecklistState: state,
	})
}

// handleVerify runs a web search for one entity value.
func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Search(ctx, req.EntityType, req.Value)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// handleNotify queues a notification and waits until it has been handled.
func (h *Handler) handleNotify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[NotifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Notify(ctx, req.Email, req.Message); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, NotifyResponse{
		Success: true,
		Message: "Notification sent successfully",
	})
}

// handleAudit returns the audit trail for ?document_id=, or the newest
// ?limit= events across all documents.
func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	documentID := r.URL.Query().Get("document_id")

	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	events, err := h.service.AuditTrail(ctx, documentID, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit trail lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"document_id", documentID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AuditResponse{Events: events})
}
