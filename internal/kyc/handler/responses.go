package handler

import (
	"kycagent/internal/audit"
	"kycagent/internal/checklist"
	"kycagent/internal/document"
	"kycagent/internal/kyc/service"
)

// UploadResponse is returned by POST /api/upload.
type UploadResponse struct {
	Document     document.Summary `json:"document"`
	Checklist    []checklist.Item `json:"checklist"`
	PendingItems []string         `json:"pending_items"`
}

// ResetResponse embeds the fresh checklist state next to the message.
type ResetResponse struct {
	Message string `json:"message"`
	*service.ChecklistState
}

type NotifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuditResponse is returned by GET /api/audit, oldest event first.
type AuditResponse struct {
	Events []audit.Event `json:"events"`
}

func toUploadResponse(result *service.UploadResult) UploadResponse {
	resp := UploadResponse{Document: result.Document}
	if result.State != nil {
		resp.Checklist = result.State.Checklist
		resp.PendingItems = result.State.PendingItems
	}
	return resp
}
