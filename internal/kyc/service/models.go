package service

import (
	"io"

	"kycagent/internal/checklist"
	"kycagent/internal/document"
)

// ChecklistState is the checklist together with the names of the required
// items still pending.
type ChecklistState struct {
	Checklist    []checklist.Item `json:"checklist"`
	PendingItems []string         `json:"pending_items"`
}

// UploadInput describes one uploaded file. ContentType is the MIME type the
// transport saw; FileTypeHint is the optional client-provided type.
type UploadInput struct {
	OriginalName string
	ContentType  string
	FileTypeHint string
	Content      io.Reader
}

type UploadResult struct {
	Document document.Summary
	State    *ChecklistState
}
