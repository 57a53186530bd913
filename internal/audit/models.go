package audit

import "time"

// Action names a recorded event.
type Action string

const (
	ActionDocumentUploaded  Action = "document_uploaded"
	ActionDocumentProcessed Action = "document_processed"
	ActionProcessingFailed  Action = "processing_failed"
	ActionDocumentDeleted   Action = "document_deleted"
	ActionChecklistReset    Action = "checklist_reset"
)

// Event is emitted from the service layer to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Action     Action    `json:"action"`
	DocumentID string    `json:"document_id,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	// RequestID is the correlation id of the HTTP request that caused the event.
	RequestID string `json:"request_id,omitempty"`
}
