package handler

import (
	"strings"

	dErrors "kycagent/pkg/domain-errors"
	"kycagent/pkg/email"
)

const maxNotifyMessage = 4096

// VerifyRequest is the body of POST /api/verify.
type VerifyRequest struct {
	EntityType string `json:"entityType"`
	Value      string `json:"value"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *VerifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.EntityType = strings.TrimSpace(r.EntityType)
	r.Value = strings.TrimSpace(r.Value)
	if r.EntityType == "" || r.Value == "" {
		return dErrors.New(dErrors.CodeValidation, "Entity type and value are required")
	}
	return nil
}

// NotifyRequest is the body of POST /api/notify.
type NotifyRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *NotifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Email = email.Normalize(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	if r.Email == "" || r.Message == "" {
		return dErrors.New(dErrors.CodeValidation, "Email and message are required")
	}
	if len(r.Message) > maxNotifyMessage {
		return dErrors.New(dErrors.CodeValidation, "message is too long")
	}
	if !email.IsValid(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "email is not a valid address")
	}
	return nil
}
