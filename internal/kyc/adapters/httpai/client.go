// Package httpai talks to a hosted AI provider over JSON/HTTP for entity
// recognition and checklist verification.
package httpai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kycagent/internal/checklist"
	"kycagent/internal/kyc/models"
	"kycagent/pkg/platform/sentinel"
)

// maxResponseBytes caps how much of a provider response is read.
const maxResponseBytes = 4 << 20

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
	schemas    schemas
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type recognizeRequest struct {
	Text       string `json:"text"`
	DocumentID string `json:"documentId"`
}

type verifyRequest struct {
	Checklist []checklist.Item `json:"checklist"`
}

// RecognizeEntities posts document text to /entities/recognize.
func (c *Client) RecognizeEntities(ctx context.Context, text, documentID string) ([]models.ExtractedEntity, error) {
	start := time.Now()
	c.log.InfoContext(ctx, "ai.recognize.start",
		"document_id", documentID,
		"text_len", len(text),
	)

	data, err := c.call(ctx, "/entities/recognize", recognizeRequest{Text: text, DocumentID: documentID})
	if err != nil {
		c.log.ErrorContext(ctx, "ai.recognize.failed",
			"document_id", documentID,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}
	if err := validate(c.schemas.entities, data); err != nil {
		return nil, fmt.Errorf("%w: recognize: %w", sentinel.ErrBadData, err)
	}

	var entities []models.ExtractedEntity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("%w: decode entities: %w", sentinel.ErrBadData, err)
	}

	c.log.InfoContext(ctx, "ai.recognize.ok",
		"document_id", documentID,
		"entities", len(entities),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return entities, nil
}

// VerifyInformation posts the checklist to /verify.
func (c *Client) VerifyInformation(ctx context.Context, items []checklist.Item) (*models.VerificationResult, error) {
	start := time.Now()
	data, err := c.call(ctx, "/verify", verifyRequest{Checklist: items})
	if err != nil {
		c.log.ErrorContext(ctx, "ai.verify.failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}
	if err := validate(c.schemas.verification, data); err != nil {
		return nil, fmt.Errorf("%w: verify: %w", sentinel.ErrBadData, err)
	}

	var result models.VerificationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: decode verification: %w", sentinel.ErrBadData, err)
	}
	return &result, nil
}

// call posts body to path and returns the envelope's data payload.
func (c *Client) call(ctx context.Context, path string, body any) (json.RawMessage, error) {
	raw, err := c.post(ctx, strings.TrimRight(c.cfg.BaseURL, "/")+path, body)
	if err != nil {
		return nil, err
	}
	if err := validate(c.schemas.envelope, raw); err != nil {
		return nil, fmt.Errorf("%w: envelope: %w", sentinel.ErrBadData, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %w", sentinel.ErrBadData, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "provider reported failure"
		}
		return nil, errors.New("ai provider: " + msg)
	}
	return env.Data, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: ai provider http error: %w", sentinel.ErrUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("ai provider response body close error", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: ai provider status %d: %s", sentinel.ErrUnavailable, resp.StatusCode, string(data))
	}
	return data, nil
}
