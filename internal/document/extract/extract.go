// Package extract turns stored upload files into plain text. Extraction is
// best effort: every failure is logged and degrades to an empty string.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Extractor dispatches on the file extension of the stored path.
type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract returns the text content of the file at path, or "" when the file
// cannot be read or parsed.
func (e *Extractor) Extract(ctx context.Context, path string) string {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".doc", ".docx":
		text, err = extractWord(path)
	default:
		text, err = extractPlain(path)
	}
	if err != nil {
		e.logger.WarnContext(ctx, "text extraction failed",
			"path", path,
			"extension", ext,
			"error", err,
		)
		return ""
	}
	return text
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
