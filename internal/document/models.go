package document

import (
	"path/filepath"
	"strings"
	"time"
)

// Document is an uploaded file plus its lazily-populated text cache.
//
// ExtractedText is nil until the first extraction. An empty string means
// extraction ran and produced nothing; it is not retried.
type Document struct {
	ID            string
	Filename      string
	OriginalName  string
	Path          string
	UploadDate    time.Time
	FileType      string
	ExtractedText *string
}

// HasText reports whether extraction already ran for this document.
func (d *Document) HasText() bool {
	return d.ExtractedText != nil
}

// SetText caches the extraction result.
func (d *Document) SetText(text string) {
	d.ExtractedText = &text
}

// Text returns the cached text, or "" when extraction has not run.
func (d *Document) Text() string {
	if d.ExtractedText == nil {
		return ""
	}
	return *d.ExtractedText
}

// Summary is the listing view of a document. It never carries text.
type Summary struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	UploadDate   time.Time `json:"upload_date"`
	FileType     string    `json:"file_type"`
}

func (d *Document) Summary() Summary {
	return Summary{
		ID:           d.ID,
		Filename:     d.Filename,
		OriginalName: d.OriginalName,
		UploadDate:   d.UploadDate,
		FileType:     d.FileType,
	}
}

const FileTypeUnknown = "unknown"

var mimeFileTypes = map[string]string{
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	"text/plain": "txt",
}

// ClassifyFileType maps a MIME hint and filename to a short type tag. A known
// MIME type wins; otherwise the lowercase extension is used as-is, and a
// filename without extension is "unknown".
func ClassifyFileType(mimeHint, filename string) string {
	if mime, _, _ := strings.Cut(mimeHint, ";"); mime != "" {
		if t, ok := mimeFileTypes[strings.ToLower(strings.TrimSpace(mime))]; ok {
			return t
		}
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return FileTypeUnknown
	}
	return ext
}

// ResolveFileType prefers the server classification and falls back to the
// client hint only when the server could not classify the file.
func ResolveFileType(serverType, clientHint string) string {
	if serverType != FileTypeUnknown {
		return serverType
	}
	if hint := strings.TrimSpace(clientHint); hint != "" {
		return hint
	}
	return FileTypeUnknown
}
