package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeDocx(t *testing.T, name, body string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return writeFile(t, name, buf.Bytes())
}

// buildPDF assembles a one-page PDF whose page content is stream, with a
// correct cross-reference table.
func buildPDF(t *testing.T, stream string) []byte {
	t.Helper()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func newTestExtractor() *Extractor {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	e := newTestExtractor()

	t.Run("txt returns raw contents", func(t *testing.T) {
		path := writeFile(t, "d1-notes.txt", []byte("Name: Jane Roe\nDOB: 02/02/1992"))
		assert.Equal(t, "Name: Jane Roe\nDOB: 02/02/1992", e.Extract(ctx, path))
	})

	t.Run("unknown extension falls back to raw contents", func(t *testing.T) {
		path := writeFile(t, "d1-scan.png", []byte("not really an image"))
		assert.Equal(t, "not really an image", e.Extract(ctx, path))
	})

	t.Run("missing file degrades to empty", func(t *testing.T) {
		assert.Equal(t, "", e.Extract(ctx, filepath.Join(t.TempDir(), "gone.txt")))
	})

	t.Run("broken pdf degrades to empty", func(t *testing.T) {
		path := writeFile(t, "d1-broken.pdf", []byte("%PDF-1.4 garbage"))
		assert.Equal(t, "", e.Extract(ctx, path))
	})

	t.Run("pdf with one operator per line", func(t *testing.T) {
		path := writeFile(t, "d1-multi.pdf", buildPDF(t, "BT\n/F1 24 Tf\n100 700 Td\n(Name: Jane Roe) Tj\nET"))
		assert.Equal(t, "Name: Jane Roe", e.Extract(ctx, path))
	})

	t.Run("pdf with the whole text block on one line", func(t *testing.T) {
		path := writeFile(t, "d1-single.pdf", buildPDF(t, "BT /F1 24 Tf 100 700 Td (Name: Jane Roe) Tj ET"))
		assert.Equal(t, "Name: Jane Roe", e.Extract(ctx, path))
	})

	t.Run("docx paragraphs become lines", func(t *testing.T) {
		body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Full name: </w:t></w:r><w:r><w:t>Jane Roe</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Normal"/></w:pPr><w:r><w:t>Nationality: Canada</w:t></w:r></w:p>
<w:p></w:p>
</w:body>
</w:document>`
		path := writeDocx(t, "d1-form.docx", body)
		assert.Equal(t, "Full name: Jane Roe\nNationality: Canada", e.Extract(ctx, path))
	})

	t.Run("legacy doc that is not a zip degrades to empty", func(t *testing.T) {
		path := writeFile(t, "d1-old.doc", []byte{0xD0, 0xCF, 0x11, 0xE0})
		assert.Equal(t, "", e.Extract(ctx, path))
	})

	t.Run("docx without body degrades to empty", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, err := zw.Create("other.xml")
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		path := writeFile(t, "d1-empty.docx", buf.Bytes())
		assert.Equal(t, "", e.Extract(ctx, path))
	})
}

func TestTextFromContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n72 712 Td\n(Jane) Tj\n10 0 Td\n[(Ro) -20 (e)] TJ\nT*\n(Canada \\(CA\\)) Tj\nET\n")
	assert.Equal(t, "Jane Roe Canada (CA)", textFromContentStream(stream))
}

func TestTextFromContentStream_Layouts(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{"single line block", "BT /F1 24 Tf 100 700 Td (Name: Jane Roe) Tj ET", "Name: Jane Roe"},
		{"two blocks on one line", "BT (Jane) Tj ET BT (Roe) Tj ET", "Jane Roe"},
		{"quote operator starts a new line", "BT (Line one) Tj (Line two) ' ET", "Line one Line two"},
		{"hex string operand", "BT <4A616E65> Tj ET", "Jane"},
		{"nested parentheses", "BT (ID (passport)) Tj ET", "ID (passport)"},
		{"comments are skipped", "% (ignored) Tj\nBT (kept) Tj ET", "kept"},
		{"graphics only", "q 1 0 0 1 0 0 cm /Im1 Do Q", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textFromContentStream([]byte(tt.stream)))
		})
	}
}

func TestDecodePDFString(t *testing.T) {
	assert.Equal(t, "a b", decodePDFString([]byte(`a\040b`)))
	assert.Equal(t, "(x)", decodePDFString([]byte(`\(x\)`)))
	assert.Equal(t, "tab\there", decodePDFString([]byte(`tab\there`)))
}
