package extract

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF concatenates the text shown by each page's content stream,
// one line per page.
func extractPDF(path string) (_ string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdfcpu panic: %v", r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pdf, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("pdfcpu read: %w", err)
	}

	pages := make([]string, 0, pdf.PageCount)
	for pageNr := 1; pageNr <= pdf.PageCount; pageNr++ {
		if text := pageText(pdf, pageNr); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n"), nil
}

func pageText(pdf *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdf, pageNr)
	if err != nil || r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return textFromContentStream(data)
}

// textFromContentStream reads the string operands of the Tj, TJ, ' and "
// text operators. Positioning operators become word or line breaks. The
// stream is tokenized, so any number of operators may share a line.
func textFromContentStream(data []byte) string {
	var (
		sb       strings.Builder
		operands []string
	)
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case isPDFSpace(c), c == '[', c == ']', c == '{', c == '}', c == '>':
			i++
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case c == '(':
			raw, next := readLiteral(data, i)
			operands = append(operands, decodePDFString(raw))
			i = next
		case c == '<':
			if i+1 < len(data) && data[i+1] == '<' {
				i += 2
				continue
			}
			raw, next := readHex(data, i)
			operands = append(operands, raw)
			i = next
		case c == '/':
			i++
			for i < len(data) && !isPDFSpace(data[i]) && !isPDFDelimiter(data[i]) {
				i++
			}
		default:
			j := i
			for j < len(data) && !isPDFSpace(data[j]) && !isPDFDelimiter(data[j]) {
				j++
			}
			if j == i {
				j++
			}
			op := string(data[i:j])
			i = j
			if isNumber(op) {
				continue
			}
			if op == "ID" {
				i = skipInlineImage(data, i)
			}
			applyTextOperator(&sb, op, operands)
			operands = operands[:0]
		}
	}
	return collapseSpace(sb.String())
}

func applyTextOperator(sb *strings.Builder, op string, operands []string) {
	switch op {
	case "Tj", "TJ":
		for _, s := range operands {
			sb.WriteString(s)
		}
	case "'", "\"":
		sb.WriteByte('\n')
		for _, s := range operands {
			sb.WriteString(s)
		}
	case "Td", "TD", "Tm", "ET":
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
	case "T*":
		sb.WriteByte('\n')
	}
}

// readLiteral returns the bytes between the parentheses of the literal
// string starting at data[start], honouring nesting and escapes, and the
// index just past the closing parenthesis.
func readLiteral(data []byte, start int) ([]byte, int) {
	depth := 0
	for i := start; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return data[start+1 : i], i + 1
			}
		}
	}
	return data[start+1:], len(data)
}

// readHex decodes the hex string starting at data[start].
func readHex(data []byte, start int) (string, int) {
	var digits []byte
	i := start + 1
	for ; i < len(data) && data[i] != '>'; i++ {
		if isHexDigit(data[i]) {
			digits = append(digits, data[i])
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for k := range out {
		out[k] = hexValue(digits[2*k])<<4 | hexValue(digits[2*k+1])
	}
	return string(out), i + 1
}

// skipInlineImage jumps over binary inline image data up to its EI operator.
func skipInlineImage(data []byte, i int) int {
	for ; i+2 < len(data); i++ {
		if isPDFSpace(data[i]) && data[i+1] == 'E' && data[i+2] == 'I' &&
			(i+3 == len(data) || isPDFSpace(data[i+3])) {
			return i + 3
		}
	}
	return len(data)
}

func isPDFSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}

func isPDFDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isNumber(tok string) bool {
	for k := 0; k < len(tok); k++ {
		c := tok[k]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
			return false
		}
	}
	return tok != ""
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// decodePDFString resolves the escape sequences of a PDF literal string.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				sb.WriteByte(raw[i])
				continue
			}
			val := int(raw[i] - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}

func collapseSpace(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
