package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText extracts plain text from a document payload. It lets the
// CLI submit a PDF or DOCX resume as text instead of an inline binary
// payload.
func ExtractText(p Payload) (string, error) {
	switch p.MIMEType {
	case MIMEText:
		return string(p.Data), nil
	case MIMEPDF:
		return extractPDFText(p.Data)
	case MIMEDocx:
		return extractDocxText(p.Data)
	default:
		return "", &UnsupportedTypeError{MIMEType: p.MIMEType}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
