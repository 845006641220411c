// Package ingestion turns an uploaded document into a payload the model
// gateway can send. It enforces the size cap and the document-type
// allow-list; rejected files never reach the gateway.
package ingestion

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxDocumentBytes is the inline-payload size cap (4 MiB).
const MaxDocumentBytes = 4 << 20

// Allowed document MIME types
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

var allowedTypes = map[string]bool{
	MIMEPDF:  true,
	MIMEDocx: true,
	MIMEText: true,
}

// Payload carries the raw document bytes and their MIME type. The
// transport layer handles wire encoding.
type Payload struct {
	Data     []byte
	MIMEType string
}

// MIMEForPath maps a filename extension to a document MIME type.
// Returns empty string for unknown extensions.
func MIMEForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return MIMEPDF
	case ".docx":
		return MIMEDocx
	case ".txt":
		return MIMEText
	default:
		return ""
	}
}

// Read reads a document from r, enforcing the type allow-list and the
// size cap.
func Read(r io.Reader, mimeType string) (Payload, error) {
	if !allowedTypes[mimeType] {
		return Payload{}, &UnsupportedTypeError{MIMEType: mimeType}
	}

	// Read one byte past the cap so oversized input is detected without
	// buffering the whole file.
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentBytes+1))
	if err != nil {
		return Payload{}, &FileUnreadableError{Cause: err}
	}
	if len(data) > MaxDocumentBytes {
		return Payload{}, &FileTooLargeError{Size: int64(len(data))}
	}

	return Payload{Data: data, MIMEType: mimeType}, nil
}

// ReadFile reads a document from disk, inferring the MIME type from the
// file extension.
func ReadFile(path string) (Payload, error) {
	mimeType := MIMEForPath(path)
	if mimeType == "" {
		return Payload{}, &UnsupportedTypeError{MIMEType: filepath.Ext(path)}
	}

	f, err := os.Open(path)
	if err != nil {
		return Payload{}, &FileUnreadableError{Cause: err}
	}
	defer f.Close()

	return Read(f, mimeType)
}
