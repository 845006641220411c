package ingestion

import "fmt"

// FileTooLargeError is returned when a document exceeds the size cap.
type FileTooLargeError struct {
	Size int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file is too large (%d bytes); the limit is %d bytes", e.Size, MaxDocumentBytes)
}

// FileUnreadableError is returned when the document cannot be read.
type FileUnreadableError struct {
	Cause error
}

func (e *FileUnreadableError) Error() string {
	return fmt.Sprintf("failed to read the file: %v", e.Cause)
}

func (e *FileUnreadableError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError is returned for documents outside the allow-list.
type UnsupportedTypeError struct {
	MIMEType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %q; allowed types are PDF, DOCX, and plain text", e.MIMEType)
}
