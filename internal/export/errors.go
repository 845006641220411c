// Package export renders job roadmap reports as HTML and PDF.
package export

import "fmt"

// TemplateError represents an error parsing or executing the report template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// PDFError represents a failure driving the headless browser to print
type PDFError struct {
	Message string
	Cause   error
}

func (e *PDFError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf error: %s", e.Message)
}

func (e *PDFError) Unwrap() error {
	return e.Cause
}
