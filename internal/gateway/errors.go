package gateway

import "fmt"

// User-facing failure messages. Transport failures, parse failures, and
// schema violations all collapse into the same opaque text; the
// distinct cause is logged, never surfaced.
const (
	analysisFailedMessage = "Failed to generate analysis. The AI model could not process the request."
	insightsFailedMessage = "Failed to generate market insights."
)

// AnalysisError is returned when profile analysis fails for any reason.
type AnalysisError struct {
	Cause error
}

func (e *AnalysisError) Error() string {
	return analysisFailedMessage
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// InsightsError is returned when a market insights request fails.
type InsightsError struct {
	Cause error
}

func (e *InsightsError) Error() string {
	return insightsFailedMessage
}

func (e *InsightsError) Unwrap() error {
	return e.Cause
}

// PreconditionError is returned when an operation is invoked without its
// required context. It fails fast: no network call is attempted.
type PreconditionError struct {
	Op      string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
