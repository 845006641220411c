// Package schemas provides JSON Schema validation for model responses.
// The schemas are the single gate preventing syntactically valid but
// structurally wrong model output from entering application state.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/rithwika/career-advisor/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Embedded schema filenames
const (
	AnalysisResultSchema = "analysis_result.schema.json"
	MarketInsightsSchema = "market_insights.schema.json"
)

// ValidationError represents a schema validation failure with field paths.
// It is never silently repaired; callers treat it like a transport failure.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("response does not match %s:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON document against one of the embedded schemas.
func Validate(schemaName, jsonContent string) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{
			Schema:  schemaName,
			Message: "embedded schema not found",
			Cause:   err,
		}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Validate errors here when the document is not JSON at all, or
		// the schema itself fails to load. Either way the response is
		// unusable, so surface it as a validation failure.
		return &ValidationError{
			Schema: schemaName,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: schemaName,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

// DecodeAnalysisResult validates a model response against the analysis
// schema and unmarshals it into the typed result.
func DecodeAnalysisResult(jsonContent string) (*types.AnalysisResult, error) {
	if err := Validate(AnalysisResultSchema, jsonContent); err != nil {
		return nil, err
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return nil, &ValidationError{
			Schema: AnalysisResultSchema,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	return &result, nil
}

// DecodeMarketInsights validates a model response against the insights
// schema and unmarshals it into the typed result.
func DecodeMarketInsights(jsonContent string) (*types.MarketInsights, error) {
	if err := Validate(MarketInsightsSchema, jsonContent); err != nil {
		return nil, err
	}

	var insights types.MarketInsights
	if err := json.Unmarshal([]byte(jsonContent), &insights); err != nil {
		return nil, &ValidationError{
			Schema: MarketInsightsSchema,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	return &insights, nil
}
