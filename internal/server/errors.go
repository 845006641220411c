// Package server provides the HTTP REST API for the career advisor.
package server

import (
	"errors"
	"net/http"

	"github.com/rithwika/career-advisor/internal/app"
	"github.com/rithwika/career-advisor/internal/chat"
	"github.com/rithwika/career-advisor/internal/gateway"
	"github.com/rithwika/career-advisor/internal/ingestion"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, app.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrEmptyName), errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrAnalysisInFlight), errors.Is(err, chat.ErrTurnInFlight):
		return http.StatusConflict
	case errors.Is(err, app.ErrAnalysisAbandoned):
		return http.StatusConflict
	case errors.Is(err, app.ErrNoAnalysis), errors.Is(err, chat.ErrNotReady):
		return http.StatusConflict
	case errors.Is(err, app.ErrNoSuchJob):
		return http.StatusNotFound
	}

	var tooLarge *ingestion.FileTooLargeError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	var unsupported *ingestion.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return http.StatusUnsupportedMediaType
	}
	var unreadable *ingestion.FileUnreadableError
	if errors.As(err, &unreadable) {
		return http.StatusBadRequest
	}

	var precondition *gateway.PreconditionError
	if errors.As(err, &precondition) {
		return http.StatusConflict
	}
	var analysisErr *gateway.AnalysisError
	if errors.As(err, &analysisErr) {
		return http.StatusBadGateway
	}
	var insightsErr *gateway.InsightsError
	if errors.As(err, &insightsErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
