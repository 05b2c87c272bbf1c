package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/internal/database"
)

// APIError is a single error object in an error response.
type APIError struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	ID     string `json:"id,omitempty"`
}

// ErrorResponse wraps the errors of a failed request.
type ErrorResponse struct {
	Errors []APIError `json:"errors"`
}

// WriteError writes a JSON error response, mapping domain errors to status
// codes: not-found to 404, validation to 400, conflict to 409, everything
// else to 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	title := "Internal Server Error"
	detail := err.Error()

	switch {
	case errors.Is(err, compliance.ErrNotFound), errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
		title = "Not Found"
	case errors.Is(err, compliance.ErrValidation):
		status = http.StatusBadRequest
		title = "Validation Error"
	case errors.Is(err, compliance.ErrConflict), errors.Is(err, database.ErrDuplicateKey):
		status = http.StatusConflict
		title = "Conflict"
	}

	correlationID := GetCorrelationID(r.Context())

	if logger != nil {
		logger.Error("request error",
			"correlation_id", correlationID,
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	resp := ErrorResponse{
		Errors: []APIError{
			{
				Status: http.StatusText(status),
				Title:  title,
				Detail: detail,
				ID:     correlationID,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
