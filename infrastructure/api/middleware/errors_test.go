package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/internal/database"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{"domain not found", fmt.Errorf("product 7: %w", compliance.ErrNotFound), http.StatusNotFound, "Not Found"},
		{"store not found", fmt.Errorf("%w: requirement", database.ErrNotFound), http.StatusNotFound, "Not Found"},
		{"validation", fmt.Errorf("%w: name is required", compliance.ErrValidation), http.StatusBadRequest, "Validation Error"},
		{"conflict", fmt.Errorf("requirement exists: %w", compliance.ErrConflict), http.StatusConflict, "Conflict"},
		{"duplicate key", fmt.Errorf("create requirement: %w", database.ErrDuplicateKey), http.StatusConflict, "Conflict"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
			w := httptest.NewRecorder()

			WriteError(w, req, tt.err, nil)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if len(resp.Errors) != 1 {
				t.Fatalf("len(errors) = %d, want 1", len(resp.Errors))
			}
			if resp.Errors[0].Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", resp.Errors[0].Title, tt.wantTitle)
			}
			if resp.Errors[0].Detail == "" {
				t.Error("detail should carry the error message")
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]int{"id": 7})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
	if body := w.Body.String(); body != "{\"id\":7}\n" {
		t.Errorf("body = %q", body)
	}
}

func TestCorrelationID_PropagatesHeader(t *testing.T) {
	var seen string
	handler := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if seen != "abc-123" {
		t.Errorf("context correlation id = %q, want abc-123", seen)
	}
	if got := w.Header().Get("X-Correlation-ID"); got != "abc-123" {
		t.Errorf("response header = %q, want abc-123", got)
	}
}

func TestCorrelationID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	handler := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if seen == "" {
		t.Error("expected generated correlation id")
	}
	if got := w.Header().Get("X-Correlation-ID"); got != seen {
		t.Errorf("response header = %q, want %q", got, seen)
	}
}
