package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "leadgate/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error hides detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "Something went wrong. Please try again.", errors.New("pq: connection refused")))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]any
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "Something went wrong. Please try again." {
			t.Fatalf("expected generic message, got %q", body["error"])
		}
		if body["success"] != false {
			t.Fatalf("expected success false")
		}
	})

	t.Run("bad request passes the user message through", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Please enter a valid email address."))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]any
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "Please enter a valid email address." {
			t.Fatalf("expected validation message, got %q", body["error"])
		}
	})

	t.Run("uncoded error collapses to generic 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("raw infrastructure error"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]any
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] == "raw infrastructure error" {
			t.Fatalf("internal detail leaked to client")
		}
	})

	t.Run("rate limited maps to 429", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeRateLimited, "Too many requests. Please try again in a minute."))

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, w.Code)
		}
	})
}
