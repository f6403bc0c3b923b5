package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadgate/internal/ratelimit"
	"leadgate/pkg/platform/middleware/metadata"
)

func testHandler(mw *Middleware) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return metadata.ClientMetadata(mw.RateLimit(next))
}

func newRequest(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	return req
}

func TestRateLimitMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("admitted request passes through with headers", func(t *testing.T) {
		limiter := ratelimit.New(ratelimit.WithLimit(5), ratelimit.WithWindow(time.Minute))
		h := testHandler(New(limiter, logger))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, newRequest("203.0.113.9"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "5", rr.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", rr.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("over-limit request gets 429 with retry-after", func(t *testing.T) {
		limiter := ratelimit.New(ratelimit.WithLimit(2), ratelimit.WithWindow(time.Minute))
		h := testHandler(New(limiter, logger))

		for range 2 {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, newRequest("203.0.113.10"))
			require.Equal(t, http.StatusOK, rr.Code)
		}

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, newRequest("203.0.113.10"))

		require.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))
		assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
		assert.JSONEq(t,
			`{"success":false,"error":"Too many requests. Please try again in a minute."}`,
			rr.Body.String())
	})

	t.Run("headerless clients share the unknown bucket", func(t *testing.T) {
		limiter := ratelimit.New(ratelimit.WithLimit(1), ratelimit.WithWindow(time.Minute))
		h := testHandler(New(limiter, logger))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, newRequest(""))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		h.ServeHTTP(rr, newRequest(""))
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("disabled middleware admits everything", func(t *testing.T) {
		limiter := ratelimit.New(ratelimit.WithLimit(1), ratelimit.WithWindow(time.Minute))
		h := testHandler(New(limiter, logger, WithDisabled(true)))

		for range 10 {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, newRequest("203.0.113.11"))
			require.Equal(t, http.StatusOK, rr.Code)
		}
	})
}
