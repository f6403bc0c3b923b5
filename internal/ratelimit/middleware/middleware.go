// Package middleware adapts the submission limiter to the HTTP layer.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"leadgate/internal/platform/metrics"
	"leadgate/internal/ratelimit"
	dErrors "leadgate/pkg/domain-errors"
	"leadgate/pkg/platform/httputil"
	"leadgate/pkg/platform/middleware/metadata"
)

const rateLimitedMessage = "Too many requests. Please try again in a minute."

// Middleware wraps submission endpoints with the per-IP sliding window check.
type Middleware struct {
	limiter  *ratelimit.Limiter
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool
}

type Option func(*Middleware)

// WithDisabled disables rate limiting entirely (for testing/demo mode).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(mw *Middleware) {
		mw.metrics = m
	}
}

func New(limiter *ratelimit.Limiter, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		limiter: limiter,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit gates the wrapped handler by client IP. The identifier comes
// from the metadata middleware, so ClientMetadata must run earlier in the
// chain. Rate-limit headers are set regardless of outcome.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := metadata.GetClientIP(r.Context())
		result := m.limiter.Allow(ip)

		addRateLimitHeaders(w, result)

		if !result.Allowed {
			m.logger.WarnContext(r.Context(), "submission rate limited",
				"identifier", ip,
				"retry_after", result.RetryAfter,
			)
			if m.metrics != nil {
				m.metrics.IncrementRateLimited()
			}
			writeRateLimitExceeded(w, result)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *ratelimit.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *ratelimit.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, rateLimitedMessage))
}
