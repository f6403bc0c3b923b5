package metadata

import (
	"context"
	"net/http"
	"strings"
)

// Context keys for client metadata.
type contextKeyClientIP struct{}
type contextKeyUserAgent struct{}

// UnknownClient is the shared bucket for requests that carry no forwarding
// headers. Aggregating those clients into one rate-limit bucket is accepted
// behavior for this deployment.
const UnknownClient = "unknown"

// ClientMetadata extracts the client IP address and User-Agent from the
// request and adds them to the context for handlers and the rate limiter.
// This middleware should be applied early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		userAgent := r.Header.Get("User-Agent")

		ctx := r.Context()
		ctx = context.WithValue(ctx, contextKeyClientIP{}, ip)
		ctx = context.WithValue(ctx, contextKeyUserAgent{}, userAgent)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientIP retrieves the client IP address from the context.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(contextKeyClientIP{}).(string); ok {
		return ip
	}
	return UnknownClient
}

// GetUserAgent retrieves the User-Agent from the context.
func GetUserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(contextKeyUserAgent{}).(string); ok {
		return ua
	}
	return ""
}

// WithClientMetadata injects client IP and User-Agent into a context.
// Useful for service unit tests that don't run the full HTTP middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, contextKeyClientIP{}, clientIP)
	ctx = context.WithValue(ctx, contextKeyUserAgent{}, userAgent)
	return ctx
}

// ClientIPFromRequest derives the rate-limit identifier from proxy headers.
// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...);
// the first entry is the original client. X-Real-IP is the nginx variant.
// Requests with neither header all land in the UnknownClient bucket.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return UnknownClient
}
