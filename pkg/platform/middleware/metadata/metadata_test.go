package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			"single forwarded-for entry",
			map[string]string{"X-Forwarded-For": "203.0.113.5"},
			"203.0.113.5",
		},
		{
			"forwarded-for chain takes the first entry",
			map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1, 10.0.0.2"},
			"203.0.113.5",
		},
		{
			"forwarded-for entry is trimmed",
			map[string]string{"X-Forwarded-For": "  203.0.113.5  , 10.0.0.1"},
			"203.0.113.5",
		},
		{
			"real-ip fallback",
			map[string]string{"X-Real-IP": "198.51.100.7"},
			"198.51.100.7",
		},
		{
			"forwarded-for wins over real-ip",
			map[string]string{"X-Forwarded-For": "203.0.113.5", "X-Real-IP": "198.51.100.7"},
			"203.0.113.5",
		},
		{
			"no headers lands in the shared unknown bucket",
			nil,
			UnknownClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIPFromRequest(req); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClientMetadataMiddleware(t *testing.T) {
	var gotIP, gotUA string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotIP = GetClientIP(r.Context())
		gotUA = GetUserAgent(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.8")
	req.Header.Set("User-Agent", "test-agent")

	ClientMetadata(next).ServeHTTP(httptest.NewRecorder(), req)

	if gotIP != "203.0.113.8" {
		t.Fatalf("expected client IP in context, got %q", gotIP)
	}
	if gotUA != "test-agent" {
		t.Fatalf("expected user agent in context, got %q", gotUA)
	}
}

func TestGetClientIPWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetClientIP(req.Context()); got != UnknownClient {
		t.Fatalf("expected %q for bare context, got %q", UnknownClient, got)
	}
}
