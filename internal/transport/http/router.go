// Package httptransport wires all public endpoints onto a chi router.
package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadgate/internal/platform/middleware"
	"leadgate/internal/submission/handler"
	"leadgate/pkg/platform/middleware/metadata"
)

// NewRouter assembles the HTTP surface: the submission endpoint plus the
// operational endpoints (/healthz, /metrics). ClientMetadata runs before the
// request logger and the per-route rate limiter so both see the derived IP.
func NewRouter(submissions *handler.Handler, logger *middleware.RequestLogger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(logger.Log)
	r.Use(chimw.Timeout(30 * time.Second))

	submissions.Register(r)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
