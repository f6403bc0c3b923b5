// Package handler is the thin HTTP layer for lead submissions. It delegates
// to the submission service so transport concerns stay isolated.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	ratelimitmw "leadgate/internal/ratelimit/middleware"
	"leadgate/internal/submission/models"
	dErrors "leadgate/pkg/domain-errors"
	"leadgate/pkg/platform/httputil"
)

// Service defines the submission operations the handler depends on.
type Service interface {
	Submit(ctx context.Context, req *models.SubmissionRequest) (*models.SubmitResponse, error)
}

// Handler handles the submission endpoint.
type Handler struct {
	logger    *slog.Logger
	service   Service
	rateLimit *ratelimitmw.Middleware
}

// New creates a submission Handler.
func New(service Service, rateLimit *ratelimitmw.Middleware, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		rateLimit: rateLimit,
	}
}

// Register registers the submission route. The rate-limit check runs before
// body parsing, so throttled clients never reach the decoder.
func (h *Handler) Register(r chi.Router) {
	r.With(h.rateLimit.RateLimit).Post("/api/submit", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "malformed submission body", "error", err.Error())
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body."))
		return
	}

	resp, err := h.service.Submit(ctx, &req)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeBadRequest) {
			h.logger.WarnContext(ctx, "submission rejected", "error", err.Error())
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
