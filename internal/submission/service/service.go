// Package service orchestrates a lead submission: validate, route, persist.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"leadgate/internal/platform/metrics"
	"leadgate/internal/redirect"
	"leadgate/internal/submission/models"
	"leadgate/pkg/countries"
	dErrors "leadgate/pkg/domain-errors"
)

// Store persists validated applications. Implementations must distinguish
// their own failure causes in logs; the service maps every failure to the
// same generic user message.
type Store interface {
	Insert(ctx context.Context, app *models.Application) error
}

type Service struct {
	store   Store
	router  *redirect.Router
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(store Store, router *redirect.Router, opts ...Option) *Service {
	s := &Service{
		store:  store,
		router: router,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit normalizes and validates the request, computes the redirect
// decision, persists the application, and assembles the response. Every
// error path is terminal for the request; there are no retries here.
func (s *Service) Submit(ctx context.Context, req *models.SubmissionRequest) (*models.SubmitResponse, error) {
	normalize(req)

	if verr := validate(req); verr != nil {
		if s.metrics != nil {
			s.metrics.IncrementValidationFailures()
		}
		return nil, verr
	}

	// The form usually sends both name and code from the geo lookup; a
	// direct API call may send only the code.
	if req.Country == "" && req.CountryCode != "" {
		req.Country = countries.Name(req.CountryCode)
	}

	decision := s.router.Route(req.WorkExperience, req.CountryCode)

	app := &models.Application{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		WorkExperience:    req.WorkExperience,
		WeekendMastermind: req.WeekendMastermind,
		Country:           req.Country,
		CountryCode:       req.CountryCode,
		RedirectGroup:     decision.Group,
		IPAddress:         req.IPAddress,
		UTMSource:         req.UTMSource,
		UTMMedium:         req.UTMMedium,
		UTMCampaign:       req.UTMCampaign,
		UTMContent:        req.UTMContent,
		UTMTerm:           req.UTMTerm,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, app); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist application",
			"error", err.Error(),
			"redirect_group", decision.Group,
		)
		if s.metrics != nil {
			s.metrics.IncrementPersistenceFailures()
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Something went wrong. Please try again.", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementApplicationsCreated()
	}
	s.logger.InfoContext(ctx, "application captured",
		"application_id", app.ID,
		"redirect_group", decision.Group,
		"work_experience", app.WorkExperience,
		"country_code", app.CountryCode,
	)

	return &models.SubmitResponse{
		Success:       true,
		RedirectURL:   decision.URL,
		MastermindURL: s.router.MastermindURL(req.WeekendMastermind),
	}, nil
}
