package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ApplicationsCreated prometheus.Counter
	RateLimited         prometheus.Counter
	ValidationFailures  prometheus.Counter
	PersistenceFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ApplicationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_applications_created_total",
			Help: "Total number of community applications persisted",
		}),
		RateLimited: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_submissions_rate_limited_total",
			Help: "Total number of submissions rejected by the rate limiter",
		}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_submission_validation_failures_total",
			Help: "Total number of submissions rejected by validation",
		}),
		PersistenceFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_application_persistence_failures_total",
			Help: "Total number of failed application store writes",
		}),
	}
}

func (m *Metrics) IncrementApplicationsCreated() {
	m.ApplicationsCreated.Inc()
}

func (m *Metrics) IncrementRateLimited() {
	m.RateLimited.Inc()
}

func (m *Metrics) IncrementValidationFailures() {
	m.ValidationFailures.Inc()
}

func (m *Metrics) IncrementPersistenceFailures() {
	m.PersistenceFailures.Inc()
}
