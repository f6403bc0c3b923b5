// Package store provides application persistence. The Postgres store is the
// production path; the memory store backs unit tests.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"leadgate/internal/submission/models"
)

// PostgresStore persists applications in the community_applications table.
// Pure I/O; validation and routing happen in the service.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO community_applications (
			id, name, email, phone, work_experience, weekend_mastermind,
			country, country_code, redirect_group, ip_address,
			utm_source, utm_medium, utm_campaign, utm_content, utm_term,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := s.db.ExecContext(ctx, query,
		app.ID,
		app.Name,
		app.Email,
		app.Phone,
		app.WorkExperience,
		app.WeekendMastermind,
		nullable(app.Country),
		nullable(app.CountryCode),
		string(app.RedirectGroup),
		nullable(app.IPAddress),
		nullable(app.UTMSource),
		nullable(app.UTMMedium),
		nullable(app.UTMCampaign),
		nullable(app.UTMContent),
		nullable(app.UTMTerm),
		app.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// nullable maps empty optional strings to NULL, matching the table schema.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
