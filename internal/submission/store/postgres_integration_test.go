//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"leadgate/internal/redirect"
	"leadgate/internal/submission/models"
	"leadgate/internal/submission/store"
	"leadgate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "community_applications"))
}

func newTestApplication() *models.Application {
	return &models.Application{
		ID:                uuid.NewString(),
		Name:              "Priya Sharma",
		Email:             "priya@example.com",
		Phone:             "9876543210",
		WorkExperience:    "Working Professional",
		WeekendMastermind: true,
		Country:           "India",
		CountryCode:       "IN",
		RedirectGroup:     redirect.GroupIndiaCommunity,
		IPAddress:         "203.0.113.30",
		UTMSource:         "instagram",
		UTMCampaign:       "launch",
		CreatedAt:         time.Now().UTC(),
	}
}

func (s *PostgresStoreSuite) TestInsert() {
	ctx := context.Background()
	app := newTestApplication()

	s.Require().NoError(s.store.Insert(ctx, app))

	row := s.postgres.DB.QueryRowContext(ctx, `
		SELECT name, email, redirect_group, weekend_mastermind FROM community_applications WHERE id = $1
	`, app.ID)

	var name, email, group string
	var mastermind bool
	s.Require().NoError(row.Scan(&name, &email, &group, &mastermind))
	s.Equal("Priya Sharma", name)
	s.Equal("priya@example.com", email)
	s.Equal("india_community", group)
	s.True(mastermind)
}

func (s *PostgresStoreSuite) TestInsertEmptyOptionalsAsNull() {
	ctx := context.Background()
	app := newTestApplication()
	app.Country = ""
	app.CountryCode = ""
	app.IPAddress = ""
	app.UTMSource = ""
	app.UTMCampaign = ""

	s.Require().NoError(s.store.Insert(ctx, app))

	row := s.postgres.DB.QueryRowContext(ctx, `
		SELECT country IS NULL, utm_source IS NULL, ip_address IS NULL
		FROM community_applications WHERE id = $1
	`, app.ID)

	var countryNull, utmNull, ipNull bool
	s.Require().NoError(row.Scan(&countryNull, &utmNull, &ipNull))
	s.True(countryNull)
	s.True(utmNull)
	s.True(ipNull)
}

func (s *PostgresStoreSuite) TestInsertDuplicateIDFails() {
	ctx := context.Background()
	app := newTestApplication()

	s.Require().NoError(s.store.Insert(ctx, app))
	s.Error(s.store.Insert(ctx, app))
}
