// Package models defines the submission wire types and the persisted
// application record.
package models

import (
	"time"

	"leadgate/internal/redirect"
)

// Length caps applied during normalization, before validation.
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
	MaxPhoneLength = 20
)

// AllowedExperiences is the fixed set of work-experience selections the form
// offers. Anything else is rejected, not coerced.
var AllowedExperiences = []string{
	"Student",
	"Working Professional",
	"Self Employed",
	"Unemployed",
	"Retired",
	"Others",
}

// SubmissionRequest is the JSON body of POST /api/submit. The country, IP
// and UTM fields are attribution metadata captured client-side; they carry
// no authority and never affect validation.
type SubmissionRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	WorkExperience    string `json:"work_experience"`
	WeekendMastermind bool   `json:"weekend_mastermind"`
	Country           string `json:"country"`
	CountryCode       string `json:"country_code"`
	IPAddress         string `json:"ip_address"`
	UTMSource         string `json:"utm_source"`
	UTMMedium         string `json:"utm_medium"`
	UTMCampaign       string `json:"utm_campaign"`
	UTMContent        string `json:"utm_content"`
	UTMTerm           string `json:"utm_term"`
}

// Application is the normalized record handed to the store. Empty optional
// fields persist as NULL.
type Application struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	WorkExperience    string
	WeekendMastermind bool
	Country           string
	CountryCode       string
	RedirectGroup     redirect.Group
	IPAddress         string
	UTMSource         string
	UTMMedium         string
	UTMCampaign       string
	UTMContent        string
	UTMTerm           string
	CreatedAt         time.Time
}

// SubmitResponse is the success envelope returned to the form. MastermindURL
// is non-nil only when the lead opted in and a secondary URL is configured.
type SubmitResponse struct {
	Success       bool    `json:"success"`
	RedirectURL   string  `json:"redirectUrl"`
	MastermindURL *string `json:"mastermindUrl"`
}
