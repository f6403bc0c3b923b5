package service

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"leadgate/internal/submission/models"
	dErrors "leadgate/pkg/domain-errors"
)

// emailPattern is a permissive single-@ structural check, not RFC 5322.
// The address still has to survive delivery later; rejecting harder here
// only loses leads.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// countryCodePattern checks ISO 3166-1 alpha-2 shape only, not membership
// in the real country list.
var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

var nonDigits = regexp.MustCompile(`\D`)

// normalize trims every string field and applies the length caps. Over-long
// name/email/phone values are truncated, not rejected.
func normalize(req *models.SubmissionRequest) {
	req.Name = truncate(strings.TrimSpace(req.Name), models.MaxNameLength)
	req.Email = truncate(strings.TrimSpace(req.Email), models.MaxEmailLength)
	req.Phone = truncate(strings.TrimSpace(req.Phone), models.MaxPhoneLength)
	req.WorkExperience = strings.TrimSpace(req.WorkExperience)
	req.Country = strings.TrimSpace(req.Country)
	req.CountryCode = strings.TrimSpace(req.CountryCode)
	req.IPAddress = strings.TrimSpace(req.IPAddress)
	req.UTMSource = strings.TrimSpace(req.UTMSource)
	req.UTMMedium = strings.TrimSpace(req.UTMMedium)
	req.UTMCampaign = strings.TrimSpace(req.UTMCampaign)
	req.UTMContent = strings.TrimSpace(req.UTMContent)
	req.UTMTerm = strings.TrimSpace(req.UTMTerm)
}

// validate applies the server-authority rules in fixed order, returning the
// first failure. The per-country exact phone length check lives only in the
// client; the 7-15 digit range here is the actual boundary.
func validate(req *models.SubmissionRequest) *dErrors.Error {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.WorkExperience == "" {
		return dErrors.New(dErrors.CodeBadRequest, "Please fill in all required fields.")
	}

	if utf8.RuneCountInString(req.Name) < 2 {
		return dErrors.New(dErrors.CodeBadRequest, "Name must be at least 2 characters.")
	}

	if !emailPattern.MatchString(req.Email) {
		return dErrors.New(dErrors.CodeBadRequest, "Please enter a valid email address.")
	}

	digits := nonDigits.ReplaceAllString(req.Phone, "")
	if len(digits) < 7 || len(digits) > 15 {
		return dErrors.New(dErrors.CodeBadRequest, "Please enter a valid phone number.")
	}

	if !slices.Contains(models.AllowedExperiences, req.WorkExperience) {
		return dErrors.New(dErrors.CodeBadRequest, "Invalid work experience selection.")
	}

	if req.CountryCode != "" && !countryCodePattern.MatchString(req.CountryCode) {
		return dErrors.New(dErrors.CodeBadRequest, "Invalid country code.")
	}

	return nil
}

// truncate caps s at max characters, not bytes. Cutting on a byte index
// could split a multibyte rune and hand the store invalid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
