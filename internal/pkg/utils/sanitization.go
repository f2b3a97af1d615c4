package utils

import (
	"labclinics-service/internal/pkg/dto/requests"
	"regexp"
	"strings"
)

var reHTTPScheme = regexp.MustCompile(`(?i)^https?://`)

// SanitizeURL trims the value and guarantees an explicit scheme: already
// prefixed http/https URLs pass through untouched, anything else gets
// https:// prepended. Empty input stays empty, no placeholder is invented.
func SanitizeURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}
	if reHTTPScheme.MatchString(trimmed) {
		return trimmed
	}
	return "https://" + trimmed
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeUpsertDoctorRequest(input *requests.UpsertDoctor) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Profession = strings.TrimSpace(input.Profession)
	input.Address = strings.TrimSpace(input.Address)
	input.Branch = strings.TrimSpace(input.Branch)
	input.Email = strings.TrimSpace(input.Email)
	input.MapURL = strings.TrimSpace(input.MapURL)
	input.About = strings.TrimSpace(input.About)
	input.PhotoName = strings.TrimSpace(input.PhotoName)
	input.Slug = strings.TrimSpace(input.Slug)
}
