package utils

import (
	"testing"

	"labclinics-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "https://maps.example.com/x", SanitizeURL("maps.example.com/x"))
	assert.Equal(t, "https://maps.example.com/x", SanitizeURL("  maps.example.com/x  "))
	assert.Equal(t, "https://example.com", SanitizeURL("https://example.com"))
	assert.Equal(t, "http://example.com", SanitizeURL("http://example.com"))
	assert.Equal(t, "HTTPS://example.com", SanitizeURL("HTTPS://example.com"))
	assert.Equal(t, "", SanitizeURL(""))
	assert.Equal(t, "", SanitizeURL("   "))
}

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{
		Email:    "  Admin@Example.COM ",
		Password: " secret ",
	}

	SanitizeLoginRequest(request)

	assert.Equal(t, "admin@example.com", request.Email)
	assert.Equal(t, "secret", request.Password)
}

func TestSanitizeUpsertDoctorRequest(t *testing.T) {
	request := &requests.UpsertDoctor{
		FirstName: "  Ana ",
		LastName:  " Gómez ",
		Phone:     " +54 11 5555-0001 ",
		Email:     " ana@example.com ",
		Branch:    " Centro ",
		Slug:      " ana-gomez ",
	}

	SanitizeUpsertDoctorRequest(request)

	assert.Equal(t, "Ana", request.FirstName)
	assert.Equal(t, "Gómez", request.LastName)
	assert.Equal(t, "+54 11 5555-0001", request.Phone)
	assert.Equal(t, "ana@example.com", request.Email)
	assert.Equal(t, "Centro", request.Branch)
	assert.Equal(t, "ana-gomez", request.Slug)
}
