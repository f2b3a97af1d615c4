package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+541155550001", CleanPhone("+54 (11) 5555-0001"))
	assert.Equal(t, "1155550001", CleanPhone("11 5555 0001"))
	assert.Equal(t, "541155550001", CleanPhone("54-11-5555-0001"))
	assert.Equal(t, "", CleanPhone(""))
	assert.Equal(t, "", CleanPhone("a consultar"))
	assert.Equal(t, "", CleanPhone("+"))
}

func TestBuildTelLink(t *testing.T) {
	assert.Equal(t, "tel:+541155550001", BuildTelLink("+54 11 5555-0001"))
	assert.Equal(t, "#", BuildTelLink(""))
	assert.Equal(t, "#", BuildTelLink("sin teléfono"))
}

func TestBuildWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/541155550001", BuildWhatsAppLink("+54 11 5555-0001"))
	assert.Equal(t, "https://wa.me/1155550001", BuildWhatsAppLink("011 5555 0001"))
	assert.Equal(t, "#", BuildWhatsAppLink(""))
	assert.Equal(t, "#", BuildWhatsAppLink("000"))
}
