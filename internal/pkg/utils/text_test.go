package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "Jose Perez", StripDiacritics("José Pérez"))
	assert.Equal(t, "Nunez", StripDiacritics("Núñez"))
	assert.Equal(t, "sin acentos", StripDiacritics("sin acentos"))
	assert.Equal(t, "", StripDiacritics(""))
}

func TestNormalizeForSearch(t *testing.T) {
	assert.Equal(t, "cardiologia", NormalizeForSearch("CARDIOLOGÍA"))
	assert.Equal(t, "dra. ana gomez", NormalizeForSearch("Dra. Ana Gómez"))
}

func TestSlugify(t *testing.T) {
	t.Run("derives url safe identifiers", func(t *testing.T) {
		assert.Equal(t, "jose-perez", Slugify("José Pérez"))
		assert.Equal(t, "ana-maria-gomez", Slugify("  Ana   María - Gómez "))
		assert.Equal(t, "dra-ana-100", Slugify("Dra. Ana (100%)"))
	})

	t.Run("trims leading and trailing separators", func(t *testing.T) {
		assert.Equal(t, "ana", Slugify("--ana--"))
		assert.Equal(t, "ana", Slugify("  ¡ana!  "))
	})

	t.Run("empty and symbol-only input yields empty", func(t *testing.T) {
		assert.Equal(t, "", Slugify(""))
		assert.Equal(t, "", Slugify("¡¿!?"))
	})

	t.Run("idempotent over its own output", func(t *testing.T) {
		inputs := []string{"José Pérez", "  Ana   María  ", "Dra. Ana (100%)", "ya-es-slug"}
		for _, input := range inputs {
			once := Slugify(input)
			assert.Equal(t, once, Slugify(once))
		}
	})
}

func TestFormatFullName(t *testing.T) {
	assert.Equal(t, "Ana Gómez", FormatFullName("Ana", "Gómez"))
	assert.Equal(t, "Ana María Gómez", FormatFullName("  Ana   María ", " Gómez "))
	assert.Equal(t, "Ana", FormatFullName("Ana", ""))
	assert.Equal(t, "Gómez", FormatFullName("", "Gómez"))
	assert.Equal(t, "", FormatFullName("", ""))
}
