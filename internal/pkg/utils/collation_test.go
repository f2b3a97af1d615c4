package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareCollated(t *testing.T) {
	t.Run("accented letters sort with their base letter", func(t *testing.T) {
		names := []string{"Zoe", "Ángel", "Ana", "Beto"}
		sort.SliceStable(names, func(i, j int) bool {
			return CompareCollated(names[i], names[j]) < 0
		})

		assert.Equal(t, []string{"Ana", "Ángel", "Beto", "Zoe"}, names)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, 0, CompareCollated("ana", "ANA"))
	})

	t.Run("accent insensitive", func(t *testing.T) {
		assert.Equal(t, 0, CompareCollated("Gómez", "Gomez"))
	})
}

func TestUniqueSorted(t *testing.T) {
	t.Run("dedupes case and accent insensitively keeping the first spelling", func(t *testing.T) {
		result := UniqueSorted([]string{"Cardiología", "cardiologia", "CARDIOLOGÍA", "Pediatría"})

		assert.Equal(t, []string{"Cardiología", "Pediatría"}, result)
	})

	t.Run("drops blanks", func(t *testing.T) {
		result := UniqueSorted([]string{"", "  ", "Clínica"})

		assert.Equal(t, []string{"Clínica"}, result)
	})

	t.Run("sorts under locale collation", func(t *testing.T) {
		result := UniqueSorted([]string{"Pediatría", "Cardiología", "Ángel"})

		assert.Equal(t, []string{"Ángel", "Cardiología", "Pediatría"}, result)
	})

	t.Run("empty input yields empty non nil slice", func(t *testing.T) {
		result := UniqueSorted(nil)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
