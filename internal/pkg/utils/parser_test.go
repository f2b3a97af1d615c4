package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureList(t *testing.T) {
	t.Run("nil yields an empty slice, never nil", func(t *testing.T) {
		result := EnsureList(nil)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("string slices are trimmed and filtered", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, EnsureList([]string{" a ", "", "b", "  "}))
	})

	t.Run("mixed slices are stringified", func(t *testing.T) {
		assert.Equal(t, []string{"a", "1"}, EnsureList([]interface{}{" a ", nil, 1, ""}))
	})

	t.Run("plain strings split on commas", func(t *testing.T) {
		assert.Equal(t, []string{"Cardiología", "Clínica"}, EnsureList("Cardiología, Clínica"))
		assert.Equal(t, []string{"una"}, EnsureList("una"))
		assert.Empty(t, EnsureList(" , , "))
	})

	t.Run("entry order is preserved", func(t *testing.T) {
		assert.Equal(t, []string{"z", "a", "m"}, EnsureList([]string{"z", "a", "m"}))
	})
}

func TestCoercePriority(t *testing.T) {
	assert.Equal(t, 5, CoercePriority(5))
	assert.Equal(t, 5, CoercePriority(int32(5)))
	assert.Equal(t, 5, CoercePriority(int64(5)))
	assert.Equal(t, 5, CoercePriority(5.0))
	assert.Equal(t, 5, CoercePriority("5"))
	assert.Equal(t, 5, CoercePriority(" 5 "))
	assert.Equal(t, 0, CoercePriority(nil))
	assert.Equal(t, 0, CoercePriority("alta"))
	assert.Equal(t, 0, CoercePriority(""))
	assert.Equal(t, 0, CoercePriority(true))
	assert.Equal(t, -2, CoercePriority(-2))
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "ana", CoerceString(" ana "))
	assert.Equal(t, "", CoerceString(nil))
	assert.Equal(t, "", CoerceString(42))
}

func TestCoerceBool(t *testing.T) {
	assert.True(t, CoerceBool(nil, true))
	assert.False(t, CoerceBool(nil, false))
	assert.False(t, CoerceBool(false, true))
	assert.True(t, CoerceBool(true, false))
	assert.True(t, CoerceBool("yes", true))
}

func TestCleanDocument(t *testing.T) {
	t.Run("drops empty values", func(t *testing.T) {
		cleaned := CleanDocument(map[string]interface{}{
			"a": nil,
			"b": "",
			"c": "   ",
			"d": []string{},
			"e": []interface{}{},
			"f": map[string]interface{}{},
		})

		assert.Empty(t, cleaned)
	})

	t.Run("keeps false and zero", func(t *testing.T) {
		cleaned := CleanDocument(map[string]interface{}{
			"active":   false,
			"priority": 0,
		})

		assert.Equal(t, false, cleaned["active"])
		assert.Equal(t, 0, cleaned["priority"])
	})

	t.Run("keeps populated values", func(t *testing.T) {
		cleaned := CleanDocument(map[string]interface{}{
			"name":        "Ana",
			"specialties": []string{"Cardiología"},
			"social":      map[string]interface{}{"x": "https://x.com/ana"},
		})

		assert.Len(t, cleaned, 3)
	})
}
