package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EnsureList turns whatever shape the raw field carries into a clean ordered
// slice of strings. Sequences keep their entry order with empties dropped and
// entries trimmed; a plain string is split on commas; anything absent yields
// an empty slice, never nil. The same rule serves specialties, treatments and
// tags on both the read and write paths.
func EnsureList(value interface{}) []string {
	result := []string{}
	if value == nil {
		return result
	}

	appendEntry := func(entry string) {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			result = append(result, entry)
		}
	}

	switch typed := value.(type) {
	case []string:
		for _, entry := range typed {
			appendEntry(entry)
		}
	case []interface{}:
		for _, raw := range typed {
			if raw == nil {
				continue
			}
			appendEntry(fmt.Sprint(raw))
		}
	case string:
		for _, segment := range strings.Split(typed, ",") {
			appendEntry(segment)
		}
	default:
		for _, segment := range strings.Split(fmt.Sprint(typed), ",") {
			appendEntry(segment)
		}
	}

	return result
}

// CoercePriority accepts whatever the form or the stored document holds for
// priority and falls back to 0 for anything that is not a finite number.
func CoercePriority(value interface{}) int {
	switch typed := value.(type) {
	case nil:
		return 0
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0
		}
		return int(typed)
	case float32:
		return CoercePriority(float64(typed))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return CoercePriority(parsed)
	default:
		return 0
	}
}

// CoerceString returns the trimmed string form of a raw document field, or
// the empty string when the field is absent or not textual.
func CoerceString(value interface{}) string {
	if value == nil {
		return ""
	}
	if typed, ok := value.(string); ok {
		return strings.TrimSpace(typed)
	}
	return ""
}

// CoerceBool decodes the three-way optional boolean: present-true,
// present-false, or absent which yields the supplied default. An explicit
// false is never collapsed into the default.
func CoerceBool(value interface{}, defaultValue bool) bool {
	if value == nil {
		return defaultValue
	}
	if typed, ok := value.(bool); ok {
		return typed
	}
	return defaultValue
}

// CleanDocument strips empty values from a storage payload: nils, blank or
// whitespace-only strings, empty slices and empty maps are omitted so a
// partial update never clears unmentioned fields. Booleans and numbers are
// always kept, including false and 0.
func CleanDocument(doc map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		if isEmptyValue(value) {
			continue
		}
		cleaned[key] = value
	}
	return cleaned
}

func isEmptyValue(value interface{}) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case []string:
		return len(typed) == 0
	case []interface{}:
		return len(typed) == 0
	case map[string]string:
		return len(typed) == 0
	case map[string]interface{}:
		return len(typed) == 0
	default:
		return false
	}
}
