package utils

import "strings"

// CleanPhone reduces a display phone number to digits, preserving a single
// leading '+' when the entered value started with one. Anything else
// (spaces, dashes, parentheses) is dropped.
func CleanPhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	hasPlus := strings.HasPrefix(trimmed, "+")

	var builder strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}

	digits := builder.String()
	if digits == "" {
		return ""
	}
	if hasPlus {
		return "+" + digits
	}
	return digits
}

// BuildTelLink returns a tel: URI for the number, or "#" when there is
// nothing dialable.
func BuildTelLink(phone string) string {
	normalized := CleanPhone(phone)
	if normalized == "" {
		return "#"
	}
	return "tel:" + normalized
}

// BuildWhatsAppLink returns a wa.me URL for the number. Leading zeroes are
// removed since wa.me expects the international form without them.
func BuildWhatsAppLink(phone string) string {
	normalized := strings.TrimPrefix(CleanPhone(phone), "+")
	normalized = strings.TrimLeft(normalized, "0")
	if normalized == "" {
		return "#"
	}
	return "https://wa.me/" + normalized
}
