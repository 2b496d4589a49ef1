package util

import (
	"regexp"
	"strings"
)

const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
)

// PickLocale normalizes a requested locale to the supported set. Arabic is
// the site default.
func PickLocale(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(raw, "-_,;"); idx > 0 {
		raw = raw[:idx]
	}
	if raw == LocaleEnglish {
		return LocaleEnglish
	}
	return LocaleArabic
}

var slugRe = regexp.MustCompile(`[^a-z0-9_\-]`)

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = slugRe.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}
