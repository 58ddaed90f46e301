package i18n

import "strings"

// Pluralize returns the morphological plural of word for the given locale.
// It is a pure function: identical inputs always produce identical output.
// Rules exist for English and French; any other locale appends "s".
// Suffix checks are case-insensitive, the appended suffix is lowercase.
func Pluralize(word, locale string) string {
	switch baseLocale(locale) {
	case "en":
		return pluralizeEnglish(word)
	case "fr":
		return pluralizeFrench(word)
	default:
		return word + "s"
	}
}

func pluralizeEnglish(word string) string {
	lower := strings.ToLower(word)

	switch {
	case hasAnySuffix(lower, "s", "sh", "ch", "x", "z"):
		return word + "es"
	case strings.HasSuffix(lower, "y") && len(lower) >= 2 && !isVowel(lower[len(lower)-2]):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

func pluralizeFrench(word string) string {
	lower := strings.ToLower(word)

	switch {
	case hasAnySuffix(lower, "s", "x", "z"):
		return word
	case hasAnySuffix(lower, "au", "eu"):
		return word + "x"
	case strings.HasSuffix(lower, "al"):
		return word[:len(word)-2] + "aux"
	default:
		return word + "s"
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// baseLocale strips the region from a locale tag (e.g. "en-US" -> "en")
// and lowercases the result.
func baseLocale(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return strings.ToLower(locale)
}
