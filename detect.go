package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing to avoid oversized input.
const maxAcceptLanguageLength = 4096

// DetectLanguage picks the best supported locale for an Accept-Language
// header value. Tags are considered in descending quality order; an exact
// match wins over a base-language match ("en" for "en-US"). When nothing
// matches, or the header is empty, it returns DefaultLocale.
func DetectLanguage(header string, supported []string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	type candidate struct {
		tag     string
		quality float64
	}

	var candidates []candidate
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(q), 64)
			if err != nil || parsed < 0 || parsed > 1 {
				continue
			}
			quality = parsed
		}
		if quality == 0 {
			continue
		}

		candidates = append(candidates, candidate{tag: tag, quality: quality})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.quality, a.quality)
	})

	for _, c := range candidates {
		for _, s := range supported {
			if strings.EqualFold(s, c.tag) {
				return s
			}
		}
	}

	// No exact tag matched; retry on base languages.
	for _, c := range candidates {
		base := baseLocale(c.tag)
		for _, s := range supported {
			if baseLocale(s) == base {
				return s
			}
		}
	}

	return DefaultLocale
}
