package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// matchingBrace returns the index of the '}' closing the '{' at open,
// tracking nesting depth so balanced inner pairs are skipped.
// Returns -1 when s[open] is not '{' or no closing brace exists.
//
// This is the single scan primitive behind both uses of brace matching:
// locating whole {{...}} blocks in a template and extracting nested
// { ... } form content inside one.
func matchingBrace(s string, open int) int {
	if open >= len(s) || s[open] != '{' {
		return -1
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// pluralForms holds the parsed entries of one plural block: exact-count
// overrides and per-category content. Parsed per occurrence and discarded;
// blocks are small enough that re-parsing beats caching.
type pluralForms struct {
	exact      map[int]string
	categories map[string]string
}

// parsePluralForms parses the text between the "plural," marker and the
// block's closing delimiter. Entries are "=<integer> { content }" or
// "<category> { content }"; whitespace between entries is insignificant and
// content may contain balanced brace pairs.
func parsePluralForms(src string) (*pluralForms, error) {
	forms := &pluralForms{
		exact:      make(map[int]string),
		categories: make(map[string]string),
	}

	i := 0
	for i < len(src) {
		for i < len(src) && unicode.IsSpace(rune(src[i])) {
			i++
		}
		if i >= len(src) {
			break
		}

		start := i
		for i < len(src) && src[i] != '{' && !unicode.IsSpace(rune(src[i])) {
			i++
		}
		key := src[start:i]
		if key == "" {
			return nil, fmt.Errorf("%w: missing form identifier at offset %d", ErrUnbalancedBraces, start)
		}

		for i < len(src) && unicode.IsSpace(rune(src[i])) {
			i++
		}
		if i >= len(src) || src[i] != '{' {
			return nil, fmt.Errorf("%w: form %q has no content block", ErrUnbalancedBraces, key)
		}

		end := matchingBrace(src, i)
		if end < 0 {
			return nil, fmt.Errorf("%w: form %q content never closes", ErrUnbalancedBraces, key)
		}
		content := src[i+1 : end]
		i = end + 1

		if exact, ok := strings.CutPrefix(key, "="); ok {
			n, err := strconv.Atoi(exact)
			if err != nil {
				return nil, fmt.Errorf("%w: exact form %q is not an integer", ErrUnbalancedBraces, key)
			}
			forms.exact[n] = content
		} else {
			forms.categories[key] = content
		}
	}

	return forms, nil
}

// selectForm picks the content for count: an exact "=N" entry wins outright,
// otherwise the count's cardinal category, then "other", then empty string.
// The category is resolved lazily so an exact hit never consults the
// resolver. Selected content is returned verbatim; nested directives inside
// it are the caller's concern.
func (f *pluralForms) selectForm(count int, resolveCategory func(int) (string, error)) (string, error) {
	if content, ok := f.exact[count]; ok {
		return content, nil
	}
	category, err := resolveCategory(count)
	if err != nil {
		return "", err
	}
	if content, ok := f.categories[category]; ok {
		return content, nil
	}
	return f.categories[PluralOther], nil
}
