package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Plural category names as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// pluralSelector maps a count to its CLDR cardinal category for one locale.
type pluralSelector func(n int) string

// categoryResolver caches one compiled selector per locale for the process
// lifetime. Entries are never removed; concurrent construction of the same
// locale is a benign race that converges on an equivalent selector.
type categoryResolver struct {
	mu        sync.Mutex
	selectors map[string]pluralSelector
}

func newCategoryResolver() *categoryResolver {
	return &categoryResolver{selectors: make(map[string]pluralSelector)}
}

// selectorFor returns the cached selector for the locale, compiling it on
// first use. An unparseable locale tag is a construction failure.
func (r *categoryResolver) selectorFor(locale string) (pluralSelector, error) {
	r.mu.Lock()
	sel, ok := r.selectors[locale]
	r.mu.Unlock()
	if ok {
		return sel, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}

	sel = func(n int) string {
		if n < 0 {
			n = -n
		}
		return formName(plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0))
	}

	r.mu.Lock()
	r.selectors[locale] = sel
	r.mu.Unlock()

	return sel, nil
}

// categoryFor returns the CLDR cardinal category of count in the locale.
func (r *categoryResolver) categoryFor(locale string, count int) (string, error) {
	sel, err := r.selectorFor(locale)
	if err != nil {
		return "", err
	}
	return sel(count), nil
}

func formName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
