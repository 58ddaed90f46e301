package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLocale      = errors.New("i18n: locale cannot be empty")
	ErrEmptyComponent   = errors.New("i18n: component name cannot be empty")
	ErrEmptyNamespace   = errors.New("i18n: namespace cannot be empty")
	ErrNoBaseURL        = errors.New("i18n: no base URL given and no namespace registered")
	ErrLoadFailed       = errors.New("i18n: locale payload fetch failed")
	ErrMalformedPayload = errors.New("i18n: malformed locale payload")
	ErrInvalidLocale    = errors.New("i18n: invalid locale tag")
	ErrUnbalancedBraces = errors.New("i18n: unbalanced braces in plural block")
)

// LoadError reports a non-success response while fetching a locale payload.
// It wraps ErrLoadFailed so callers can match with errors.Is.
type LoadError struct {
	Locale     string
	URL        string
	Status     int
	StatusText string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("i18n: loading locale %q from %s: %d %s", e.Locale, e.URL, e.Status, e.StatusText)
}

func (e *LoadError) Unwrap() error {
	return ErrLoadFailed
}
