package i18n

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultLocale is used when Load is called with an empty locale.
const DefaultLocale = "en"

// Sentinel values returned by T. Translation lookups never raise: an absent
// key and an internal render fault each yield a fixed, distinguishable
// string so one bad entry cannot destabilize surrounding output.
const (
	KeyNotFound = "KEY_NOT_FOUND"
	RenderError = "TRANSLATION_ERROR"
)

// Engine binds one UI component to its translations. An engine holds a
// single (locale, merged strings) snapshot: Load replaces the whole snapshot
// and is the only mutation, reads in between see a consistent state. The
// heavy lifting — payload caching, merging, plural selectors — lives in the
// shared Store.
type Engine struct {
	store      *Store
	log        *slog.Logger
	missingKey func(locale, component, key string)
	component  string
	namespace  string
	locale     string
	strings    map[string]string
}

// Option configures an Engine during construction.
type Option func(*Engine) error

// New creates an engine for the named component. Without WithStore it joins
// the process-wide default store and shares its caches.
func New(component string, opts ...Option) (*Engine, error) {
	if component == "" {
		return nil, ErrEmptyComponent
	}

	e := &Engine{
		component: component,
		log:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if e.store == nil {
		e.store = defaultStore()
	}

	return e, nil
}

// WithStore binds the engine to a specific store instead of the process-wide
// default. Useful for isolating caches in tests.
func WithStore(store *Store) Option {
	return func(e *Engine) error {
		e.store = store
		return nil
	}
}

// WithNamespace sets the namespace consulted for a base URL when Load is
// called without one.
func WithNamespace(namespace string) Option {
	return func(e *Engine) error {
		if namespace == "" {
			return ErrEmptyNamespace
		}
		e.namespace = namespace
		return nil
	}
}

// WithLogger sets the logger for absorbed render faults. Defaults to a no-op.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) error {
		if log != nil {
			e.log = log
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called whenever T cannot find a key.
// Useful for detecting untranslated keys during development or monitoring
// gaps in translations.
func WithMissingKeyHandler(handler func(locale, component, key string)) Option {
	return func(e *Engine) error {
		e.missingKey = handler
		return nil
	}
}

// Load resolves and installs the merged strings for the locale. An empty
// locale falls back to DefaultLocale; an empty baseURL falls back to the
// URL registered for the engine's namespace. On failure the engine keeps
// its previous snapshot, so a failed reload never degrades a working one.
func (e *Engine) Load(ctx context.Context, baseURL, locale string) error {
	if locale == "" {
		locale = DefaultLocale
	}

	if baseURL == "" {
		if e.namespace == "" {
			return ErrNoBaseURL
		}
		registered, ok := e.store.NamespaceURL(e.namespace)
		if !ok {
			return fmt.Errorf("%w: namespace %q", ErrNoBaseURL, e.namespace)
		}
		baseURL = registered
	}

	merged, err := e.store.Resolve(ctx, baseURL, e.component, locale)
	if err != nil {
		return err
	}

	e.locale = locale
	e.strings = merged
	return nil
}

// T returns the rendered translation for key. It never fails: an unknown
// key (or an engine that has not loaded yet) yields KeyNotFound, and any
// fault inside interpolation is absorbed and yields RenderError.
func (e *Engine) T(key string, args ...Args) string {
	template, ok := e.strings[key]
	if !ok {
		if e.missingKey != nil {
			e.missingKey(e.locale, e.component, key)
		}
		return KeyNotFound
	}

	var a Args
	if len(args) > 0 {
		a = args[0]
	}

	ip := interpolator{locale: e.locale, resolver: e.store.resolver}
	out, err := ip.render(template, a)
	if err != nil {
		e.log.Warn("translation render failed",
			"component", e.component, "locale", e.locale, "key", key, "error", err)
		return RenderError
	}
	return out
}

// Locale returns the locale installed by the last successful Load.
func (e *Engine) Locale() string {
	return e.locale
}

// Component returns the component name the engine was created for.
func (e *Engine) Component() string {
	return e.component
}
