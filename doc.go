// Package i18n provides translated, parameterized text for independently
// loaded UI components.
//
// Each component owns a translation namespace that is merged with the shared
// "common" namespace and resolved lazily per locale. Locale payloads are
// fetched once per locale and cached process-wide; the merged string map for
// every (locale, component) pair is cached as well, so any number of engines
// across any number of components trigger at most one fetch per distinct
// locale.
//
// # Basic Usage
//
// Create an engine per component, load a locale, and look up keys:
//
//	engine, err := i18n.New("checkout")
//	if err != nil {
//		// handle error
//	}
//
//	if err := engine.Load(ctx, "https://cdn.example.com/locales", "fr"); err != nil {
//		// handle error
//	}
//
//	msg := engine.T("title")
//
// Lookups never fail: an unknown key returns i18n.KeyNotFound and any fault
// inside rendering returns i18n.RenderError.
//
// # Interpolation
//
// Templates support positional and named arguments:
//
//	engine.T("greeting", i18n.Positional{"John"})
//	// "Hello {{0}}" -> "Hello John"
//
//	engine.T("inbox", i18n.Named{"name": "John", "count": 5})
//	// "{{name}}, you have {{count}} messages" -> "John, you have 5 messages"
//
// Named arguments additionally enable two plural mechanisms, applied in
// order before plain substitution. Explicit plural blocks select a form by
// exact count or CLDR cardinal category:
//
//	"{{count, plural, =0 {No items} =1 {One item} other {{{count}} items}}}"
//	// with i18n.Named{"count": 5} -> "5 items"
//
// Auto-pluralized word references inflect a word by the category of a
// counter, using built-in morphology for English and French:
//
//	"J'ai acheté {{count}} {{croissant:count}}"
//	// with i18n.Named{"count": 2} in locale "fr" -> "J'ai acheté 2 croissants"
//
// # Namespaces
//
// A component can be bound to a registered namespace instead of passing a
// URL to every Load call:
//
//	i18n.RegisterNamespace("shop", "https://cdn.example.com/locales/shop")
//
//	engine, err := i18n.New("checkout", i18n.WithNamespace("shop"))
//	err = engine.Load(ctx, "", "de")
//
// # Stores
//
// All caches live on a Store. Engines share the process-wide default store
// unless given their own with WithStore, which is how tests isolate caches.
// Stores can be seeded from embedded JSON or YAML payloads via WithPayloadFS
// so hosts ship defaults without a fetch.
package i18n
