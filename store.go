package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// CommonNamespace is the reserved payload namespace shared by every
// component of a locale. Component-specific entries win on collision.
const CommonNamespace = "common"

// Payload is one decoded locale file: namespace -> key -> template.
type Payload map[string]map[string]string

// Store owns the process-scoped caches behind every engine: raw locale
// payloads, merged per-(locale, component) string maps, compiled plural
// selectors, and the namespace registry. All caches are append-only for the
// store's lifetime; no entry is ever removed. A fresh Store per test gives
// isolated caches.
type Store struct {
	client     *http.Client
	log        *slog.Logger
	resolver   *categoryResolver
	mu         sync.Mutex
	payloads   map[string]Payload
	merged     map[string]map[string]string
	namespaces map[string]string
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store) error

// NewStore creates a store with its own empty caches.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{
		client:     &http.Client{Timeout: 30 * time.Second},
		log:        slog.New(slog.DiscardHandler),
		resolver:   newCategoryResolver(),
		payloads:   make(map[string]Payload),
		merged:     make(map[string]map[string]string),
		namespaces: make(map[string]string),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply store option: %w", err)
		}
	}

	return s, nil
}

// WithHTTPClient sets the client used to fetch locale payloads.
func WithHTTPClient(client *http.Client) StoreOption {
	return func(s *Store) error {
		if client != nil {
			s.client = client
		}
		return nil
	}
}

// WithStoreLogger sets the logger for fetch activity. Defaults to a no-op.
func WithStoreLogger(log *slog.Logger) StoreOption {
	return func(s *Store) error {
		if log != nil {
			s.log = log
		}
		return nil
	}
}

// WithPayload seeds the payload cache for a locale directly, so resolves for
// that locale never fetch.
func WithPayload(locale string, payload Payload) StoreOption {
	return func(s *Store) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		s.payloads[locale] = payload
		return nil
	}
}

// WithPayloadFS seeds the payload cache from {locale}.json, {locale}.yaml or
// {locale}.yml files in fsys, typically an embed.FS. Other files are ignored.
func WithPayloadFS(fsys fs.FS) StoreOption {
	return func(s *Store) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			var unmarshal func([]byte, any) error
			switch strings.ToLower(path.Ext(filePath)) {
			case ".json":
				unmarshal = json.Unmarshal
			case ".yaml", ".yml":
				unmarshal = yaml.Unmarshal
			default:
				return nil
			}

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("reading %q: %w", filePath, err)
			}

			var payload Payload
			if err := unmarshal(data, &payload); err != nil {
				return fmt.Errorf("%w: parsing %q: %v", ErrMalformedPayload, filePath, err)
			}

			locale := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
			s.payloads[locale] = payload
			return nil
		})
	}
}

// Resolve returns the merged string map for (locale, component). A cached
// merge returns immediately with no I/O. An uncached locale triggers exactly
// one fetch of {baseURL}/{locale}.json; once the payload is cached, later
// resolves for the same locale skip the fetch for any component.
//
// Concurrent resolves for the same uncached locale may both fetch; the
// payloads are identical and the first stored one wins, so the race is
// benign.
func (s *Store) Resolve(ctx context.Context, baseURL, component, locale string) (map[string]string, error) {
	if component == "" {
		return nil, ErrEmptyComponent
	}
	if locale == "" {
		return nil, ErrEmptyLocale
	}

	mergeKey := locale + ":" + component

	s.mu.Lock()
	if merged, ok := s.merged[mergeKey]; ok {
		s.mu.Unlock()
		return merged, nil
	}
	payload, havePayload := s.payloads[locale]
	s.mu.Unlock()

	if !havePayload {
		fetched, err := s.fetch(ctx, baseURL, locale)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if existing, ok := s.payloads[locale]; ok {
			payload = existing
		} else {
			s.payloads[locale] = fetched
			payload = fetched
		}
		s.mu.Unlock()
	}

	merged := mergeStrings(payload[CommonNamespace], payload[component])

	s.mu.Lock()
	if existing, ok := s.merged[mergeKey]; ok {
		merged = existing
	} else {
		s.merged[mergeKey] = merged
	}
	s.mu.Unlock()

	return merged, nil
}

func (s *Store) fetch(ctx context.Context, baseURL, locale string) (Payload, error) {
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}

	url := strings.TrimRight(baseURL, "/") + "/" + locale + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrLoadFailed, url, err)
	}

	s.log.DebugContext(ctx, "fetching locale payload", "locale", locale, "url", url)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		loadErr := &LoadError{
			Locale:     locale,
			URL:        url,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
		s.log.WarnContext(ctx, "locale payload fetch failed", "locale", locale, "status", resp.StatusCode)
		return nil, loadErr
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: locale %q from %s: %v", ErrMalformedPayload, locale, url, err)
	}

	return payload, nil
}

// mergeStrings overlays component entries on common ones; the component wins
// on key collision. The result is never mutated after caching.
func mergeStrings(common, component map[string]string) map[string]string {
	merged := make(map[string]string, len(common)+len(component))
	maps.Copy(merged, common)
	maps.Copy(merged, component)
	return merged
}

// defaultStore backs engines created without WithStore, so every such engine
// in the process shares one set of append-only caches.
var defaultStore = sync.OnceValue(func() *Store {
	s, err := NewStore()
	if err != nil {
		panic(err) // unreachable: no options applied
	}
	return s
})
