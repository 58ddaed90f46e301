package i18n

// RegisterNamespace maps a namespace to the base URL engines fall back to
// when Load is called without an explicit URL. Registering the same
// namespace again replaces the URL.
func (s *Store) RegisterNamespace(namespace, baseURL string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	s.mu.Lock()
	s.namespaces[namespace] = baseURL
	s.mu.Unlock()

	return nil
}

// NamespaceURL returns the base URL registered for a namespace.
func (s *Store) NamespaceURL(namespace string) (string, bool) {
	s.mu.Lock()
	baseURL, ok := s.namespaces[namespace]
	s.mu.Unlock()
	return baseURL, ok
}

// RegisterNamespace registers a namespace on the process-wide default store.
func RegisterNamespace(namespace, baseURL string) error {
	return defaultStore().RegisterNamespace(namespace, baseURL)
}
