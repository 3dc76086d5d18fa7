package nlp

// DefaultRegistry assembles the built-in catalogs. Registration order
// is fixed: first-match semantics depend on it, and the debug catalog
// must precede capture so crash-report phrasings are not swallowed by
// the generic log definitions.
func DefaultRegistry() *Registry {
	return NewRegistry(
		simulatorCatalog(),
		appCatalog(),
		uiCatalog(),
		accessibilityCatalog(),
		debugCatalog(),
		captureCatalog(),
		miscCatalog(),
		verificationCatalog(),
	)
}
