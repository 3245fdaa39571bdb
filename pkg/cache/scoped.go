package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The server uses this to keep per-library preview caches apart from
// the shared geometry cache.
//
// Example usage:
//
//	// Design-specific keys for library previews
//	designKeyer := NewScopedKeyer(NewDefaultKeyer(), "design:abc123:")
//
//	// Global keys for ad-hoc renders
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SpecKey generates a prefixed key for resolved spec caching.
func (k *ScopedKeyer) SpecKey(docHash string) string {
	return k.prefix + k.inner.SpecKey(docHash)
}

// GeometryKey generates a prefixed key for computed profile caching.
func (k *ScopedKeyer) GeometryKey(specHash string) string {
	return k.prefix + k.inner.GeometryKey(specHash)
}

// ArtifactKey generates a prefixed key for rendered artifact caching.
func (k *ScopedKeyer) ArtifactKey(profileHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(profileHash, opts)
}
