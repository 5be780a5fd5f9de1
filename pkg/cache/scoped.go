package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis instance without seeing each other's entries.
//
// Example usage:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "wayfinder:staging:")
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

// ReportKey generates a prefixed report key.
func (k *ScopedKeyer) ReportKey(defHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(defHash, opts)
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(defHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(defHash, opts)
}
