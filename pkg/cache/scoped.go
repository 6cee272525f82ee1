package cache

// ScopedKeyer prefixes every key of an inner Keyer. Backends shared between
// projects use it to keep their entries apart.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "av123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a keyer that prepends prefix. A nil inner keyer
// means the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RuleKey returns the prefixed rule key.
func (k *ScopedKeyer) RuleKey(strategy, tilingHash string, opts RuleKeyOpts) string {
	return k.prefix + k.inner.RuleKey(strategy, tilingHash, opts)
}

// SeparationsKey returns the prefixed separations key.
func (k *ScopedKeyer) SeparationsKey(tilingHash string, onlyMax bool) string {
	return k.prefix + k.inner.SeparationsKey(tilingHash, onlyMax)
}
