package cache

import "fmt"

// RuleKeyOpts holds the strategy parameters that change its result.
type RuleKeyOpts struct {
	MaxPasses int  `json:"max_passes,omitempty"`
	Length    int  `json:"length,omitempty"`
	Workable  bool `json:"workable,omitempty"`
	OnlyMax   bool `json:"only_max,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// RuleKey identifies the rule a strategy produces for a tiling.
	RuleKey(strategy, tilingHash string, opts RuleKeyOpts) string

	// SeparationsKey identifies the list of all separations of a tiling.
	SeparationsKey(tilingHash string, onlyMax bool) string
}

// DefaultKeyer hashes the key components under a fixed prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RuleKey returns "rule:<strategy>:<sha256 of hash and options>".
func (DefaultKeyer) RuleKey(strategy, tilingHash string, opts RuleKeyOpts) string {
	return hashKey(fmt.Sprintf("rule:%s", strategy), tilingHash, opts)
}

// SeparationsKey returns "separations:<sha256 of hash and flag>".
func (DefaultKeyer) SeparationsKey(tilingHash string, onlyMax bool) string {
	return hashKey("separations", tilingHash, onlyMax)
}

var _ Keyer = DefaultKeyer{}
