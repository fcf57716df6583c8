package tree

import (
	"sort"
	"strings"
)

// ArrayMode controls how arrays are interpreted during equality, hashing,
// and diff operations.
type ArrayMode int

const (
	// ArrayModeList treats arrays as ordered sequences (the default).
	ArrayModeList ArrayMode = iota
	// ArrayModeSet treats arrays as order-insensitive sets of unique
	// elements.
	ArrayModeSet
	// ArrayModeMultiSet treats arrays as order-insensitive, duplicate-aware
	// collections.
	ArrayModeMultiSet
)

// String renders the array mode the way it appears in CLI flags and error
// messages.
func (m ArrayMode) String() string {
	switch m {
	case ArrayModeList:
		return "list"
	case ArrayModeSet:
		return "set"
	case ArrayModeMultiSet:
		return "multiset"
	default:
		return "unknown"
	}
}

// Options configures equality, hashing, and diff behavior. The zero value
// is the default: list-mode arrays, zero precision, no set keys.
//
// Options is immutable; the With* methods return a new, validated copy.
type Options struct {
	arrayMode ArrayMode
	precision float64
	setKeys   []string
}

// DefaultOptions returns the zero-value Options (list mode, zero precision).
func DefaultOptions() Options {
	return Options{}
}

// ArrayMode returns the configured array interpretation mode.
func (o Options) ArrayMode() ArrayMode { return o.arrayMode }

// Precision returns the numeric equality tolerance.
func (o Options) Precision() float64 { return o.precision }

// SetKeys returns the configured object-identity keys used for set-mode
// array diffing, or nil if none were configured.
func (o Options) SetKeys() []string {
	if o.setKeys == nil {
		return nil
	}
	out := make([]string, len(o.setKeys))
	copy(out, o.setKeys)
	return out
}

// WithArrayMode returns a copy of o with the array mode set to mode.
func (o Options) WithArrayMode(mode ArrayMode) (Options, error) {
	next := o
	next.arrayMode = mode
	if err := next.validate(); err != nil {
		return Options{}, err
	}
	return next, nil
}

// WithPrecision returns a copy of o with the numeric tolerance set to
// precision.
func (o Options) WithPrecision(precision float64) (Options, error) {
	next := o
	next.precision = precision
	if err := next.validate(); err != nil {
		return Options{}, err
	}
	return next, nil
}

// WithSetKeys returns a copy of o with set_keys configured to keys. Keys
// are trimmed, deduplicated, and sorted; configuring set keys forces Set
// array mode.
func (o Options) WithSetKeys(keys []string) (Options, error) {
	collected := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return Options{}, ErrEmptySetKey
		}
		collected = append(collected, strings.TrimSpace(key))
	}
	if len(collected) == 0 {
		return Options{}, ErrEmptySetKey
	}
	sort.Strings(collected)
	collected = dedupeSorted(collected)

	next := o
	next.setKeys = collected
	next.arrayMode = ArrayModeSet
	if err := next.validate(); err != nil {
		return Options{}, err
	}
	return next, nil
}

func (o Options) validate() error {
	if o.arrayMode != ArrayModeList && o.precision > 0.0 {
		return ErrPrecisionIncompatible
	}
	if o.setKeys != nil && o.arrayMode != ArrayModeSet {
		return ErrSetKeysRequireSetMode
	}
	return nil
}

func dedupeSorted(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
