// Package cli holds the CLI argument surface, file/stdin I/O, and output
// format dispatch used by cmd/jd. It is the "CLI argument normalizer" and
// "file I/O" collaborators the core engine declares out of scope.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jd-tools/jd/tree"
)

// Options mirrors the jd command line's flag surface.
type Options struct {
	Color         bool
	Format        string // jd|patch|merge|raw|stat|side-by-side|gitdiff
	Output        string // "-" or empty means stdout
	PatchMode     bool
	Translate     string
	YAML          bool
	Precision     float64
	Set           bool
	MultiSet      bool
	SetKeys       []string
	OptsJSON      string
	Port          int
	GitDiffDriver bool
	Recursive     bool
	MaxValueLen   int
}

// optionsOverride is the shape accepted by -opts JSON: a subset of
// tree.Options applied before the discrete flags, so discrete flags win.
type optionsOverride struct {
	Precision *float64 `json:"precision"`
	Set       *bool    `json:"set"`
	MultiSet  *bool    `json:"mset"`
	SetKeys   []string `json:"setkeys"`
}

// Validate rejects conflicting or unsupported flag combinations.
func (o *Options) Validate() error {
	if o.PatchMode && o.Translate != "" {
		return fmt.Errorf("-p and -t are mutually exclusive")
	}
	if o.Set && o.MultiSet {
		return fmt.Errorf("-set and -mset are mutually exclusive")
	}
	if o.Port != 0 {
		return notSupported("-port")
	}
	if o.GitDiffDriver {
		return notSupported("-git-diff-driver")
	}
	return nil
}

func notSupported(flag string) error {
	return fmt.Errorf("%s is not supported", flag)
}

// ToTreeOptions builds a tree.Options from o, applying -opts JSON first
// (if present) and letting the discrete flags override it.
func (o *Options) ToTreeOptions() (tree.Options, error) {
	opts := tree.DefaultOptions()

	if o.OptsJSON != "" {
		var override optionsOverride
		if err := json.Unmarshal([]byte(o.OptsJSON), &override); err != nil {
			return opts, fmt.Errorf("invalid -opts JSON: %w", err)
		}
		var err error
		if override.Precision != nil {
			opts, err = opts.WithPrecision(*override.Precision)
			if err != nil {
				return opts, err
			}
		}
		if override.Set != nil && *override.Set {
			opts, err = opts.WithArrayMode(tree.ArrayModeSet)
			if err != nil {
				return opts, err
			}
		}
		if override.MultiSet != nil && *override.MultiSet {
			opts, err = opts.WithArrayMode(tree.ArrayModeMultiSet)
			if err != nil {
				return opts, err
			}
		}
		if len(override.SetKeys) > 0 {
			opts, err = opts.WithSetKeys(override.SetKeys)
			if err != nil {
				return opts, err
			}
		}
	}

	var err error
	if o.Precision != 0 {
		opts, err = opts.WithPrecision(o.Precision)
		if err != nil {
			return opts, err
		}
	}
	if o.Set {
		opts, err = opts.WithArrayMode(tree.ArrayModeSet)
		if err != nil {
			return opts, err
		}
	}
	if o.MultiSet {
		opts, err = opts.WithArrayMode(tree.ArrayModeMultiSet)
		if err != nil {
			return opts, err
		}
	}
	if len(o.SetKeys) > 0 {
		opts, err = opts.WithSetKeys(o.SetKeys)
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}
