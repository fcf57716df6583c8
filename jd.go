// Package jd provides semantic, structural diffs for JSON, YAML, HCL, and
// TOML documents.
//
// It parses documents into a normalized tree representation, computes a
// diff.Diff between two of them, and renders that diff as native jd hunks,
// an RFC 6902 JSON Patch, an RFC 7386 JSON Merge Patch, or one of the
// report package's human-facing summaries. The same diff.Diff can be
// applied back to a document with patch.Apply to reproduce the other side.
package jd

import (
	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/parse"
	"github.com/jd-tools/jd/patch"
	"github.com/jd-tools/jd/render"
	"github.com/jd-tools/jd/tree"
)

// Re-export the core types so callers need only import this package for
// common cases.
type (
	Node    = tree.Node
	Options = tree.Options
	Diff    = diff.Diff
)

// DefaultOptions returns the zero-value comparison options: exact number
// equality, arrays compared positionally.
func DefaultOptions() Options {
	return tree.DefaultOptions()
}

// ReadJSON canonicalizes raw JSON bytes into a Node.
func ReadJSON(data []byte) (*Node, error) {
	return parse.Parse(data, parse.FormatJSON)
}

// ReadYAML canonicalizes raw YAML bytes into a Node.
func ReadYAML(data []byte) (*Node, error) {
	return parse.Parse(data, parse.FormatYAML)
}

// DiffNodes computes the structural difference between lhs and rhs under the
// given options.
func DiffNodes(lhs, rhs *Node, options Options) (Diff, error) {
	return diff.Nodes(lhs, rhs, options)
}

// DiffJSON parses two JSON documents and diffs them with default options.
func DiffJSON(lhsJSON, rhsJSON []byte) (Diff, error) {
	lhs, err := ReadJSON(lhsJSON)
	if err != nil {
		return diff.Empty(), err
	}
	rhs, err := ReadJSON(rhsJSON)
	if err != nil {
		return diff.Empty(), err
	}
	return diff.Nodes(lhs, rhs, DefaultOptions())
}

// Apply applies d to node, reproducing the document d was computed
// against, under strict or merge semantics per each element's metadata.
func Apply(node *Node, d Diff) (*Node, error) {
	return patch.Apply(node, d)
}

// RenderNative renders d in jd's own native hunk format.
func RenderNative(d Diff) string {
	return render.Native(d, render.NewConfig())
}

// RenderPatch renders d as an RFC 6902 JSON Patch document.
func RenderPatch(d Diff) (string, error) {
	return render.Patch(d)
}

// RenderMerge renders d as an RFC 7386 JSON Merge Patch document.
func RenderMerge(d Diff) (string, error) {
	return render.Merge(d)
}
