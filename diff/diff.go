// Package diff computes structural differences between canonical trees,
// producing a sequence of hunks that the patch and render packages consume.
package diff

import (
	"sort"

	"github.com/jd-tools/jd/tree"
)

// Metadata carries out-of-band information about a hunk: whether it should
// be interpreted with merge-patch semantics, which object keys identify set
// elements, and an optional color rendering hint. Metadata set on one
// element is inherited forward by later elements until overridden, so a
// single header can apply to an entire run of hunks.
type Metadata struct {
	Merge   bool
	SetKeys []string
	Color   *bool
}

// IsEffective reports whether m carries any information worth inheriting.
func (m Metadata) IsEffective() bool {
	return m.Merge || m.SetKeys != nil || m.Color != nil
}

// Absorb folds other's fields into m, with other taking precedence when set.
func (m *Metadata) Absorb(other Metadata) {
	if other.Merge {
		m.Merge = true
	}
	if other.SetKeys != nil {
		m.SetKeys = other.SetKeys
	}
	if other.Color != nil {
		m.Color = other.Color
	}
}

// RenderHeader renders the native-format metadata header line, or the empty
// string if there is nothing to announce.
func (m Metadata) RenderHeader() string {
	if m.Merge {
		return "^ {\"Merge\":true}\n"
	}
	return ""
}

// Element is a single diff hunk: a path, optional list-context before/after
// the change, and the removed/added values at that path.
type Element struct {
	Metadata *Metadata
	Path     tree.Path
	Before   []*tree.Node
	Remove   []*tree.Node
	Add      []*tree.Node
	After    []*tree.Node
}

// hasChanges reports whether the element actually removes or adds anything.
func (e *Element) hasChanges() bool {
	return len(e.Remove) > 0 || len(e.Add) > 0
}

// Diff is an ordered sequence of Elements.
type Diff struct {
	Elements []Element
}

// Empty returns a Diff with no elements.
func Empty() Diff { return Diff{} }

// FromElements builds a Diff from elements.
func FromElements(elements []Element) Diff { return Diff{Elements: elements} }

// Len returns the number of elements.
func (d Diff) Len() int { return len(d.Elements) }

// IsEmpty reports whether the diff has no elements.
func (d Diff) IsEmpty() bool { return len(d.Elements) == 0 }

// Nodes computes the structural diff between lhs and rhs under options.
func Nodes(lhs, rhs *tree.Node, options tree.Options) (Diff, error) {
	elements, err := diffImpl(lhs, rhs, tree.RootPath(), options)
	if err != nil {
		return Diff{}, err
	}
	return FromElements(elements), nil
}

func diffImpl(lhs, rhs *tree.Node, path tree.Path, options tree.Options) ([]Element, error) {
	if lhs.EqWithOptions(rhs, options) {
		return nil, nil
	}

	if lhs.Kind() == tree.KindObject && rhs.Kind() == tree.KindObject {
		return diffObjects(lhs.ObjectValue(), rhs.ObjectValue(), path, options)
	}
	if lhs.Kind() == tree.KindArray && rhs.Kind() == tree.KindArray {
		switch options.ArrayMode() {
		case tree.ArrayModeList:
			return diffLists(lhs.ArrayValue(), rhs.ArrayValue(), path, options)
		default:
			return nil, &ArrayModeNotImplementedError{Mode: options.ArrayMode()}
		}
	}
	return diffPrimitives(lhs, rhs, path), nil
}

func sortedKeys(m map[string]*tree.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
