package diff

import "github.com/jd-tools/jd/tree"

// diffPrimitives produces a single replacement hunk for non-container
// nodes, eliding either side when it is the Void sentinel.
func diffPrimitives(lhs, rhs *tree.Node, path tree.Path) []Element {
	element := Element{Path: path}
	if !lhs.IsVoid() {
		element.Remove = append(element.Remove, lhs)
	}
	if !rhs.IsVoid() {
		element.Add = append(element.Add, rhs)
	}
	return []Element{element}
}
