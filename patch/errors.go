package patch

import (
	"strconv"

	"github.com/jd-tools/jd/tree"
)

// PatchError reports a failure to apply a diff element. Message text is
// kept stable across releases since callers (notably the CLI and tests)
// match on specific substrings.
type PatchError struct {
	msg string
}

func (e *PatchError) Error() string { return e.msg }

func nonSetDiffError(oldValues, newValues []*tree.Node, path []tree.PathSegment) *PatchError {
	if len(oldValues) > 1 {
		return &PatchError{msg: "invalid diff: multiple removals from non-set at " + pathToString(path)}
	}
	return &PatchError{msg: "invalid diff: multiple additions to a non-set at " + pathToString(path)}
}

func expectValueError(expected, found *tree.Node, path []tree.PathSegment) *PatchError {
	return &PatchError{msg: "found " + nodeJSON(found) + " at " + pathToString(path) + ": expected " + nodeJSON(expected)}
}

func expectedCollectionError(node *tree.Node, segment tree.PathSegment) *PatchError {
	expected := "JSON array"
	if !segment.IsIndex() {
		expected = "JSON object"
	}
	return &PatchError{msg: "found " + nodeJSON(node) + " at " + segment.String() + ": expected " + expected}
}

func invalidPathElementError(segment tree.PathSegment) *PatchError {
	typeName := "float64"
	if !segment.IsIndex() {
		typeName = "string"
	}
	return &PatchError{msg: "invalid path element " + typeName + ": expected float64"}
}

func indexOutOfBounds(index int64) string {
	return "patch index out of bounds: " + itoa64(index)
}

func itoa(i int) string      { return strconv.Itoa(i) }
func itoa64(i int64) string { return strconv.FormatInt(i, 10) }

func nodeJSON(node *tree.Node) string {
	if node == nil || node.IsVoid() {
		return ""
	}
	if node.Kind() == tree.KindNumber {
		v := node.NumberValue().Get()
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	data, err := node.MarshalCanonicalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func pathToString(segments []tree.PathSegment) string {
	p := tree.Path(segments)
	return p.String()
}
