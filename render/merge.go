package render

import (
	"encoding/json"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/patch"
	"github.com/jd-tools/jd/tree"
)

// Merge renders d as an RFC 7386 JSON Merge Patch document. Every element
// must be effectively merge-mode; reject a diff containing any strict hunk
// since a merge patch cannot express a positional list edit.
func Merge(d diff.Diff) (string, error) {
	if d.IsEmpty() {
		return "{}", nil
	}

	var inherited diff.Metadata
	normalized := make([]diff.Element, 0, len(d.Elements))

	for _, element := range d.Elements {
		if element.Metadata != nil {
			inherited = *element.Metadata
		}
		isMerge := inherited.Merge
		if element.Metadata != nil {
			isMerge = element.Metadata.Merge
		}
		if !isMerge {
			return "", newRenderError("cannot render non-merge element as merge")
		}

		clone := element
		clone.Add = make([]*tree.Node, len(element.Add))
		for i, value := range element.Add {
			if value.IsVoid() {
				clone.Add[i] = tree.Null
			} else {
				clone.Add[i] = value
			}
		}
		normalized = append(normalized, clone)
	}

	normalizedDiff := diff.FromElements(normalized)
	patched, err := patch.Apply(tree.Void, normalizedDiff)
	if err != nil {
		return "", newRenderError(err.Error())
	}
	value, err := patched.ToJSONValue()
	if err != nil {
		return "", newRenderError("merge patch produced void value")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", newRenderError(err.Error())
	}
	return string(data), nil
}
