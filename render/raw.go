package render

import (
	"encoding/json"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// rawElement mirrors diff.Element for debug serialization, using plain
// Go types so Void nodes (which MarshalCanonicalJSON refuses to encode)
// can still be inspected.
type rawElement struct {
	Metadata *diff.Metadata `json:"metadata,omitempty"`
	Path     tree.Path      `json:"path"`
	Before   []interface{}  `json:"before,omitempty"`
	Remove   []interface{}  `json:"remove,omitempty"`
	Add      []interface{}  `json:"add,omitempty"`
	After    []interface{}  `json:"after,omitempty"`
}

// Raw serializes d's element sequence as JSON for debugging. Void nodes
// are rendered as the literal string "<void>" since JSON has no value for
// the absence of a value.
func Raw(d diff.Diff) (string, error) {
	elements := make([]rawElement, len(d.Elements))
	for i, element := range d.Elements {
		elements[i] = rawElement{
			Metadata: element.Metadata,
			Path:     element.Path,
			Before:   rawNodes(element.Before),
			Remove:   rawNodes(element.Remove),
			Add:      rawNodes(element.Add),
			After:    rawNodes(element.After),
		}
	}
	data, err := json.Marshal(elements)
	if err != nil {
		return "", newRenderError(err.Error())
	}
	return string(data), nil
}

func rawNodes(nodes []*tree.Node) []interface{} {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]interface{}, len(nodes))
	for i, node := range nodes {
		out[i] = rawNode(node)
	}
	return out
}

func rawNode(node *tree.Node) interface{} {
	if node.IsVoid() {
		return "<void>"
	}
	v, err := node.ToJSONValue()
	if err != nil {
		return "<void>"
	}
	return v
}
