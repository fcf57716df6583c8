package render

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// patchOp is one operation of an RFC 6902 JSON Patch document.
type patchOp struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

func testOp(pointer string, value interface{}) patchOp   { return patchOp{Op: "test", Path: pointer, Value: value} }
func removeOp(pointer string, value interface{}) patchOp { return patchOp{Op: "remove", Path: pointer, Value: value} }
func addOp(pointer string, value interface{}) patchOp    { return patchOp{Op: "add", Path: pointer, Value: value} }

// Patch renders d as an RFC 6902 JSON Patch document.
func Patch(d diff.Diff) (string, error) {
	if d.IsEmpty() {
		return "[]", nil
	}

	var ops []patchOp

	for _, element := range d.Elements {
		if len(element.Remove) == 0 && len(element.Add) == 0 {
			return "", newRenderError("cannot render empty diff element as JSON Patch op")
		}

		pointer, err := pathToPointer(element.Path)
		if err != nil {
			return "", err
		}

		if len(element.Before) > 1 {
			return "", newRenderError("only one line of before context supported. got " + strconv.Itoa(len(element.Before)))
		}
		if len(element.Before) == 1 && !element.Before[0].IsVoid() {
			if len(element.Path) == 0 {
				return "", newRenderError("expected path. got empty path")
			}
			last := element.Path[len(element.Path)-1]
			if !last.IsIndex() {
				return "", newRenderError("wanted path index. got object key")
			}
			prevPath := append(append(tree.Path{}, element.Path[:len(element.Path)-1]...), tree.Index(last.IndexValue()-1))
			prevPointer, err := pathToPointer(prevPath)
			if err != nil {
				return "", err
			}
			value, err := nodeToJSONValue(element.Before[0])
			if err != nil {
				return "", err
			}
			ops = append(ops, testOp(prevPointer, value))
		}

		if len(element.After) > 1 {
			return "", newRenderError("only one line of after context supported. got " + strconv.Itoa(len(element.After)))
		}
		if len(element.After) == 1 && !element.After[0].IsVoid() {
			if len(element.Path) == 0 {
				return "", newRenderError("expected path. got empty path")
			}
			last := element.Path[len(element.Path)-1]
			if !last.IsIndex() {
				return "", newRenderError("wanted path index. got object key")
			}
			nextIndex := last.IndexValue() + int64(len(element.Remove))
			nextPath := append(append(tree.Path{}, element.Path[:len(element.Path)-1]...), tree.Index(nextIndex))
			nextPointer, err := pathToPointer(nextPath)
			if err != nil {
				return "", err
			}
			value, err := nodeToJSONValue(element.After[0])
			if err != nil {
				return "", err
			}
			ops = append(ops, testOp(nextPointer, value))
		}

		if len(element.Remove) > 0 && element.Remove[0].IsVoid() {
			// Merge deletions encode void in remove; skip JSON Patch removal.
		} else {
			for _, value := range element.Remove {
				jv, err := nodeToJSONValue(value)
				if err != nil {
					return "", err
				}
				ops = append(ops, testOp(pointer, jv))
				ops = append(ops, removeOp(pointer, jv))
			}
		}

		for i := len(element.Add) - 1; i >= 0; i-- {
			value := element.Add[i]
			if value.IsVoid() {
				continue
			}
			jv, err := nodeToJSONValue(value)
			if err != nil {
				return "", err
			}
			ops = append(ops, addOp(pointer, jv))
		}
	}

	if ops == nil {
		ops = []patchOp{}
	}
	data, err := json.Marshal(ops)
	if err != nil {
		return "", newRenderError(err.Error())
	}
	return string(data), nil
}

func nodeToJSONValue(node *tree.Node) (interface{}, error) {
	v, err := node.ToJSONValue()
	if err != nil {
		return nil, newRenderError("cannot encode void value in JSON Patch")
	}
	return v, nil
}

func pathToPointer(path tree.Path) (string, error) {
	var out strings.Builder
	for _, segment := range path {
		out.WriteByte('/')
		if segment.IsIndex() {
			if segment.IndexValue() == -1 {
				out.WriteByte('-')
			} else {
				out.WriteString(strconv.FormatInt(segment.IndexValue(), 10))
			}
			continue
		}
		key := segment.KeyValue()
		if _, err := strconv.ParseInt(key, 10, 64); err == nil {
			return "", newRenderError("JSON Pointer does not support object keys that look like numbers: " + key)
		}
		if key == "-" {
			return "", newRenderError("JSON Pointer does not support object key '-'")
		}
		out.WriteString(escapePointerSegment(key))
	}
	return out.String(), nil
}

func escapePointerSegment(segment string) string {
	segment = strings.ReplaceAll(segment, "~", "~0")
	segment = strings.ReplaceAll(segment, "/", "~1")
	return segment
}
