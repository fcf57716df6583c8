package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// Translate converts text between the formats named by target: "jd2patch"
// (native diff to JSON Patch), "jd2merge" (native diff to merge patch),
// "patch2jd" (JSON Patch to native diff, best effort), "yaml2json", and
// "json2yaml".
func Translate(target string, text string) (string, error) {
	switch target {
	case "jd2patch":
		d, err := ParseNative(text)
		if err != nil {
			return "", err
		}
		return Patch(d)
	case "jd2merge":
		d, err := ParseNative(text)
		if err != nil {
			return "", err
		}
		return Merge(d)
	case "jd2raw":
		d, err := ParseNative(text)
		if err != nil {
			return "", err
		}
		return Raw(d)
	case "patch2jd":
		d, err := parseJSONPatch(text)
		if err != nil {
			return "", err
		}
		return Native(d, NewConfig()), nil
	case "yaml2json":
		node, err := tree.FromYAMLBytes([]byte(text))
		if err != nil {
			return "", err
		}
		data, err := node.MarshalCanonicalJSON()
		if err != nil {
			return "", newRenderError(err.Error())
		}
		return string(data), nil
	case "json2yaml":
		node, err := tree.FromJSONBytes([]byte(text))
		if err != nil {
			return "", err
		}
		value, err := node.ToJSONValue()
		if err != nil {
			return "", newRenderError(err.Error())
		}
		data, err := yaml.Marshal(value)
		if err != nil {
			return "", newRenderError(err.Error())
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%s is not supported", target)
	}
}

// parseJSONPatch reconstructs a best-effort diff.Diff from an RFC 6902
// document: consecutive test+remove pairs at the same pointer become a
// Remove, standalone add ops become an Add. Context (before/after) cannot
// be recovered since JSON Patch carries none.
func parseJSONPatch(text string) (diff.Diff, error) {
	var ops []patchOp
	if err := json.Unmarshal([]byte(text), &ops); err != nil {
		return diff.Diff{}, newRenderError("invalid JSON Patch: " + err.Error())
	}

	byPointer := make(map[string]*diff.Element)
	var order []string

	for i := 0; i < len(ops); i++ {
		op := ops[i]
		element, ok := byPointer[op.Path]
		if !ok {
			path, err := pointerToPath(op.Path)
			if err != nil {
				return diff.Diff{}, err
			}
			element = &diff.Element{Path: path}
			byPointer[op.Path] = element
			order = append(order, op.Path)
		}

		switch op.Op {
		case "test":
			// A test preceding a remove is consumed there; a test with no
			// following remove at the same pointer describes before/after
			// context, which patch2jd cannot place unambiguously and so
			// drops (documented lossy conversion).
		case "remove":
			node, err := tree.FromJSONBytes(mustMarshal(op.Value))
			if err != nil {
				return diff.Diff{}, err
			}
			element.Remove = append(element.Remove, node)
		case "add":
			node, err := tree.FromJSONBytes(mustMarshal(op.Value))
			if err != nil {
				return diff.Diff{}, err
			}
			element.Add = append([]*tree.Node{node}, element.Add...)
		default:
			return diff.Diff{}, newRenderError("unsupported JSON Patch op: " + op.Op)
		}
	}

	elements := make([]diff.Element, 0, len(order))
	for _, pointer := range order {
		elements = append(elements, *byPointer[pointer])
	}
	return diff.FromElements(elements), nil
}

func mustMarshal(v interface{}) []byte {
	data, _ := json.Marshal(v)
	return data
}

func pointerToPath(pointer string) (tree.Path, error) {
	if pointer == "" {
		return tree.RootPath(), nil
	}
	if pointer[0] != '/' {
		return nil, newRenderError("invalid JSON Pointer: " + pointer)
	}
	segments := splitPointer(pointer[1:])
	path := tree.RootPath()
	for _, segment := range segments {
		unescaped := unescapePointerSegment(segment)
		if unescaped == "-" {
			path = path.Append(tree.Index(-1))
			continue
		}
		if isUint(unescaped) {
			var index int64
			fmt.Sscanf(unescaped, "%d", &index)
			path = path.Append(tree.Index(index))
			continue
		}
		path = path.Append(tree.Key(unescaped))
	}
	return path, nil
}

func splitPointer(s string) []string {
	var parts []string
	var buf []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			parts = append(parts, string(buf))
			buf = nil
			continue
		}
		buf = append(buf, s[i])
	}
	parts = append(parts, string(buf))
	return parts
}

func unescapePointerSegment(segment string) string {
	out := make([]byte, 0, len(segment))
	for i := 0; i < len(segment); i++ {
		if segment[i] == '~' && i+1 < len(segment) {
			switch segment[i+1] {
			case '0':
				out = append(out, '~')
				i++
				continue
			case '1':
				out = append(out, '/')
				i++
				continue
			}
		}
		out = append(out, segment[i])
	}
	return string(out)
}

func isUint(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
