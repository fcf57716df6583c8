package render

import (
	"strconv"
	"strings"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// ParseNative parses jd's native hunk format back into a diff.Diff, the
// inverse of Native. Used by -p (patch mode, FILE1 is a previously
// rendered diff) and the jd2patch, jd2merge and jd2raw translate targets.
// Colored input is not
// supported: render with Config{Color: false} before round-tripping.
func ParseNative(text string) (diff.Diff, error) {
	lines := strings.Split(text, "\n")
	var elements []diff.Element
	var current *diff.Element
	var sawChange bool
	var pendingMerge bool

	flush := func() {
		if current != nil {
			elements = append(elements, *current)
		}
	}

	for _, line := range lines {
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "^ "):
			pendingMerge = strings.Contains(line, `"Merge":true`)
		case strings.HasPrefix(line, "@ "):
			flush()
			path, err := parsePathJSON(strings.TrimPrefix(line, "@ "))
			if err != nil {
				return diff.Diff{}, err
			}
			element := &diff.Element{Path: path}
			if pendingMerge {
				element.Metadata = &diff.Metadata{Merge: true}
				pendingMerge = false
			}
			current = element
			sawChange = false
		case current == nil:
			return diff.Diff{}, newRenderError("invalid native diff: content before first @ header")
		case line == "[" || line == "]":
			if !sawChange {
				current.Before = append(current.Before, tree.Void)
			} else {
				current.After = append(current.After, tree.Void)
			}
		case strings.HasPrefix(line, "  "):
			node, err := parseNativeValue(line[2:])
			if err != nil {
				return diff.Diff{}, err
			}
			if !sawChange {
				current.Before = append(current.Before, node)
			} else {
				current.After = append(current.After, node)
			}
		case strings.HasPrefix(line, "- "):
			sawChange = true
			node, err := parseNativeValue(line[2:])
			if err != nil {
				return diff.Diff{}, err
			}
			current.Remove = append(current.Remove, node)
		case line == "+":
			sawChange = true
			current.Add = append(current.Add, tree.Void)
		case strings.HasPrefix(line, "+ "):
			sawChange = true
			node, err := parseNativeValue(line[2:])
			if err != nil {
				return diff.Diff{}, err
			}
			current.Add = append(current.Add, node)
		default:
			return diff.Diff{}, newRenderError("invalid native diff line: " + line)
		}
	}
	flush()

	return diff.FromElements(elements), nil
}

// parseNativeValue decodes the JSON text nodeToJSON produced for a single
// content line: a scalar literal or a full JSON value for composite nodes.
func parseNativeValue(text string) (*tree.Node, error) {
	node, err := tree.FromJSONBytes([]byte(text))
	if err != nil {
		return nil, newRenderError("invalid native diff value: " + text)
	}
	return node, nil
}

func parsePathJSON(text string) (tree.Path, error) {
	text = strings.TrimSpace(text)
	if text == "[]" || text == "" {
		return tree.RootPath(), nil
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
	parts := splitTopLevel(inner)
	path := tree.RootPath()
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, `"`) {
			key, err := strconv.Unquote(part)
			if err != nil {
				return nil, newRenderError("invalid path segment: " + part)
			}
			path = path.Append(tree.Key(key))
			continue
		}
		index, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, newRenderError("invalid path segment: " + part)
		}
		path = path.Append(tree.Index(index))
	}
	return path, nil
}

func splitTopLevel(s string) []string {
	if s == "" {
		return nil
	}
	var parts []string
	var buf strings.Builder
	inString := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"' && (i == 0 || s[i-1] != '\\'):
			inString = !inString
			buf.WriteByte(ch)
		case ch == ',' && !inString:
			parts = append(parts, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(ch)
		}
	}
	parts = append(parts, buf.String())
	return parts
}
