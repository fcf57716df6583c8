package tree

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PathSegment is one element of a Path: either an object Key or an array
// Index. Index == -1 conventionally means "append" in patch contexts.
type PathSegment struct {
	key      string
	index    int64
	isIndex  bool
}

// Key constructs an object-key path segment.
func Key(k string) PathSegment { return PathSegment{key: k} }

// Index constructs an array-index path segment.
func Index(i int64) PathSegment { return PathSegment{index: i, isIndex: true} }

// IsIndex reports whether the segment is an array index.
func (s PathSegment) IsIndex() bool { return s.isIndex }

// KeyValue returns the object key; only meaningful when !IsIndex().
func (s PathSegment) KeyValue() string { return s.key }

// IndexValue returns the array index; only meaningful when IsIndex().
func (s PathSegment) IndexValue() int64 { return s.index }

// String renders the segment the way it appears in human-facing path
// descriptions (error messages): keys unquoted, indices as plain integers.
func (s PathSegment) String() string {
	if s.isIndex {
		return fmt.Sprintf("%d", s.index)
	}
	return s.key
}

// MarshalJSON encodes the segment as a bare JSON string or integer.
func (s PathSegment) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return json.Marshal(s.index)
	}
	return json.Marshal(s.key)
}

// UnmarshalJSON decodes a bare JSON string or integer into the segment.
func (s *PathSegment) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*s = PathSegment{key: asString}
		return nil
	}
	var asIndex int64
	if err := json.Unmarshal(data, &asIndex); err == nil {
		*s = PathSegment{index: asIndex, isIndex: true}
		return nil
	}
	return fmt.Errorf("invalid path segment: %s", string(data))
}

// Path is an ordered sequence of PathSegment values addressing a location
// within a Node tree.
type Path []PathSegment

// RootPath returns the empty path, addressing the document root.
func RootPath() Path { return Path{} }

// Append returns a new path with seg appended.
func (p Path) Append(seg PathSegment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// String renders the path for human-facing output (reports and error
// messages): segments space-joined inside square brackets, keys quoted,
// e.g. `["foo" 3]`.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		if seg.isIndex {
			parts[i] = seg.String()
		} else {
			parts[i] = fmt.Sprintf("%q", seg.key)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// MarshalJSON encodes the path as a JSON array.
func (p Path) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]PathSegment(p))
}
