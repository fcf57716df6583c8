// Package tree implements the canonical, deep-immutable data model shared
// by the diff, patch, and render engines: Node, Number, Options, and Path.
package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind tags the variant of a Node.
type Kind int

const (
	// KindVoid is a sentinel representing the absence of a value. It is
	// never itself serialized to JSON; it marks array-boundary context and
	// merge-patch deletions.
	KindVoid Kind = iota
	// KindNull is JSON null.
	KindNull
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object with deterministic (sorted) key order.
	KindObject
)

var voidHash = HashCode{0xF3, 0x97, 0x6B, 0x21, 0x91, 0x26, 0x8D, 0x96}
var nullHash = HashCode{0xFE, 0x73, 0xAB, 0xCC, 0xE6, 0x32, 0xE0, 0x88}
var boolTrueHash = HashCode{0x24, 0x6B, 0xE3, 0xE4, 0xAF, 0x59, 0xDC, 0x1C}
var boolFalseHash = HashCode{0xC6, 0x38, 0x77, 0xD1, 0x0A, 0x7E, 0x1F, 0xBF}
var listSeed = HashCode{0xF5, 0x18, 0x0A, 0x71, 0xA4, 0xC4, 0x03, 0xF3}
var objectSeed = HashCode{0x00, 0x5D, 0x39, 0xA4, 0x18, 0x10, 0xEA, 0xD5}

// Node is the canonical data model shared by the diff, patch, and render
// engines. A Node is immutable once constructed; Array and Object contents
// must not be mutated by callers.
type Node struct {
	kind    Kind
	boolVal bool
	numVal  Number
	strVal  string
	arrVal  []*Node
	objVal  map[string]*Node
}

// Void is the canonical Void node.
var Void = &Node{kind: KindVoid}

// Null is the canonical Null node.
var Null = &Node{kind: KindNull}

// NewBool constructs a Bool node.
func NewBool(v bool) *Node { return &Node{kind: KindBool, boolVal: v} }

// NewNumber constructs a Number node.
func NewNumber(n Number) *Node { return &Node{kind: KindNumber, numVal: n} }

// NewNumberFromFloat validates v and constructs a Number node.
func NewNumberFromFloat(v float64) (*Node, error) {
	num, err := newNumber(v)
	if err != nil {
		return nil, err
	}
	return &Node{kind: KindNumber, numVal: num}, nil
}

// NewString constructs a String node.
func NewString(v string) *Node { return &Node{kind: KindString, strVal: v} }

// NewArray constructs an Array node. values is retained, not copied.
func NewArray(values []*Node) *Node {
	if values == nil {
		values = []*Node{}
	}
	return &Node{kind: KindArray, arrVal: values}
}

// NewObject constructs an Object node. fields is retained, not copied.
func NewObject(fields map[string]*Node) *Node {
	if fields == nil {
		fields = map[string]*Node{}
	}
	return &Node{kind: KindObject, objVal: fields}
}

// Kind reports the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// IsVoid reports whether n is the Void sentinel.
func (n *Node) IsVoid() bool { return n.kind == KindVoid }

// BoolValue returns the boolean payload; only meaningful when Kind() ==
// KindBool.
func (n *Node) BoolValue() bool { return n.boolVal }

// NumberValue returns the numeric payload; only meaningful when Kind() ==
// KindNumber.
func (n *Node) NumberValue() Number { return n.numVal }

// StringValue returns the string payload; only meaningful when Kind() ==
// KindString.
func (n *Node) StringValue() string { return n.strVal }

// ArrayValue returns the array elements; only meaningful when Kind() ==
// KindArray. The returned slice must not be mutated.
func (n *Node) ArrayValue() []*Node { return n.arrVal }

// ObjectValue returns the object fields; only meaningful when Kind() ==
// KindObject. The returned map must not be mutated.
func (n *Node) ObjectValue() map[string]*Node { return n.objVal }

// ObjectKeys returns the object's keys in sorted order.
func (n *Node) ObjectKeys() []string {
	keys := make([]string, 0, len(n.objVal))
	for k := range n.objVal {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromJSONBytes parses input as JSON and canonicalizes it into a Node.
// Whitespace-only (or empty) input canonicalizes to Void.
func FromJSONBytes(input []byte) (*Node, error) {
	if len(strings.TrimSpace(string(input))) == 0 {
		return Void, nil
	}
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return fromJSONValue(v)
}

func fromJSONValue(v interface{}) (*Node, error) {
	switch val := v.(type) {
	case nil:
		return Null, nil
	case bool:
		return NewBool(val), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, &NumberOutOfRangeError{Value: string(val)}
		}
		num, err := newNumber(f)
		if err != nil {
			return nil, err
		}
		return NewNumber(num), nil
	case string:
		return NewString(val), nil
	case []interface{}:
		items := make([]*Node, len(val))
		for i, e := range val {
			node, err := fromJSONValue(e)
			if err != nil {
				return nil, err
			}
			items[i] = node
		}
		return NewArray(items), nil
	case map[string]interface{}:
		object := make(map[string]*Node, len(val))
		for k, e := range val {
			node, err := fromJSONValue(e)
			if err != nil {
				return nil, err
			}
			object[k] = node
		}
		return NewObject(object), nil
	default:
		return nil, fmt.Errorf("invalid JSON: unsupported value %T", v)
	}
}

// FromYAMLBytes parses input as YAML and canonicalizes it into a Node.
// Whitespace-only (or empty) input canonicalizes to Void. YAML mappings
// must use string keys and documents must not use custom tags.
func FromYAMLBytes(input []byte) (*Node, error) {
	if len(strings.TrimSpace(string(input))) == 0 {
		return Void, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Void, nil
	}
	return fromYAMLNode(doc.Content[0])
}

func fromYAMLNode(n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		items := make([]*Node, len(n.Content))
		for i, c := range n.Content {
			node, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items[i] = node
		}
		return NewArray(items), nil
	case yaml.MappingNode:
		object := make(map[string]*Node, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			valNode := n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode || (keyNode.Tag != "!!str" && keyNode.Tag != "") {
				return nil, &NonStringYamlKeyError{Found: describeYAMLNode(keyNode)}
			}
			value, err := fromYAMLNode(valNode)
			if err != nil {
				return nil, err
			}
			object[keyNode.Value] = value
		}
		return NewObject(object), nil
	default:
		return nil, fmt.Errorf("invalid YAML: unsupported node kind %v", n.Kind)
	}
}

func describeYAMLNode(n *yaml.Node) string {
	return fmt.Sprintf("tag=%s kind=%v value=%q", n.Tag, n.Kind, n.Value)
}

func fromYAMLScalar(n *yaml.Node) (*Node, error) {
	switch n.Tag {
	case "!!null", "":
		if n.Tag == "" && n.Value != "" {
			// untagged scalar with content falls through to string below
			break
		}
		return Null, nil
	case "!!bool":
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid YAML: bad bool %q", n.Value)
		}
		return NewBool(v), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, &NumberOutOfRangeError{Value: n.Value}
		}
		num, err := newNumber(f)
		if err != nil {
			return nil, err
		}
		return NewNumber(num), nil
	case "!!str":
		return NewString(n.Value), nil
	default:
		return nil, &UnsupportedYamlTagError{Tag: n.Tag}
	}
	return NewString(n.Value), nil
}

// ToJSONValue converts n into native Go values (map[string]interface{},
// []interface{}, string, bool, int64/uint64/float64, nil) suitable for
// encoding/json. It fails if n contains a Void node anywhere, since JSON
// has no representation for the absence of a value.
func (n *Node) ToJSONValue() (interface{}, error) {
	switch n.kind {
	case KindVoid:
		return nil, fmt.Errorf("cannot render void node as JSON")
	case KindNull:
		return nil, nil
	case KindBool:
		return n.boolVal, nil
	case KindNumber:
		jn := n.numVal.ToJSONNumber()
		switch {
		case jn.isInt && jn.isUnsigned:
			return jn.u, nil
		case jn.isInt:
			return jn.i, nil
		default:
			return jn.f, nil
		}
	case KindString:
		return n.strVal, nil
	case KindArray:
		out := make([]interface{}, len(n.arrVal))
		for i, e := range n.arrVal {
			v, err := e.ToJSONValue()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case KindObject:
		out := make(map[string]interface{}, len(n.objVal))
		for _, k := range n.ObjectKeys() {
			v, err := n.objVal[k].ToJSONValue()
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown node kind %v", n.kind)
	}
}

// MarshalCanonicalJSON renders n as minimal, key-sorted JSON text.
func (n *Node) MarshalCanonicalJSON() ([]byte, error) {
	v, err := n.ToJSONValue()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Equals reports exact structural equality: exact number equality, ordered
// array comparison, and exact object comparison. It ignores Options
// entirely and is used by the patch engine's strict-mode context checks.
func (n *Node) Equals(other *Node) bool {
	return n.EqWithOptions(other, DefaultOptions())
}

// EqWithOptions reports structural equality between n and other, honoring
// options' precision and array-mode settings.
func (n *Node) EqWithOptions(other *Node, options Options) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindVoid, KindNull:
		return true
	case KindBool:
		return n.boolVal == other.boolVal
	case KindNumber:
		return n.numVal.EqualsWithPrecision(other.numVal, options.Precision())
	case KindString:
		return n.strVal == other.strVal
	case KindArray:
		switch options.ArrayMode() {
		case ArrayModeSet:
			return setEquals(n.arrVal, other.arrVal, options)
		case ArrayModeMultiSet:
			return multisetEquals(n.arrVal, other.arrVal, options)
		default:
			return listEquals(n.arrVal, other.arrVal, options)
		}
	case KindObject:
		if len(n.objVal) != len(other.objVal) {
			return false
		}
		for k, v := range n.objVal {
			ov, ok := other.objVal[k]
			if !ok || !v.EqWithOptions(ov, options) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func listEquals(a, b []*Node, options Options) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].EqWithOptions(b[i], options) {
			return false
		}
	}
	return true
}

func setEquals(a, b []*Node, options Options) bool {
	ah := hashSetOf(a, options)
	bh := hashSetOf(b, options)
	if len(ah) != len(bh) {
		return false
	}
	for h := range ah {
		if !bh[h] {
			return false
		}
	}
	return true
}

func hashSetOf(values []*Node, options Options) map[HashCode]bool {
	out := make(map[HashCode]bool, len(values))
	for _, v := range values {
		out[v.HashCode(options)] = true
	}
	return out
}

func multisetEquals(a, b []*Node, options Options) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[HashCode]int, len(a))
	for _, v := range a {
		counts[v.HashCode(options)]++
	}
	for _, v := range b {
		h := v.HashCode(options)
		if counts[h] <= 0 {
			return false
		}
		counts[h]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// HashCode computes the order-sensitive-or-not (per options' array mode)
// hash of n.
func (n *Node) HashCode(options Options) HashCode {
	switch n.kind {
	case KindVoid:
		return voidHash
	case KindNull:
		return nullHash
	case KindBool:
		if n.boolVal {
			return boolTrueHash
		}
		return boolFalseHash
	case KindNumber:
		return n.numVal.HashCode()
	case KindString:
		return hashBytes([]byte(n.strVal))
	case KindArray:
		switch options.ArrayMode() {
		case ArrayModeSet:
			return hashSet(n.arrVal, options)
		case ArrayModeMultiSet:
			return hashMultiset(n.arrVal, options)
		default:
			return hashList(n.arrVal, options)
		}
	case KindObject:
		return hashObject(n.objVal, options)
	default:
		return HashCode{}
	}
}

func hashList(values []*Node, options Options) HashCode {
	buf := make([]byte, 0, 8+len(values)*8)
	buf = append(buf, listSeed[:]...)
	for _, v := range values {
		h := v.HashCode(options)
		buf = append(buf, h[:]...)
	}
	return hashBytes(buf)
}

func hashSet(values []*Node, options Options) HashCode {
	seen := make(map[HashCode]bool, len(values))
	codes := make([]HashCode, 0, len(values))
	for _, v := range values {
		h := v.HashCode(options)
		if !seen[h] {
			seen[h] = true
			codes = append(codes, h)
		}
	}
	return combine(codes)
}

func hashMultiset(values []*Node, options Options) HashCode {
	codes := make([]HashCode, len(values))
	for i, v := range values {
		codes[i] = v.HashCode(options)
	}
	return combine(codes)
}

func hashObject(fields map[string]*Node, options Options) HashCode {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := make([]byte, 0, 8+len(fields)*16)
	buf = append(buf, objectSeed[:]...)
	for _, k := range keys {
		kh := hashBytes([]byte(k))
		vh := fields[k].HashCode(options)
		buf = append(buf, kh[:]...)
		buf = append(buf, vh[:]...)
	}
	return hashBytes(buf)
}
