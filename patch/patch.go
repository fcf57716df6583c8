// Package patch applies a diff.Diff to a tree.Node, reproducing the
// document the diff was computed against under either strict or merge
// semantics.
package patch

import (
	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// strategy selects how a single element is applied.
type strategy int

const (
	strategyStrict strategy = iota
	strategyMerge
)

func strategyFromMetadata(metadata *diff.Metadata) strategy {
	if metadata != nil && metadata.Merge {
		return strategyMerge
	}
	return strategyStrict
}

func (s strategy) String() string {
	if s == strategyMerge {
		return "merge"
	}
	return "strict"
}

// Apply applies d to node, returning the patched node. Metadata on each
// element is absorbed forward: a header set on one hunk continues to apply
// to subsequent hunks until overridden.
func Apply(node *tree.Node, d diff.Diff) (*tree.Node, error) {
	current := node
	var inherited *diff.Metadata

	for _, element := range d.Elements {
		if element.Metadata != nil && element.Metadata.IsEffective() {
			if inherited == nil {
				m := *element.Metadata
				inherited = &m
			} else {
				inherited.Absorb(*element.Metadata)
			}
		}
		var effective *diff.Metadata
		if inherited != nil && inherited.IsEffective() {
			effective = inherited
		}
		strat := strategyFromMetadata(effective)

		next, err := patchElement(current, nil, pathSegments(element.Path), element.Before, element.Remove, element.Add, element.After, strat)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func pathSegments(p tree.Path) []tree.PathSegment {
	return []tree.PathSegment(p)
}

func patchElement(
	node *tree.Node,
	pathBehind []tree.PathSegment,
	pathAhead []tree.PathSegment,
	before, remove, add, after []*tree.Node,
	strat strategy,
) (*tree.Node, error) {
	if len(pathAhead) > 0 && strat == strategyMerge {
		segment := pathAhead[0]
		rest := pathAhead[1:]
		if segment.IsIndex() {
			return nil, expectedCollectionError(node, segment)
		}
		key := segment.KeyValue()

		if node.Kind() == tree.KindObject {
			fields := copyObject(node.ObjectValue())
			existing, ok := fields[key]
			if !ok {
				if len(rest) == 0 {
					existing = tree.Void
				} else {
					existing = tree.NewObject(nil)
				}
			}
			delete(fields, key)
			newPathBehind := appendSegment(pathBehind, tree.Key(key))
			patched, err := patchElement(existing, newPathBehind, rest, before, remove, add, after, strat)
			if err != nil {
				return nil, err
			}
			if patched.IsVoid() && len(rest) == 0 {
				// deletion: already removed above
			} else {
				fields[key] = patched
			}
			return tree.NewObject(fields), nil
		}

		seed := tree.NewObject(nil)
		if len(rest) == 0 {
			seed = tree.Void
		}
		newPathBehind := appendSegment(pathBehind, tree.Key(key))
		patched, err := patchElement(seed, newPathBehind, rest, before, remove, add, after, strat)
		if err != nil {
			return nil, err
		}
		fields := map[string]*tree.Node{}
		if !patched.IsVoid() || len(rest) > 0 {
			fields[key] = patched
		}
		return tree.NewObject(fields), nil
	}

	switch node.Kind() {
	case tree.KindArray:
		return patchList(node.ArrayValue(), pathBehind, pathAhead, before, remove, add, after, strat)
	case tree.KindObject:
		return patchObject(node.ObjectValue(), pathBehind, pathAhead, before, remove, add, after, strat)
	default:
		if len(pathAhead) > 0 {
			return nil, expectedCollectionError(node, pathAhead[0])
		}
		return patchScalar(node, pathBehind, remove, add, strat)
	}
}

func patchScalar(node *tree.Node, pathBehind []tree.PathSegment, oldValues, newValues []*tree.Node, strat strategy) (*tree.Node, error) {
	if len(oldValues) > 1 || len(newValues) > 1 {
		return nil, nonSetDiffError(oldValues, newValues, pathBehind)
	}
	oldValue := singleValue(oldValues)
	newValue := singleValue(newValues)

	switch strat {
	case strategyMerge:
		if !oldValue.IsVoid() {
			return nil, &PatchError{msg: "patch with merge strategy at " + pathToString(pathBehind) + " has unnecessary old value " + nodeJSON(oldValue)}
		}
	default:
		if !node.Equals(oldValue) {
			return nil, expectValueError(oldValue, node, pathBehind)
		}
	}
	return newValue, nil
}

func patchObject(
	fields map[string]*tree.Node,
	pathBehind []tree.PathSegment,
	pathAhead []tree.PathSegment,
	before, oldValues, newValues, after []*tree.Node,
	strat strategy,
) (*tree.Node, error) {
	if len(pathAhead) == 0 {
		if len(oldValues) > 1 || len(newValues) > 1 {
			return nil, nonSetDiffError(oldValues, newValues, pathBehind)
		}
		newValue := singleValue(newValues)
		if strat == strategyMerge {
			return newValue, nil
		}
		oldValue := singleValue(oldValues)
		current := tree.NewObject(fields)
		if !current.Equals(oldValue) {
			return nil, expectValueError(oldValue, current, pathBehind)
		}
		return newValue, nil
	}

	segment := pathAhead[0]
	rest := pathAhead[1:]
	if segment.IsIndex() {
		return nil, &PatchError{msg: "found " + nodeJSON(tree.NewObject(fields)) + " at " + pathToString(pathBehind) + ": expected JSON object"}
	}
	key := segment.KeyValue()

	next, ok := fields[key]
	if !ok {
		if strat == strategyMerge && len(rest) > 0 {
			next = tree.NewObject(nil)
		} else {
			next = tree.Void
		}
	}

	newPathBehind := appendSegment(pathBehind, tree.Key(key))
	patched, err := patchElement(next, newPathBehind, rest, before, oldValues, newValues, after, strat)
	if err != nil {
		return nil, err
	}

	out := copyObject(fields)
	if patched.IsVoid() {
		delete(out, key)
	} else {
		out[key] = patched
	}
	return tree.NewObject(out), nil
}

func patchList(
	list []*tree.Node,
	pathBehind []tree.PathSegment,
	pathAhead []tree.PathSegment,
	before, remove, add, after []*tree.Node,
	strat strategy,
) (*tree.Node, error) {
	if strat == strategyMerge {
		return patchScalar(tree.NewArray(list), pathBehind, remove, add, strat)
	}

	if len(pathAhead) == 0 {
		if len(remove) > 1 || len(add) > 1 {
			return nil, &PatchError{msg: "cannot replace list with multiple values"}
		}
		if len(remove) == 0 {
			return nil, &PatchError{msg: "invalid diff. must declare list to replace it"}
		}
		wanted := remove[0]
		current := tree.NewArray(list)
		if !current.Equals(wanted) {
			return nil, &PatchError{msg: "wanted " + nodeJSON(wanted) + ". found " + nodeJSON(current)}
		}
		if len(add) == 0 {
			return tree.Void, nil
		}
		return add[0], nil
	}

	segment := pathAhead[0]
	rest := pathAhead[1:]
	if !segment.IsIndex() {
		return nil, invalidPathElementError(segment)
	}
	rawIndex := segment.IndexValue()

	if len(rest) > 0 {
		if rawIndex < 0 || int(rawIndex) >= len(list) {
			return nil, &PatchError{msg: indexOutOfBounds(rawIndex)}
		}
		newPathBehind := appendSegment(pathBehind, tree.Index(rawIndex))
		child := list[rawIndex]
		patched, err := patchElement(child, newPathBehind, rest, before, remove, add, after, strat)
		if err != nil {
			return nil, err
		}
		out := make([]*tree.Node, len(list))
		copy(out, list)
		out[rawIndex] = patched
		return tree.NewArray(out), nil
	}

	if rawIndex == -1 {
		if len(remove) > 0 {
			return nil, &PatchError{msg: "invalid patch. appending to -1 index. but want to remove values"}
		}
		out := make([]*tree.Node, len(list), len(list)+len(add))
		copy(out, list)
		out = append(out, add...)
		return tree.NewArray(out), nil
	}

	if rawIndex < 0 {
		return nil, &PatchError{msg: indexOutOfBounds(rawIndex)}
	}

	insertionIndex := int(rawIndex)
	original := list

	for offset, context := range before {
		distance := len(before) - offset
		checkIndex := int(rawIndex) - distance
		if checkIndex < 0 {
			if checkIndex == -1 && context.IsVoid() {
				continue
			}
			return nil, &PatchError{msg: "invalid patch. before context " + nodeJSON(context) + " out of bounds: " + itoa(checkIndex)}
		}
		if !original[checkIndex].Equals(context) {
			return nil, &PatchError{msg: "invalid patch. expected " + nodeJSON(context) + " before. got " + nodeJSON(original[checkIndex])}
		}
	}

	working := make([]*tree.Node, len(original))
	copy(working, original)
	if len(remove) > 0 {
		if insertionIndex >= len(working) {
			return nil, &PatchError{msg: "remove values out bounds: " + itoa64(rawIndex)}
		}
		for _, expected := range remove {
			if !working[insertionIndex].Equals(expected) {
				return nil, &PatchError{msg: "invalid patch. wanted " + nodeJSON(expected) + ". found " + nodeJSON(working[insertionIndex])}
			}
			working = append(working[:insertionIndex], working[insertionIndex+1:]...)
		}
	}

	if insertionIndex > len(working) {
		return nil, &PatchError{msg: "remove values out bounds: " + itoa64(rawIndex)}
	}

	result := make([]*tree.Node, 0, len(working)+len(add))
	result = append(result, working[:insertionIndex]...)
	result = append(result, add...)
	result = append(result, working[insertionIndex:]...)

	for offset, context := range after {
		checkIndex := insertionIndex + offset
		if checkIndex >= len(working) {
			if checkIndex == len(working) && context.IsVoid() {
				continue
			}
			return nil, &PatchError{msg: "invalid patch. after context " + nodeJSON(context) + " out of bounds: " + itoa(checkIndex)}
		}
		if !working[checkIndex].Equals(context) {
			return nil, &PatchError{msg: "invalid patch. expected " + nodeJSON(context) + " after. got " + nodeJSON(working[checkIndex])}
		}
	}

	return tree.NewArray(result), nil
}

func singleValue(values []*tree.Node) *tree.Node {
	if len(values) == 0 {
		return tree.Void
	}
	return values[0]
}

func copyObject(fields map[string]*tree.Node) map[string]*tree.Node {
	out := make(map[string]*tree.Node, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func appendSegment(behind []tree.PathSegment, seg tree.PathSegment) []tree.PathSegment {
	out := make([]tree.PathSegment, len(behind), len(behind)+1)
	copy(out, behind)
	return append(out, seg)
}
