package diff

import "github.com/jd-tools/jd/tree"

// diffLists computes the diff between two arrays under ArrayModeList: an
// LCS alignment over element hashes drives a cursor-based greedy walk that
// coalesces runs of adds/removes into hunks, recurses into same-kind
// nested containers rather than flattening them, and records before/after
// list-context around each hunk.
func diffLists(lhs, rhs []*tree.Node, path tree.Path, options tree.Options) ([]Element, error) {
	lhsHashes := make([]tree.HashCode, len(lhs))
	for i, n := range lhs {
		lhsHashes[i] = n.HashCode(options)
	}
	rhsHashes := make([]tree.HashCode, len(rhs))
	for i, n := range rhs {
		rhsHashes[i] = n.HashCode(options)
	}
	common := longestCommonSubsequence(lhsHashes, rhsHashes)

	pathWithPlaceholder := path.Append(tree.Index(0))
	return diffRest(lhs, rhs, 0, pathWithPlaceholder, lhsHashes, rhsHashes, common, tree.Void, options)
}

func diffRest(
	lhs, rhs []*tree.Node,
	pathIndex int64,
	path tree.Path,
	lhsHashes, rhsHashes []tree.HashCode,
	common []tree.HashCode,
	previous *tree.Node,
	options tree.Options,
) ([]Element, error) {
	aCursor, bCursor, commonCursor := 0, 0, 0
	pathCursor := pathIndex
	pathLen := len(path)

	elems := []Element{{
		Path:   pathNow(path, pathCursor),
		Before: []*tree.Node{previous},
	}}

loop:
	for {
		switch {
		case aCursor == len(lhs):
			for bCursor < len(rhs) {
				elems[0].Add = append(elems[0].Add, rhs[bCursor])
				bCursor++
				pathCursor += 2
			}
			break loop
		case bCursor == len(rhs):
			for aCursor < len(lhs) {
				elems[0].Remove = append(elems[0].Remove, lhs[aCursor])
				aCursor++
			}
			break loop
		case atCommon(lhsHashes, aCursor, common) && atCommon(rhsHashes, bCursor, common):
			aCursor++
			bCursor++
			commonCursor++
			pathCursor++
			break loop
		case atCommon(lhsHashes, aCursor, common):
			for !atCommon(rhsHashes, bCursor, common) {
				elems[0].Add = append(elems[0].Add, rhs[bCursor])
				bCursor++
				pathCursor++
			}
		case atCommon(rhsHashes, bCursor, common):
			for !atCommon(lhsHashes, aCursor, common) {
				elems[0].Remove = append(elems[0].Remove, lhs[aCursor])
				aCursor++
			}
		case sameContainerType(lhs[aCursor], rhs[bCursor]):
			subPath := pathNow(path, pathCursor)
			subDiff, err := diffImpl(lhs[aCursor], rhs[bCursor], subPath, options)
			if err != nil {
				return nil, err
			}
			if hasChangesSlice(elems) {
				elems[0].After = afterContext(lhs, aCursor, commonCursor)
				elems = append(elems, subDiff...)
			} else {
				elems = subDiff
			}
			aCursor++
			bCursor++
			pathCursor++
			break loop
		default:
			elems[0].Remove = append(elems[0].Remove, lhs[aCursor])
			elems[0].Add = append(elems[0].Add, rhs[bCursor])
			aCursor++
			bCursor++
			pathCursor++
		}
	}

	if !hasChangesSlice(elems) {
		elems = nil
	} else {
		single := len(elems) < 2
		if len(elems) > 0 && len(elems[0].Path) <= pathLen && single {
			elems[0].After = afterContext(lhs, aCursor, commonCursor)
		}
	}

	if aCursor == len(lhs) && bCursor == len(rhs) {
		return elems, nil
	}

	var previousNode *tree.Node
	if bCursor == 0 {
		previousNode = tree.Void
	} else {
		previousNode = rhs[bCursor-1]
	}
	rest, err := diffRest(
		lhs[aCursor:], rhs[bCursor:],
		pathCursor, pathNow(path, pathCursor),
		lhsHashes[aCursor:], rhsHashes[bCursor:],
		common[commonCursor:],
		previousNode, options,
	)
	if err != nil {
		return nil, err
	}
	elems = append(elems, rest...)
	return elems, nil
}

func atCommon(hashes []tree.HashCode, cursor int, common []tree.HashCode) bool {
	if cursor >= len(hashes) || len(common) == 0 {
		return false
	}
	return hashes[cursor] == common[0]
}

func hasChangesSlice(elems []Element) bool {
	if len(elems) == 0 {
		return false
	}
	return len(elems[0].Add) > 0 || len(elems[0].Remove) > 0
}

func afterContext(lhs []*tree.Node, aCursor, commonCursor int) []*tree.Node {
	index := aCursor - commonCursor
	if index < 0 {
		index = 0
	}
	if index >= len(lhs) {
		return []*tree.Node{tree.Void}
	}
	return []*tree.Node{lhs[index]}
}

func pathNow(path tree.Path, pathCursor int64) tree.Path {
	dropped := path
	if len(dropped) > 0 {
		dropped = dropped[:len(dropped)-1]
	}
	return dropped.Append(tree.Index(pathCursor))
}

func sameContainerType(lhs, rhs *tree.Node) bool {
	return (lhs.Kind() == tree.KindObject && rhs.Kind() == tree.KindObject) ||
		(lhs.Kind() == tree.KindArray && rhs.Kind() == tree.KindArray)
}
