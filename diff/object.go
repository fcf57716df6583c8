package diff

import (
	"github.com/jd-tools/jd/tree"
)

// diffObjects walks lhs's keys first (sorted), recursing into shared keys
// and recording removals for keys absent from rhs, then appends additions
// for keys present only in rhs (also sorted).
func diffObjects(lhs, rhs map[string]*tree.Node, path tree.Path, options tree.Options) ([]Element, error) {
	var elements []Element

	for _, key := range sortedKeys(lhs) {
		value := lhs[key]
		subPath := path.Append(tree.Key(key))
		if other, ok := rhs[key]; ok {
			sub, err := diffImpl(value, other, subPath, options)
			if err != nil {
				return nil, err
			}
			elements = append(elements, sub...)
		} else {
			elements = append(elements, Element{
				Path:   subPath,
				Remove: []*tree.Node{value},
			})
		}
	}

	for _, key := range sortedKeys(rhs) {
		if _, ok := lhs[key]; ok {
			continue
		}
		elements = append(elements, Element{
			Path: path.Append(tree.Key(key)),
			Add:  []*tree.Node{rhs[key]},
		})
	}

	return elements, nil
}
