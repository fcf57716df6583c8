package diff

import "fmt"

// ReverseError reports a failure while reversing a diff.
type ReverseError struct {
	msg string
}

func (e *ReverseError) Error() string { return e.msg }

// Reverse swaps each element's remove/add lists so that applying the
// result to the target restores the base document. Before/after context
// is preserved positionally. Merge-mode elements cannot be reversed since
// merge patches are lossy about removed values.
func (d Diff) Reverse() (Diff, error) {
	if len(d.Elements) == 0 {
		return Diff{}, nil
	}

	active := make([]*Metadata, len(d.Elements))
	var inherited *Metadata
	for i, element := range d.Elements {
		if element.Metadata != nil && element.Metadata.IsEffective() {
			if inherited == nil {
				m := *element.Metadata
				inherited = &m
			} else {
				inherited.Absorb(*element.Metadata)
			}
		}
		if inherited != nil {
			m := *inherited
			active[i] = &m
		}
	}

	reversed := make([]Element, 0, len(d.Elements))
	var lastEmitted *Metadata

	for i := len(d.Elements) - 1; i >= 0; i-- {
		element := d.Elements[i]
		metadata := active[i]
		if metadata != nil && metadata.Merge {
			return Diff{}, &ReverseError{msg: fmt.Sprintf("cannot reverse merge diff element at %s", element.Path.String())}
		}

		clone := element
		clone.Remove, clone.Add = element.Add, element.Remove

		switch {
		case metadata == nil:
			clone.Metadata = nil
			lastEmitted = nil
		case lastEmitted == nil || !metadataEqual(*lastEmitted, *metadata):
			m := *metadata
			clone.Metadata = &m
			lastEmitted = &m
		default:
			clone.Metadata = nil
		}
		reversed = append(reversed, clone)
	}

	return FromElements(reversed), nil
}

func metadataEqual(a, b Metadata) bool {
	if a.Merge != b.Merge {
		return false
	}
	if len(a.SetKeys) != len(b.SetKeys) {
		return false
	}
	for i := range a.SetKeys {
		if a.SetKeys[i] != b.SetKeys[i] {
			return false
		}
	}
	if (a.Color == nil) != (b.Color == nil) {
		return false
	}
	if a.Color != nil && *a.Color != *b.Color {
		return false
	}
	return true
}
