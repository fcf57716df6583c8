package diff

import (
	"fmt"

	"github.com/jd-tools/jd/tree"
)

// ArrayModeNotImplementedError is returned when diffing two arrays under an
// ArrayMode that the diff engine does not (yet) support. Equality and
// hashing support Set and MultiSet fully; only pairwise structural diffing
// of such arrays is out of scope.
type ArrayModeNotImplementedError struct {
	Mode tree.ArrayMode
}

func (e *ArrayModeNotImplementedError) Error() string {
	return fmt.Sprintf("array mode %s not supported", e.Mode)
}
