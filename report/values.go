// Package report builds supplemental human-facing summaries (a --stat
// style overview, a side-by-side comparison, and a git diff driver view)
// on top of the diff and render packages.
package report

import (
	"fmt"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// Options configures the human-facing renderers in this package.
type Options struct {
	NoColor        bool
	MaxValueLength int
}

// changeSummary tallies element kinds across a diff for header lines.
type changeSummary struct {
	Added    int
	Removed  int
	Modified int
}

func summarizeElements(elements []diff.Element) changeSummary {
	var s changeSummary
	for _, element := range elements {
		switch {
		case len(element.Remove) == 0 && len(element.Add) > 0:
			s.Added++
		case len(element.Add) == 0 && len(element.Remove) > 0:
			s.Removed++
		default:
			s.Modified++
		}
	}
	return s
}

func formatSummary(s changeSummary) string {
	return fmt.Sprintf("%d added, %d removed, %d modified", s.Added, s.Removed, s.Modified)
}

// valuePair is one aligned old/new row for a side-by-side view; either side
// is nil when a hunk has unequal remove/add counts.
type valuePair struct {
	old *tree.Node
	new *tree.Node
}

func zipValues(remove, add []*tree.Node) []valuePair {
	n := len(remove)
	if len(add) > n {
		n = len(add)
	}
	rows := make([]valuePair, n)
	for i := 0; i < n; i++ {
		var row valuePair
		if i < len(remove) {
			row.old = remove[i]
		}
		if i < len(add) {
			row.new = add[i]
		}
		rows[i] = row
	}
	return rows
}

// formatValue renders node as compact JSON text, truncating to maxLen
// runes (0 means unlimited). Void renders as "(none)".
func formatValue(node *tree.Node, maxLen int) string {
	if node == nil || node.IsVoid() {
		return "(none)"
	}
	data, err := node.MarshalCanonicalJSON()
	text := string(data)
	if err != nil {
		text = "<unrenderable>"
	}
	if runes := []rune(text); maxLen > 0 && len(runes) > maxLen {
		text = string(runes[:maxLen]) + "..."
	}
	return text
}
