package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jd-tools/jd/diff"
)

// GenerateStat creates a statistics summary similar to git diff --stat,
// one line per changed path with a proportional +/-/~ bar.
func GenerateStat(d diff.Diff) string {
	if d.IsEmpty() {
		return "No changes detected.\n"
	}

	paths := make(map[string]*pathStat)
	var totalAdded, totalRemoved, totalModified int

	for _, element := range d.Elements {
		path := element.Path.String()
		if paths[path] == nil {
			paths[path] = &pathStat{}
		}
		switch {
		case len(element.Remove) == 0 && len(element.Add) > 0:
			paths[path].additions++
			totalAdded++
		case len(element.Add) == 0 && len(element.Remove) > 0:
			paths[path].deletions++
			totalRemoved++
		default:
			paths[path].modifications++
			totalModified++
		}
	}

	sortedPaths := make([]string, 0, len(paths))
	for path := range paths {
		sortedPaths = append(sortedPaths, path)
	}
	sort.Strings(sortedPaths)

	maxPathLen := 0
	for _, path := range sortedPaths {
		if len(path) > maxPathLen {
			maxPathLen = len(path)
		}
	}
	if maxPathLen > 60 {
		maxPathLen = 60
	}

	var b strings.Builder
	for _, path := range sortedPaths {
		stat := paths[path]
		displayPath := path
		if len(displayPath) > 60 {
			displayPath = "..." + displayPath[len(displayPath)-57:]
		}

		total := stat.additions + stat.deletions + stat.modifications
		barWidth := 40
		var bar string
		if total > 0 {
			plusCount := (stat.additions * barWidth) / total
			minusCount := (stat.deletions * barWidth) / total
			modCount := (stat.modifications * barWidth) / total

			bar = strings.Repeat("+", plusCount) +
				strings.Repeat("-", minusCount) +
				strings.Repeat("~", modCount)

			if len(bar) > barWidth {
				bar = bar[:barWidth]
			}
		}

		fmt.Fprintf(&b, " %-*s | %s\n", maxPathLen, displayPath, bar)
	}

	b.WriteString(fmt.Sprintf(" %d paths changed", len(paths)))
	if totalAdded > 0 {
		fmt.Fprintf(&b, ", %d additions(+)", totalAdded)
	}
	if totalRemoved > 0 {
		fmt.Fprintf(&b, ", %d deletions(-)", totalRemoved)
	}
	if totalModified > 0 {
		fmt.Fprintf(&b, ", %d modifications(~)", totalModified)
	}
	b.WriteString("\n")

	return b.String()
}

type pathStat struct {
	additions     int
	deletions     int
	modifications int
}
