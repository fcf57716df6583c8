package report

import (
	"fmt"
	"strings"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// GenerateGitDiff renders d in a format suitable for a git diff driver:
// a unified header followed by per-path +/- lines (a replaced value is
// shown as a - line followed by a + line).
func GenerateGitDiff(d diff.Diff, oldFile, newFile string) string {
	if d.IsEmpty() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "diff --jd a/%s b/%s\n", oldFile, newFile)
	fmt.Fprintf(&b, "--- a/%s\n", oldFile)
	fmt.Fprintf(&b, "+++ b/%s\n", newFile)

	var basePaths []string
	grouped := make(map[string][]diff.Element)
	for _, element := range d.Elements {
		basePath := "root"
		if len(element.Path) > 0 {
			basePath = tree.Path{element.Path[0]}.String()
		}
		if grouped[basePath] == nil {
			basePaths = append(basePaths, basePath)
		}
		grouped[basePath] = append(grouped[basePath], element)
	}

	for _, basePath := range basePaths {
		fmt.Fprintf(&b, "@@ %s @@\n", basePath)
		for _, element := range grouped[basePath] {
			path := element.Path.String()
			switch {
			case len(element.Remove) == 0 && len(element.Add) > 0:
				for _, value := range element.Add {
					fmt.Fprintf(&b, "+%s: %s\n", path, formatValue(value, 0))
				}
			case len(element.Add) == 0 && len(element.Remove) > 0:
				for _, value := range element.Remove {
					fmt.Fprintf(&b, "-%s: %s\n", path, formatValue(value, 0))
				}
			default:
				for _, row := range zipValues(element.Remove, element.Add) {
					fmt.Fprintf(&b, "-%s: %s\n", path, formatValue(row.old, 0))
					fmt.Fprintf(&b, "+%s: %s\n", path, formatValue(row.new, 0))
				}
			}
		}
	}

	return b.String()
}
