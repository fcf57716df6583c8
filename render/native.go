// Package render turns a diff.Diff into the native hunk format, RFC 6902
// JSON Patch, or RFC 7386 JSON Merge Patch text, and supports rendering the
// raw element sequence for debugging.
package render

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

// Config toggles rendering behavior.
type Config struct {
	Color bool
}

// NewConfig returns a Config with color disabled.
func NewConfig() Config { return Config{} }

// WithColor returns a copy of c with color output enabled or disabled.
func (c Config) WithColor(enabled bool) Config {
	c.Color = enabled
	return c
}

// withColorScope runs fn with color.NoColor forced to !enabled for the
// duration of the call, then restores the prior global setting. fatih/color
// consults this global on every Sprint call, so native rendering toggles it
// the same way report.GenerateSideBySide does around its own colored output.
func withColorScope(enabled bool, fn func()) {
	original := color.NoColor
	color.NoColor = !enabled
	defer func() { color.NoColor = original }()
	fn()
}

// Native renders d using the jd native hunk format: "@ path" followed by
// before-context, "-"-prefixed removals, "+"-prefixed additions, and
// after-context lines. A run of merge-mode elements is preceded by a
// "^ {"Merge":true}" header.
func Native(d diff.Diff, config Config) string {
	var out strings.Builder
	withColorScope(config.Color, func() {
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		var inherited diff.Metadata
		for _, element := range d.Elements {
			if element.Metadata != nil {
				out.WriteString(element.Metadata.RenderHeader())
				inherited = *element.Metadata
			}
			isMerge := inherited.Merge
			if element.Metadata != nil {
				isMerge = element.Metadata.Merge
			}
			out.WriteString(renderElementNative(element, config, isMerge, red, green))
		}
	})
	return out.String()
}

func renderElementNative(element diff.Element, config Config, isMerge bool, red, green func(a ...interface{}) string) string {
	var out strings.Builder
	out.WriteString("@ ")
	out.WriteString(pathToJSON(element.Path))
	out.WriteString("\n")

	var stringDiff *singleStringDiff
	if len(element.Remove) == 1 && len(element.Add) == 1 {
		if element.Remove[0].Kind() == tree.KindString && element.Add[0].Kind() == tree.KindString {
			old := element.Remove[0].StringValue()
			next := element.Add[0].StringValue()
			stringDiff = &singleStringDiff{common: lcsChars(old, next), old: old, new: next}
		}
	}

	for _, before := range element.Before {
		if before.IsVoid() {
			out.WriteString("[\n")
		} else {
			out.WriteString("  ")
			out.WriteString(nodeToJSON(before))
			out.WriteString("\n")
		}
	}

	for _, value := range element.Remove {
		if value.IsVoid() {
			continue
		}
		if stringDiff != nil {
			out.WriteString("- \"")
			out.WriteString(colorStringDiff(stringDiff.old, stringDiff.common, red))
			out.WriteString("\"\n")
			continue
		}
		out.WriteString("- ")
		out.WriteString(red(nodeToJSON(value)))
		out.WriteString("\n")
	}

	for _, value := range element.Add {
		if value.IsVoid() {
			if isMerge {
				out.WriteString(green("+") + "\n")
			}
			continue
		}
		if stringDiff != nil {
			out.WriteString("+ \"")
			out.WriteString(colorStringDiff(stringDiff.new, stringDiff.common, green))
			out.WriteString("\"\n")
			continue
		}
		out.WriteString("+ ")
		out.WriteString(green(nodeToJSON(value)))
		out.WriteString("\n")
	}

	for _, after := range element.After {
		if after.IsVoid() {
			out.WriteString("]\n")
		} else {
			out.WriteString("  ")
			out.WriteString(nodeToJSON(after))
			out.WriteString("\n")
		}
	}

	return out.String()
}

type singleStringDiff struct {
	common []rune
	old    string
	new    string
}

// colorStringDiff highlights the runes of text not present (in order) in
// common, using colorFn, leaving the shared subsequence uncolored.
func colorStringDiff(text string, common []rune, colorFn func(a ...interface{}) string) string {
	var out strings.Builder
	ci := 0
	for _, ch := range text {
		if ci < len(common) && ch == common[ci] {
			out.WriteRune(ch)
			ci++
			continue
		}
		out.WriteString(colorFn(string(ch)))
	}
	return out.String()
}

// lcsChars computes the longest common subsequence of runes between two
// strings, used to highlight only the changed portion of a single-line
// string replacement.
func lcsChars(lhs, rhs string) []rune {
	left := []rune(lhs)
	right := []rune(rhs)
	n, m := len(left), len(right)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if left[i] == right[j] {
				table[i+1][j+1] = table[i][j] + 1
			} else if table[i][j+1] >= table[i+1][j] {
				table[i+1][j+1] = table[i][j+1]
			} else {
				table[i+1][j+1] = table[i+1][j]
			}
		}
	}
	result := make([]rune, 0, table[n][m])
	i, j := n, m
	for i > 0 && j > 0 {
		if left[i-1] == right[j-1] {
			result = append(result, left[i-1])
			i--
			j--
		} else if table[i-1][j] >= table[i][j-1] {
			i--
		} else {
			j--
		}
	}
	for l, r := 0, len(result)-1; l < r; l, r = l+1, r-1 {
		result[l], result[r] = result[r], result[l]
	}
	return result
}

func nodeToJSON(node *tree.Node) string {
	if node.IsVoid() {
		return ""
	}
	if node.Kind() == tree.KindNumber {
		return formatNumber(node.NumberValue().Get())
	}
	data, err := node.MarshalCanonicalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func pathToJSON(path tree.Path) string {
	var out strings.Builder
	out.WriteByte('[')
	for i, seg := range path {
		if i > 0 {
			out.WriteByte(',')
		}
		if seg.IsIndex() {
			out.WriteString(strconv.FormatInt(seg.IndexValue(), 10))
		} else {
			out.WriteByte('"')
			out.WriteString(strings.ReplaceAll(seg.KeyValue(), `"`, `\"`))
			out.WriteByte('"')
		}
	}
	out.WriteByte(']')
	return out.String()
}
