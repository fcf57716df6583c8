package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/jd-tools/jd/diff"
)

const sideBySideColumnWidth = 36

// GenerateSideBySide creates a side-by-side old/new comparison view.
func GenerateSideBySide(d diff.Diff, opts Options) string {
	if d.IsEmpty() {
		return "No changes detected.\n"
	}

	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()
	if opts.NoColor {
		color.NoColor = true
	}

	var b strings.Builder
	summary := summarizeElements(d.Elements)

	b.WriteString("Summary: ")
	b.WriteString(formatSummary(summary))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 80))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-38s | %-38s\n", "Old Value", "New Value")
	b.WriteString(strings.Repeat("─", 80))
	b.WriteString("\n")

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, element := range d.Elements {
		path := element.Path.String()
		if len(path) > 76 {
			path = "..." + path[len(path)-73:]
		}
		b.WriteString(path)
		b.WriteString("\n")

		rows := zipValues(element.Remove, element.Add)
		for _, row := range rows {
			oldLines := strings.Split(wordwrap.WrapString(formatValue(row.old, opts.MaxValueLength), sideBySideColumnWidth), "\n")
			newLines := strings.Split(wordwrap.WrapString(formatValue(row.new, opts.MaxValueLength), sideBySideColumnWidth), "\n")

			var colorFn func(a ...interface{}) string
			switch {
			case row.old == nil:
				colorFn = green
			case row.new == nil:
				colorFn = red
			default:
				colorFn = yellow
			}

			lineCount := len(oldLines)
			if len(newLines) > lineCount {
				lineCount = len(newLines)
			}
			for i := 0; i < lineCount; i++ {
				var oldLine, newLine string
				if i < len(oldLines) {
					oldLine = oldLines[i]
				}
				if i < len(newLines) {
					newLine = newLines[i]
				}
				if !opts.NoColor {
					if row.old == nil {
						newLine = colorFn(newLine)
					} else if row.new == nil {
						oldLine = colorFn(oldLine)
					} else {
						oldLine = colorFn(oldLine)
						newLine = colorFn(newLine)
					}
				}
				fmt.Fprintf(&b, "  %-*s | %s\n", sideBySideColumnWidth, oldLine, newLine)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
