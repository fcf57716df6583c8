package cli

import (
	"fmt"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/render"
	"github.com/jd-tools/jd/report"
)

// RenderDiff formats d according to format, one of "jd", "patch", "merge",
// "raw", "stat", "side-by-side", or "gitdiff".
func RenderDiff(d diff.Diff, format string, o *Options, oldFile, newFile string) (string, error) {
	switch format {
	case "", "jd":
		return render.Native(d, render.NewConfig().WithColor(o.Color)), nil
	case "patch":
		return render.Patch(d)
	case "merge":
		return render.Merge(d)
	case "raw":
		return render.Raw(d)
	case "stat":
		return report.GenerateStat(d), nil
	case "side-by-side":
		return report.GenerateSideBySide(d, report.Options{NoColor: !o.Color, MaxValueLength: o.MaxValueLen}), nil
	case "gitdiff":
		return report.GenerateGitDiff(d, oldFile, newFile), nil
	default:
		return "", fmt.Errorf("unknown output format: %q", format)
	}
}
