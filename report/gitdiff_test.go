package report

import (
	"strings"
	"testing"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

func TestGenerateGitDiff_Empty(t *testing.T) {
	got := GenerateGitDiff(diff.Empty(), "a.json", "b.json")
	if got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestGenerateGitDiff_GroupsByTopLevelPath(t *testing.T) {
	d := diff.FromElements([]diff.Element{
		{
			Path: tree.RootPath().Append(tree.Key("name")),
			Add:  []*tree.Node{tree.NewString("new")},
		},
	})

	got := GenerateGitDiff(d, "old.json", "new.json")
	if !strings.Contains(got, "diff --jd a/old.json b/new.json") {
		t.Errorf("got %q, missing header", got)
	}
	if !strings.Contains(got, `@@ ["name"] @@`) {
		t.Errorf("got %q, missing group header", got)
	}
	if !strings.Contains(got, `+["name"]: "new"`) {
		t.Errorf("got %q, missing add line", got)
	}
}
