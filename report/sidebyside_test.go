package report

import (
	"strings"
	"testing"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

func TestGenerateSideBySide_Empty(t *testing.T) {
	got := GenerateSideBySide(diff.Empty(), Options{})
	if got != "No changes detected.\n" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateSideBySide_ShowsBothColumns(t *testing.T) {
	d := diff.FromElements([]diff.Element{
		{
			Path:   tree.RootPath().Append(tree.Key("a")),
			Remove: []*tree.Node{tree.NewString("old")},
			Add:    []*tree.Node{tree.NewString("new")},
		},
	})

	got := GenerateSideBySide(d, Options{NoColor: true})
	if !strings.Contains(got, `"old"`) || !strings.Contains(got, `"new"`) {
		t.Errorf("got %q, want both old and new values present", got)
	}
	if !strings.Contains(got, `["a"]`) {
		t.Errorf("got %q, want path header", got)
	}
}
