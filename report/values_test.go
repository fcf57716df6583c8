package report

import (
	"testing"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

func TestFormatValue_Void(t *testing.T) {
	if got := formatValue(tree.Void, 0); got != "(none)" {
		t.Errorf("got %q, want (none)", got)
	}
}

func TestFormatValue_Truncates(t *testing.T) {
	node := tree.NewString("abcdefghij")
	got := formatValue(node, 6)
	want := `"abcde` + "..."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestZipValues_AlignsUnequalLengths(t *testing.T) {
	remove := []*tree.Node{tree.NewString("a")}
	add := []*tree.Node{tree.NewString("x"), tree.NewString("y")}

	rows := zipValues(remove, add)
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].old.StringValue() != "a" || rows[0].new.StringValue() != "x" {
		t.Errorf("row0 = %+v", rows[0])
	}
	if rows[1].old != nil || rows[1].new.StringValue() != "y" {
		t.Errorf("row1 = %+v, want old=nil new=y", rows[1])
	}
}

func TestSummarizeElements(t *testing.T) {
	elements := []diff.Element{
		{Path: tree.RootPath().Append(tree.Key("a")), Add: []*tree.Node{tree.NewString("x")}},
		{Path: tree.RootPath().Append(tree.Key("b")), Remove: []*tree.Node{tree.NewString("y")}},
		{
			Path:   tree.RootPath().Append(tree.Key("c")),
			Remove: []*tree.Node{tree.NewString("old")},
			Add:    []*tree.Node{tree.NewString("new")},
		},
	}
	s := summarizeElements(elements)
	if s.Added != 1 || s.Removed != 1 || s.Modified != 1 {
		t.Errorf("got %+v, want 1/1/1", s)
	}
}
