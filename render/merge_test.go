package render

import (
	"testing"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

func TestMerge_Empty(t *testing.T) {
	got, err := Merge(diff.Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestMerge_SimpleAdd(t *testing.T) {
	d := diff.FromElements([]diff.Element{
		{
			Metadata: &diff.Metadata{Merge: true},
			Path:     tree.RootPath().Append(tree.Key("a")),
			Add:      []*tree.Node{tree.NewString("new")},
		},
	})

	got, err := Merge(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":"new"}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMerge_VoidAddBecomesNull(t *testing.T) {
	d := diff.FromElements([]diff.Element{
		{
			Metadata: &diff.Metadata{Merge: true},
			Path:     tree.RootPath().Append(tree.Key("a")),
			Add:      []*tree.Node{tree.Void},
		},
	})

	got, err := Merge(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":null}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMerge_RejectsNonMergeElement(t *testing.T) {
	d := diff.FromElements([]diff.Element{
		{
			Path: tree.RootPath().Append(tree.Key("a")),
			Add:  []*tree.Node{tree.NewString("new")},
		},
	})
	if _, err := Merge(d); err == nil {
		t.Fatal("expected error rendering strict element as merge")
	}
}

func TestMerge_MetadataInheritedAcrossElements(t *testing.T) {
	d := diff.FromElements([]diff.Element{
		{
			Metadata: &diff.Metadata{Merge: true},
			Path:     tree.RootPath().Append(tree.Key("a")),
			Add:      []*tree.Node{tree.NewString("1")},
		},
		{
			Path: tree.RootPath().Append(tree.Key("b")),
			Add:  []*tree.Node{tree.NewString("2")},
		},
	})

	got, err := Merge(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":"1","b":"2"}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
