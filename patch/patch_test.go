package patch

import (
	"testing"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/tree"
)

func path(segments ...tree.PathSegment) tree.Path {
	return tree.Path(segments)
}

func TestApply_StrictScalarReplace(t *testing.T) {
	node := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("old")})
	d := diff.FromElements([]diff.Element{
		{
			Path:   path(tree.Key("a")),
			Remove: []*tree.Node{tree.NewString("old")},
			Add:    []*tree.Node{tree.NewString("new")},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	got := patched.ObjectValue()["a"].StringValue()
	if got != "new" {
		t.Errorf("a = %q, want %q", got, "new")
	}
}

func TestApply_StrictMismatchFails(t *testing.T) {
	node := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("unexpected")})
	d := diff.FromElements([]diff.Element{
		{
			Path:   path(tree.Key("a")),
			Remove: []*tree.Node{tree.NewString("old")},
			Add:    []*tree.Node{tree.NewString("new")},
		},
	})

	if _, err := Apply(node, d); err == nil {
		t.Fatal("expected error patching against mismatched base, got nil")
	}
}

func TestApply_AddNewKey(t *testing.T) {
	node := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("1")})
	d := diff.FromElements([]diff.Element{
		{
			Path: path(tree.Key("b")),
			Add:  []*tree.Node{tree.NewString("2")},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if patched.ObjectValue()["b"].StringValue() != "2" {
		t.Errorf("b not added: %+v", patched.ObjectValue())
	}
}

func TestApply_RemoveKey(t *testing.T) {
	node := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("1"), "b": tree.NewString("2")})
	d := diff.FromElements([]diff.Element{
		{
			Path:   path(tree.Key("b")),
			Remove: []*tree.Node{tree.NewString("2")},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, ok := patched.ObjectValue()["b"]; ok {
		t.Errorf("b still present: %+v", patched.ObjectValue())
	}
}

func TestApply_ListInsertWithContext(t *testing.T) {
	node := tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("c")})
	d := diff.FromElements([]diff.Element{
		{
			Path:   path(tree.Index(1)),
			Before: []*tree.Node{tree.NewString("a")},
			Add:    []*tree.Node{tree.NewString("b")},
			After:  []*tree.Node{tree.NewString("c")},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	values := patched.ArrayValue()
	if len(values) != 3 || values[1].StringValue() != "b" {
		t.Errorf("unexpected array: %+v", values)
	}
}

func TestApply_ListAppendAtMinusOne(t *testing.T) {
	node := tree.NewArray([]*tree.Node{tree.NewString("a")})
	d := diff.FromElements([]diff.Element{
		{
			Path: path(tree.Index(-1)),
			Add:  []*tree.Node{tree.NewString("b")},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	values := patched.ArrayValue()
	if len(values) != 2 || values[1].StringValue() != "b" {
		t.Errorf("unexpected array: %+v", values)
	}
}

func TestApply_MergeStrategyOverwrites(t *testing.T) {
	node := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("anything")})
	d := diff.FromElements([]diff.Element{
		{
			Metadata: &diff.Metadata{Merge: true},
			Path:     path(tree.Key("a")),
			Add:      []*tree.Node{tree.NewString("replaced")},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if patched.ObjectValue()["a"].StringValue() != "replaced" {
		t.Errorf("a = %+v, want replaced", patched.ObjectValue()["a"])
	}
}

func TestApply_MergeStrategyDeletesOnVoidAdd(t *testing.T) {
	node := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("x"), "b": tree.NewString("y")})
	d := diff.FromElements([]diff.Element{
		{
			Metadata: &diff.Metadata{Merge: true},
			Path:     path(tree.Key("a")),
			Add:      []*tree.Node{tree.Void},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, ok := patched.ObjectValue()["a"]; ok {
		t.Errorf("a should have been deleted: %+v", patched.ObjectValue())
	}
	if patched.ObjectValue()["b"].StringValue() != "y" {
		t.Errorf("b should be untouched: %+v", patched.ObjectValue())
	}
}

func TestApply_MetadataInheritedForward(t *testing.T) {
	node := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("1"), "b": tree.NewString("2")})
	d := diff.FromElements([]diff.Element{
		{
			Metadata: &diff.Metadata{Merge: true},
			Path:     path(tree.Key("a")),
			Add:      []*tree.Node{tree.NewString("new-a")},
		},
		{
			Path: path(tree.Key("b")),
			Add:  []*tree.Node{tree.NewString("new-b")},
		},
	})

	patched, err := Apply(node, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if patched.ObjectValue()["a"].StringValue() != "new-a" {
		t.Errorf("a = %+v", patched.ObjectValue()["a"])
	}
	if patched.ObjectValue()["b"].StringValue() != "new-b" {
		t.Errorf("b = %+v", patched.ObjectValue()["b"])
	}
}

func TestApply_DiffThenPatchRoundTrip(t *testing.T) {
	lhs := tree.NewObject(map[string]*tree.Node{
		"name":    tree.NewString("old"),
		"tags":    tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("b")}),
		"enabled": tree.NewBool(false),
	})
	rhs := tree.NewObject(map[string]*tree.Node{
		"name":    tree.NewString("new"),
		"tags":    tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("b"), tree.NewString("c")}),
		"enabled": tree.NewBool(true),
	})

	d, err := diff.Nodes(lhs, rhs, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}

	patched, err := Apply(lhs, d)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !patched.Equals(rhs) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", patched, rhs)
	}
}
