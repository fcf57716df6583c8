package diff

import (
	"testing"

	"github.com/jd-tools/jd/tree"
)

func mustNumber(t *testing.T, v float64) tree.Number {
	t.Helper()
	n, err := tree.NewNumberFromFloat(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return n.NumberValue()
}

func TestNodes_Scalars(t *testing.T) {
	tests := []struct {
		name string
		lhs  *tree.Node
		rhs  *tree.Node
		want int
	}{
		{"equal null", tree.Null, tree.Null, 0},
		{"equal bool", tree.NewBool(true), tree.NewBool(true), 0},
		{"equal number", tree.NewNumber(mustNumber(t, 42)), tree.NewNumber(mustNumber(t, 42)), 0},
		{"equal string", tree.NewString("hello"), tree.NewString("hello"), 0},
		{"changed bool", tree.NewBool(true), tree.NewBool(false), 1},
		{"changed string", tree.NewString("a"), tree.NewString("b"), 1},
		{"null to string", tree.Null, tree.NewString("x"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Nodes(tt.lhs, tt.rhs, tree.DefaultOptions())
			if err != nil {
				t.Fatalf("Nodes() error = %v", err)
			}
			if d.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", d.Len(), tt.want)
			}
		})
	}
}

func TestNodes_ObjectAddRemove(t *testing.T) {
	lhs := tree.NewObject(map[string]*tree.Node{
		"a": tree.NewString("1"),
		"b": tree.NewString("2"),
	})
	rhs := tree.NewObject(map[string]*tree.Node{
		"a": tree.NewString("1"),
		"c": tree.NewString("3"),
	})

	d, err := Nodes(lhs, rhs, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}

	// lhs keys walked first (sorted): "b" is removed.
	removed := d.Elements[0]
	if len(removed.Remove) != 1 || removed.Remove[0].StringValue() != "2" {
		t.Errorf("first element should remove \"2\", got %+v", removed)
	}
	if removed.Path.String() != `["b"]` {
		t.Errorf("Path = %s, want [\"b\"]", removed.Path.String())
	}

	added := d.Elements[1]
	if len(added.Add) != 1 || added.Add[0].StringValue() != "3" {
		t.Errorf("second element should add \"3\", got %+v", added)
	}
	if added.Path.String() != `["c"]` {
		t.Errorf("Path = %s, want [\"c\"]", added.Path.String())
	}
}

func TestNodes_NestedObject(t *testing.T) {
	lhs := tree.NewObject(map[string]*tree.Node{
		"outer": tree.NewObject(map[string]*tree.Node{
			"inner": tree.NewString("old"),
		}),
	})
	rhs := tree.NewObject(map[string]*tree.Node{
		"outer": tree.NewObject(map[string]*tree.Node{
			"inner": tree.NewString("new"),
		}),
	})

	d, err := Nodes(lhs, rhs, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	elem := d.Elements[0]
	if elem.Path.String() != `["outer" "inner"]` {
		t.Errorf("Path = %s, want [\"outer\" \"inner\"]", elem.Path.String())
	}
	if elem.Remove[0].StringValue() != "old" || elem.Add[0].StringValue() != "new" {
		t.Errorf("unexpected remove/add: %+v", elem)
	}
}

func TestNodes_ListAppend(t *testing.T) {
	lhs := tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("b")})
	rhs := tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("b"), tree.NewString("c")})

	d, err := Nodes(lhs, rhs, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	elem := d.Elements[0]
	if len(elem.Add) != 1 || elem.Add[0].StringValue() != "c" {
		t.Errorf("expected single add of \"c\", got %+v", elem.Add)
	}
	if len(elem.Remove) != 0 {
		t.Errorf("expected no removals, got %+v", elem.Remove)
	}
}

func TestNodes_ListInsertHasContext(t *testing.T) {
	lhs := tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("c")})
	rhs := tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("b"), tree.NewString("c")})

	d, err := Nodes(lhs, rhs, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	elem := d.Elements[0]
	if len(elem.Before) != 1 || elem.Before[0].StringValue() != "a" {
		t.Errorf("Before = %+v, want [\"a\"]", elem.Before)
	}
	if len(elem.After) != 1 || elem.After[0].StringValue() != "c" {
		t.Errorf("After = %+v, want [\"c\"]", elem.After)
	}
	if len(elem.Add) != 1 || elem.Add[0].StringValue() != "b" {
		t.Errorf("Add = %+v, want [\"b\"]", elem.Add)
	}
}

func TestNodes_SetModeNotImplemented(t *testing.T) {
	opts, err := tree.DefaultOptions().WithArrayMode(tree.ArrayModeSet)
	if err != nil {
		t.Fatalf("WithArrayMode() error = %v", err)
	}
	lhs := tree.NewArray([]*tree.Node{tree.NewString("a")})
	rhs := tree.NewArray([]*tree.Node{tree.NewString("a"), tree.NewString("b")})

	_, err = Nodes(lhs, rhs, opts)
	if err == nil {
		t.Fatal("expected error diffing set-mode arrays, got nil")
	}
	if _, ok := err.(*ArrayModeNotImplementedError); !ok {
		t.Errorf("error = %T, want *ArrayModeNotImplementedError", err)
	}
}

func TestDiff_ReverseRoundTrip(t *testing.T) {
	lhs := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("old")})
	rhs := tree.NewObject(map[string]*tree.Node{"a": tree.NewString("new")})

	d, err := Nodes(lhs, rhs, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	reversed, err := d.Reverse()
	if err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}
	if reversed.Len() != d.Len() {
		t.Fatalf("Reverse() len = %d, want %d", reversed.Len(), d.Len())
	}
	elem := reversed.Elements[0]
	if elem.Remove[0].StringValue() != "new" || elem.Add[0].StringValue() != "old" {
		t.Errorf("reversed element = %+v, want remove=new add=old", elem)
	}
}

func TestDiff_ReverseMergeFails(t *testing.T) {
	elements := []Element{
		{
			Metadata: &Metadata{Merge: true},
			Path:     tree.RootPath().Append(tree.Key("a")),
			Add:      []*tree.Node{tree.NewString("new")},
		},
	}
	d := FromElements(elements)
	if _, err := d.Reverse(); err == nil {
		t.Fatal("expected error reversing merge diff, got nil")
	}
}

func TestMetadata_RenderHeader(t *testing.T) {
	m := Metadata{Merge: true}
	want := "^ {\"Merge\":true}\n"
	if got := m.RenderHeader(); got != want {
		t.Errorf("RenderHeader() = %q, want %q", got, want)
	}
	if got := (Metadata{}).RenderHeader(); got != "" {
		t.Errorf("RenderHeader() = %q, want empty", got)
	}
}
