package tree

import "testing"

func TestOptions_WithPrecisionRejectsSetMode(t *testing.T) {
	opts, err := DefaultOptions().WithArrayMode(ArrayModeSet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := opts.WithPrecision(0.1); err != ErrPrecisionIncompatible {
		t.Errorf("err = %v, want ErrPrecisionIncompatible", err)
	}
}

func TestOptions_WithSetKeysForcesSetMode(t *testing.T) {
	opts, err := DefaultOptions().WithSetKeys([]string{"id"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ArrayMode() != ArrayModeSet {
		t.Errorf("ArrayMode() = %v, want ArrayModeSet", opts.ArrayMode())
	}
}

func TestOptions_WithSetKeysDedupesAndSorts(t *testing.T) {
	opts, err := DefaultOptions().WithSetKeys([]string{"b", "a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := opts.SetKeys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("SetKeys() = %v, want [a b]", keys)
	}
}

func TestOptions_WithSetKeysRejectsEmpty(t *testing.T) {
	if _, err := DefaultOptions().WithSetKeys([]string{""}); err != ErrEmptySetKey {
		t.Errorf("err = %v, want ErrEmptySetKey", err)
	}
	if _, err := DefaultOptions().WithSetKeys(nil); err != ErrEmptySetKey {
		t.Errorf("err = %v, want ErrEmptySetKey", err)
	}
}

func TestArrayMode_String(t *testing.T) {
	tests := []struct {
		mode ArrayMode
		want string
	}{
		{ArrayModeList, "list"},
		{ArrayModeSet, "set"},
		{ArrayModeMultiSet, "multiset"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
