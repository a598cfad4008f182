package mxp

import "testing"

func TestIsValidEntityName(t *testing.T) {
	valid := []string{"foo", "Foo_Bar", "a.b-c", "x1"}
	invalid := []string{"", "1abc", "-abc", "has space"}
	for _, n := range valid {
		if !IsValidEntityName(n) {
			t.Errorf("expected %q to be valid", n)
		}
	}
	for _, n := range invalid {
		if IsValidEntityName(n) {
			t.Errorf("expected %q to be invalid", n)
		}
	}
}

func TestEntityTableResolveBuiltins(t *testing.T) {
	tbl := NewEntityTable()
	v, ok := tbl.Resolve("lt")
	if !ok || v != "<" {
		t.Fatalf("expected &lt; to resolve to <, got %q ok=%v", v, ok)
	}
}

func TestEntityTableResolveNumeric(t *testing.T) {
	tbl := NewEntityTable()
	v, ok := tbl.Resolve("#65")
	if !ok || v != "A" {
		t.Fatalf("expected &#65; to resolve to A, got %q ok=%v", v, ok)
	}
}

func TestEntityTableResolveUnknownFails(t *testing.T) {
	tbl := NewEntityTable()
	if _, ok := tbl.Resolve("nosuchentity"); ok {
		t.Fatalf("expected unknown entity to fail resolution")
	}
}

func TestEntityTableDefineAndAddRemove(t *testing.T) {
	tbl := NewEntityTable()
	tbl.Define("colors", "red|green", false, false, false, false, false)
	v, ok := tbl.Resolve("colors")
	if !ok || v != "red|green" {
		t.Fatalf("expected initial define, got %q", v)
	}

	tbl.Define("colors", "blue", false, false, true, false, false)
	v, _ = tbl.Resolve("colors")
	if v != "red|green|blue" {
		t.Fatalf("expected ADD to append, got %q", v)
	}

	tbl.Define("colors", "green", false, false, false, true, false)
	v, _ = tbl.Resolve("colors")
	if v != "red|blue" {
		t.Fatalf("expected REMOVE to drop green, got %q", v)
	}
}

func TestEntityTableReset(t *testing.T) {
	tbl := NewEntityTable()
	tbl.Define("temp", "x", false, false, false, false, false)
	tbl.Define("perm", "y", false, true, false, false, false)
	tbl.Reset()
	if _, ok := tbl.Resolve("temp"); ok {
		t.Fatalf("expected non-published entity to be cleared by Reset")
	}
	if v, ok := tbl.Resolve("perm"); !ok || v != "y" {
		t.Fatalf("expected published entity to survive Reset")
	}
	if _, ok := tbl.Resolve("lt"); !ok {
		t.Fatalf("expected built-in HTML entities to survive Reset")
	}
}
