package mxp

import "testing"

func TestElementTableDefineLookupDelete(t *testing.T) {
	tbl := NewElementTable()
	tbl.Define(Element{Name: "rip", Body: "<B>dead</B>"}, false)

	el, ok := tbl.Lookup("RIP")
	if !ok || el.Body != "<B>dead</B>" {
		t.Fatalf("expected case-insensitive lookup to find rip, got %+v ok=%v", el, ok)
	}

	tbl.Define(Element{Name: "rip"}, true)
	if _, ok := tbl.Lookup("rip"); ok {
		t.Fatalf("expected DELETE to remove the element")
	}
}

func TestElementTableExpandPositionalAndNamed(t *testing.T) {
	tbl := NewElementTable()
	el := Element{
		Name:       "greet",
		Positional: []string{"who"},
		Named:      []NamedParam{{Name: "punct", Default: "!"}},
		Body:       "hi &who;&punct;",
	}
	tbl.Define(el, false)

	got := tbl.Expand(&el, []string{"alice"}, map[string]string{})
	if got != "hi alice!" {
		t.Fatalf("expected default punctuation applied, got %q", got)
	}

	got = tbl.Expand(&el, []string{"bob"}, map[string]string{"punct": "?"})
	if got != "hi bob?" {
		t.Fatalf("expected named override applied, got %q", got)
	}
}

func TestElementTableExpandNumericPositionalReference(t *testing.T) {
	tbl := NewElementTable()
	el := Element{Name: "pair", Body: "&1;-&2;"}
	tbl.Define(el, false)

	got := tbl.Expand(&el, []string{"x", "y"}, map[string]string{})
	if got != "x-y" {
		t.Fatalf("expected numeric &1;/&2; substitution, got %q", got)
	}
}

func TestElementTableExpandUnknownReferenceLeftLiteral(t *testing.T) {
	tbl := NewElementTable()
	el := Element{Name: "odd", Body: "value &nosuch;"}
	tbl.Define(el, false)

	got := tbl.Expand(&el, nil, nil)
	if got != "value &nosuch;" {
		t.Fatalf("expected unresolved reference left literal, got %q", got)
	}
}
