package mxp

import "testing"

func TestParseTagBasic(t *testing.T) {
	tag := ParseTag(`COLOR FORE=RED BACK="dark blue"`)
	if tag.Name != "COLOR" || tag.Close {
		t.Fatalf("unexpected tag: %+v", tag)
	}
	if tag.Named["FORE"] != "RED" {
		t.Fatalf("expected FORE=RED, got %q", tag.Named["FORE"])
	}
	if tag.Named["BACK"] != "dark blue" {
		t.Fatalf("expected quoted value to survive unquoting, got %q", tag.Named["BACK"])
	}
}

func TestParseTagClose(t *testing.T) {
	tag := ParseTag("/B")
	if !tag.Close || tag.Name != "B" {
		t.Fatalf("expected close tag B, got %+v", tag)
	}
}

func TestParseTagPositional(t *testing.T) {
	tag := ParseTag("SEND somecommand")
	if len(tag.Positional) != 1 || tag.Positional[0] != "somecommand" {
		t.Fatalf("expected one positional argument, got %+v", tag.Positional)
	}
}

func TestScanWordsHandlesQuotedGreaterThan(t *testing.T) {
	words := scanWords(`TAG attr="value with > inside"`)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d: %+v", len(words), words)
	}
	if words[1] != `attr="value with > inside"` {
		t.Fatalf("expected quoted run kept atomic, got %q", words[1])
	}
}

func TestParseEntityDefFlags(t *testing.T) {
	d := ParseEntityDef(`greeting "hello" PUBLISH PRIVATE`)
	if d.Name != "greeting" || d.Value != "hello" || !d.Publish || !d.Private {
		t.Fatalf("unexpected entity def: %+v", d)
	}
}

func TestParseElementDefToElement(t *testing.T) {
	d := ParseElementDef(`bold "<B>" ATT="color=red" OPEN`)
	el := d.ToElement()
	if el.Name != "bold" || el.Body != "<B>" || !el.Open {
		t.Fatalf("unexpected element: %+v", el)
	}
	if len(el.Named) != 1 || el.Named[0].Name != "color" || el.Named[0].Default != "red" {
		t.Fatalf("expected one named param color=red, got %+v", el.Named)
	}
}
