package output

import (
	"testing"

	"github.com/drake/rune/ansi"
)

func TestAssemblerCoalescesAdjacentText(t *testing.T) {
	a := NewAssembler()
	st := ansi.Style{Bold: true}
	a.Push(Text(ansi.TextFragment{Content: "hello ", Style: st}))
	a.Push(Text(ansi.TextFragment{Content: "world", Style: st}))

	frags := a.Drain()
	if len(frags) != 1 {
		t.Fatalf("expected coalesced single fragment, got %d: %+v", len(frags), frags)
	}
	if frags[0].Text.Content != "hello world" {
		t.Fatalf("expected merged content, got %q", frags[0].Text.Content)
	}
}

func TestAssemblerDoesNotCoalesceAcrossStyleChange(t *testing.T) {
	a := NewAssembler()
	a.Push(Text(ansi.TextFragment{Content: "plain"}))
	a.Push(Text(ansi.TextFragment{Content: "bold", Style: ansi.Style{Bold: true}}))

	frags := a.Drain()
	if len(frags) != 2 {
		t.Fatalf("expected two distinct fragments across a style change, got %d", len(frags))
	}
}

func TestAssemblerDoesNotCoalesceAcrossBreak(t *testing.T) {
	a := NewAssembler()
	a.Push(Text(ansi.TextFragment{Content: "line one", Breaks: true}))
	a.Push(Text(ansi.TextFragment{Content: "line two"}))

	frags := a.Drain()
	if len(frags) != 2 {
		t.Fatalf("expected a Breaks=true fragment to stay distinct, got %d", len(frags))
	}
}

func TestAssemblerDrainEmptiesQueue(t *testing.T) {
	a := NewAssembler()
	a.Push(LineBreak())
	if a.Len() != 1 {
		t.Fatalf("expected Len 1 before drain")
	}
	_ = a.Drain()
	if a.Len() != 0 {
		t.Fatalf("expected Len 0 after drain")
	}
	if frags := a.Drain(); frags != nil {
		t.Fatalf("expected nil from draining an empty assembler, got %v", frags)
	}
}
