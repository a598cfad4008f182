package transform

import (
	"testing"

	"github.com/drake/rune/ansi"
	"github.com/drake/rune/mxp"
	"github.com/drake/rune/output"
)

func newTestMachine() *PhaseMachine {
	styles := ansi.NewStyleStack()
	ctx := &mxp.Context{
		Styles:        styles,
		Entities:      mxp.NewEntityTable(),
		Elements:      mxp.NewElementTable(),
		LineMode:      mxp.NewLineModeState(mxp.ModePermOpen),
		ClientName:    "test",
		ClientVersion: "1",
	}
	return NewPhaseMachine(styles, ctx)
}

func TestPhaseMachinePlainText(t *testing.T) {
	p := newTestMachine()
	p.Drive([]byte("hello"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Kind != output.KindText || frags[0].Text.Content != "hello" {
		t.Fatalf("expected one text fragment 'hello', got %+v", frags)
	}
}

func TestPhaseMachineLineBreakSplitsText(t *testing.T) {
	p := newTestMachine()
	p.Drive([]byte("line one\nline two"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 2 {
		t.Fatalf("expected two fragments split on LF, got %d: %+v", len(frags), frags)
	}
	if frags[0].Text.Content != "line one" || !frags[0].Text.Breaks {
		t.Fatalf("expected first fragment 'line one' with Breaks=true, got %+v", frags[0])
	}
	if frags[1].Text.Content != "line two" {
		t.Fatalf("expected second fragment 'line two', got %+v", frags[1])
	}
}

func TestPhaseMachineCRIsAbsorbed(t *testing.T) {
	p := newTestMachine()
	p.Drive([]byte("hi\r\nthere"))
	p.Finish()
	frags := p.Fragments()
	if frags[0].Text.Content != "hi" {
		t.Fatalf("expected CR dropped before LF flush, got %+v", frags[0])
	}
}

func TestPhaseMachineEmptyLineEmitsLineBreak(t *testing.T) {
	p := newTestMachine()
	p.Drive([]byte("\n"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Kind != output.KindLineBreak {
		t.Fatalf("expected a bare LineBreak fragment for an empty line, got %+v", frags)
	}
}

func TestPhaseMachineSGRFlushesTextUnderPriorStyle(t *testing.T) {
	p := newTestMachine()
	p.Drive([]byte("plain\x1b[1mbold"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 2 {
		t.Fatalf("expected SGR to split into two fragments, got %d: %+v", len(frags), frags)
	}
	if frags[0].Text.Content != "plain" || frags[0].Text.Style.Bold {
		t.Fatalf("expected 'plain' flushed under the pre-SGR style, got %+v", frags[0])
	}
	if frags[1].Text.Content != "bold" || !frags[1].Text.Style.Bold {
		t.Fatalf("expected 'bold' flushed under the bold style, got %+v", frags[1])
	}
}

func TestPhaseMachineStreamEndFlushesUnterminatedSpan(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte("<B>hello"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Text.Content != "hello" {
		t.Fatalf("expected '<B>hello' at stream end to flush 'hello' with no error, got %+v", frags)
	}
}

func TestPhaseMachineMxpTagQuotedGreaterThan(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte(`<COLOR FORE="red>ish"><B>` + "\n"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) == 0 {
		t.Fatalf("expected the quoted '>' not to terminate the tag early")
	}
	for _, f := range frags {
		if f.Kind == output.KindText {
			t.Fatalf("expected the quoted '>' not to terminate the tag early, got leftover text %+v", f)
		}
	}
}

func TestPhaseMachineMxpCommentWithBareGreaterThan(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte("<!-- a > b -->after"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Text.Content != "after" {
		t.Fatalf("expected the comment body's bare '>' to be absorbed, leaving only 'after', got %+v", frags)
	}
}

func TestPhaseMachineMxpUnknownEntityLiteral(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte("&nosuchentity;"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Text.Content != "&nosuchentity;" {
		t.Fatalf("expected unknown entity emitted literally, got %+v", frags)
	}
}

func TestPhaseMachineMxpUnterminatedEntityAborts(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte("&unknown rest"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Text.Content != "&unknown rest" {
		t.Fatalf("expected the trailing-space case to emit the literal ampersand text, got %+v", frags)
	}
}

func TestPhaseMachineMxpKnownEntityResolves(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte("a &lt; b"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Text.Content != "a < b" {
		t.Fatalf("expected &lt; to resolve to <, got %+v", frags)
	}
}

func TestPhaseMachineMxpForbiddenTagUnderOpenModeEmitsLiteral(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte("<SOMEUSERELEMENT>text"))
	p.Finish()
	frags := p.Fragments()
	if len(frags) != 1 || frags[0].Text.Content != "<SOMEUSERELEMENT>text" {
		t.Fatalf("expected a tag forbidden under PermOpen to be emitted as literal text, got %+v", frags)
	}
}

func TestPhaseMachineEscCResetsTerminal(t *testing.T) {
	p := newTestMachine()
	p.mxpOn = true
	p.Drive([]byte("<B>bold\x1bc"))
	if p.styles.Depth() != 0 {
		t.Fatalf("expected ESC c to unwind all open styles, got depth %d", p.styles.Depth())
	}
}

func TestPhaseMachineOSCHyperlinkSetsLinkHref(t *testing.T) {
	p := newTestMachine()
	p.Drive([]byte("\x1b]8;;https://example.invalid\x07linktext"))
	p.Finish()
	frags := p.Fragments()
	var found bool
	for _, f := range frags {
		if f.Kind == output.KindText && f.Text.Style.LinkHref == "https://example.invalid" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the OSC 8 hyperlink to set LinkHref on following text, got %+v", frags)
	}
}
