package mxp

import (
	"strings"
	"testing"

	"github.com/drake/rune/ansi"
	"github.com/drake/rune/output"
)

func newTestContext() *Context {
	return &Context{
		Styles:        ansi.NewStyleStack(),
		Entities:      NewEntityTable(),
		Elements:      NewElementTable(),
		LineMode:      NewLineModeState(ModePermOpen),
		ClientName:    "testclient",
		ClientVersion: "0.1",
	}
}

func TestApplyTagBoldPushesStyle(t *testing.T) {
	c := newTestContext()
	c.ApplyTag(Tag{Name: "B"})
	if !c.Styles.Current().Bold {
		t.Fatalf("expected <B> to push a bold style")
	}
	if c.Styles.Depth() != 1 {
		t.Fatalf("expected one open scope, got depth %d", c.Styles.Depth())
	}
}

func TestApplyTagCloseMismatchEmitsError(t *testing.T) {
	c := newTestContext()
	res := c.ApplyTag(Tag{Name: "B", Close: true})
	if len(res.Fragments) != 1 || res.Fragments[0].Kind != output.KindMxpError {
		t.Fatalf("expected an MxpError fragment for a mismatched close, got %+v", res.Fragments)
	}
}

func TestApplyTagCloseBalancesOpen(t *testing.T) {
	c := newTestContext()
	c.ApplyTag(Tag{Name: "B"})
	res := c.ApplyTag(Tag{Name: "B", Close: true})
	if len(res.Fragments) != 0 {
		t.Fatalf("expected a balanced close to produce no error, got %+v", res.Fragments)
	}
	if c.Styles.Depth() != 0 {
		t.Fatalf("expected depth 0 after balanced close, got %d", c.Styles.Depth())
	}
}

func TestApplyTagColorNamed(t *testing.T) {
	c := newTestContext()
	c.ApplyTag(Tag{Name: "COLOR", Positional: []string{"red"}})
	fg := c.Styles.Current().Fg
	if fg.Origin != ansi.ColorNamed || fg.Name != "red" {
		t.Fatalf("expected named red fg, got %+v", fg)
	}
}

func TestApplyTagBrEmitsLineBreak(t *testing.T) {
	c := newTestContext()
	res := c.ApplyTag(Tag{Name: "BR"})
	if len(res.Fragments) != 1 || res.Fragments[0].Kind != output.KindLineBreak {
		t.Fatalf("expected a LineBreak fragment, got %+v", res.Fragments)
	}
}

func TestApplyTagImageAttributes(t *testing.T) {
	c := newTestContext()
	res := c.ApplyTag(Tag{Name: "IMAGE", Named: map[string]string{"SRC": "map.png", "WIDTH": "10", "HEIGHT": "20"}})
	if len(res.Fragments) != 1 || res.Fragments[0].Kind != output.KindImage {
		t.Fatalf("expected an Image fragment, got %+v", res.Fragments)
	}
	img := res.Fragments[0].Image
	if img.Src != "map.png" || img.Width != 10 || img.Height != 20 {
		t.Fatalf("unexpected image attributes: %+v", img)
	}
}

func TestApplyTagResetClearsStylesAndEntities(t *testing.T) {
	c := newTestContext()
	c.ApplyTag(Tag{Name: "B"})
	c.Entities.Define("temp", "x", false, false, false, false, false)

	c.ApplyTag(Tag{Name: "RESET"})

	if c.Styles.Depth() != 0 {
		t.Fatalf("expected RESET to unwind all open styles, got depth %d", c.Styles.Depth())
	}
	if _, ok := c.Entities.Resolve("temp"); ok {
		t.Fatalf("expected RESET to clear non-published entities")
	}
}

func TestApplyTagUnknownUnderSecureReportsError(t *testing.T) {
	c := newTestContext()
	c.LineMode.Apply(1) // Secure: full tag set, so unknown names are errors
	res := c.ApplyTag(Tag{Name: "NOSUCHTAG"})
	if len(res.Fragments) != 1 || res.Fragments[0].Kind != output.KindMxpError {
		t.Fatalf("expected an MxpError for an unknown tag under Secure, got %+v", res.Fragments)
	}
}

func TestApplyTagUserElementExpandsBody(t *testing.T) {
	c := newTestContext()
	c.Elements.Define(Element{Name: "HELLO", Body: "hi there"}, false)
	res := c.ApplyTag(Tag{Name: "HELLO"})
	if len(res.Fragments) != 1 || res.Fragments[0].Kind != output.KindText {
		t.Fatalf("expected a Text fragment from the user element, got %+v", res.Fragments)
	}
	if res.Fragments[0].Text.Content != "hi there" {
		t.Fatalf("expected expanded body %q, got %q", "hi there", res.Fragments[0].Text.Content)
	}
}

func TestApplyEntityDirectivePublishEmitsFragment(t *testing.T) {
	c := newTestContext()
	res := c.ApplyEntityDirective(EntityDef{Name: "hp", Value: "100", Publish: true})
	if len(res.Fragments) != 1 || res.Fragments[0].Kind != output.KindEntity {
		t.Fatalf("expected a published entity fragment, got %+v", res.Fragments)
	}
	if res.Fragments[0].Entity.Name != "hp" || res.Fragments[0].Entity.Value != "100" {
		t.Fatalf("unexpected entity fragment: %+v", res.Fragments[0].Entity)
	}
}

func TestApplyEntityDirectiveInvalidNameErrors(t *testing.T) {
	c := newTestContext()
	res := c.ApplyEntityDirective(EntityDef{Name: "1bad", Value: "x"})
	if len(res.Fragments) != 1 || res.Fragments[0].Kind != output.KindMxpError {
		t.Fatalf("expected an error for an invalid entity name, got %+v", res.Fragments)
	}
}

func TestApplyTagColorIgnoredWhenConfigured(t *testing.T) {
	c := newTestContext()
	c.IgnoreMxpColors = true
	c.ApplyTag(Tag{Name: "COLOR", Positional: []string{"red"}})
	fg := c.Styles.Current().Fg
	if fg.Origin == ansi.ColorNamed && fg.Name == "red" {
		t.Fatalf("expected ignore_mxp_colors to suppress the fg change, got %+v", fg)
	}
}

func TestApplyTagHIgnoredColorFallsBackToInverse(t *testing.T) {
	c := newTestContext()
	c.IgnoreMxpColors = true
	c.ApplyTag(Tag{Name: "H"})
	if !c.Styles.Current().Inverse {
		t.Fatalf("expected <H> to fall back to Inverse when colors are ignored")
	}
}

func TestApplyTagVersionIncludesPlayerWhenSet(t *testing.T) {
	c := newTestContext()
	c.Player = "aragorn"
	res := c.ApplyTag(Tag{Name: "VERSION"})
	if !strings.Contains(string(res.Reply), `PLAYER="aragorn"`) {
		t.Fatalf("expected PLAYER attribute in reply, got %q", res.Reply)
	}
}

func TestApplyTagVersionOmitsPlayerWhenUnset(t *testing.T) {
	c := newTestContext()
	res := c.ApplyTag(Tag{Name: "VERSION"})
	if strings.Contains(string(res.Reply), "PLAYER=") {
		t.Fatalf("expected no PLAYER attribute when unset, got %q", res.Reply)
	}
}
