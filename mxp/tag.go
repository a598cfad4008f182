package mxp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drake/rune/ansi"
	"github.com/drake/rune/output"
)

// Context bundles the per-transformer MXP state a tag application
// needs: the active style stack, entity/element stores, and line mode.
type Context struct {
	Styles   *ansi.StyleStack
	Entities *EntityTable
	Elements *ElementTable
	LineMode *LineModeState

	ClientName    string
	ClientVersion string
	Player        string

	// IgnoreMxpColors suppresses foreground/background changes from
	// COLOR/FONT/H tags, leaving other attributes (bold, links) intact.
	IgnoreMxpColors bool
}

// Result is what applying a tag or directive produced.
type Result struct {
	Fragments []output.Fragment
	Reply     []byte
}

func (r *Result) emit(f output.Fragment) { r.Fragments = append(r.Fragments, f) }

func (r *Result) errf(span, format string, args ...any) {
	r.emit(output.Error(fmt.Sprintf(format, args...), span))
}

// ApplyTag applies a parsed built-in MXP tag, mutating the style stack
// and/or emitting fragments (spec.md §4.5 built-in tag table).
func (c *Context) ApplyTag(t Tag) Result {
	var res Result

	if t.Close {
		c.applyClose(t, &res)
		return res
	}

	switch t.Name {
	case "B", "STRONG":
		c.pushAttr(func(s *ansi.Style) { s.Bold = true })
	case "I", "EM":
		c.pushAttr(func(s *ansi.Style) { s.Italic = true })
	case "U":
		c.pushAttr(func(s *ansi.Style) { s.Underline = true })
	case "S":
		c.pushAttr(func(s *ansi.Style) { s.Strikethrough = true })

	case "COLOR", "C":
		fore := firstArg(t, 0, "FORE")
		back := firstArg(t, 1, "BACK")
		c.pushAttr(func(s *ansi.Style) {
			if c.IgnoreMxpColors {
				return
			}
			if col, ok := parseColorArg(fore); ok {
				s.Fg = col
			}
			if col, ok := parseColorArg(back); ok {
				s.Bg = col
			}
		})

	case "FONT":
		color := t.Named["COLOR"]
		back := t.Named["BACK"]
		c.pushAttr(func(s *ansi.Style) {
			if c.IgnoreMxpColors {
				return
			}
			if col, ok := parseColorArg(color); ok {
				s.Fg = col
			}
			if col, ok := parseColorArg(back); ok {
				s.Bg = col
			}
		})

	case "H":
		fore := firstArg(t, 0, "FORE")
		back := firstArg(t, 1, "BACK")
		c.pushAttr(func(s *ansi.Style) {
			if c.IgnoreMxpColors {
				s.Inverse = true
				return
			}
			if col, ok := parseColorArg(fore); ok {
				s.Fg = col
			} else {
				s.Inverse = true
			}
			if col, ok := parseColorArg(back); ok {
				s.Bg = col
			}
		})

	case "A":
		href := t.Named["HREF"]
		c.pushAttr(func(s *ansi.Style) { s.LinkHref = href })

	case "SEND":
		href := firstArg(t, 0, "HREF")
		hint := t.Named["HINT"]
		expire := t.Named["EXPIRE"]
		c.pushAttr(func(s *ansi.Style) {
			s.LinkHref = href
			s.SendTo = href
			s.Hint = hint
			s.Expire = expire
		})

	case "BR":
		res.emit(output.Fragment{Kind: output.KindLineBreak})

	case "HR":
		res.emit(output.Fragment{Kind: output.KindHr})

	case "IMAGE":
		res.emit(output.Fragment{Kind: output.KindImage, Image: output.Image{
			Src: t.Named["SRC"], Width: atoiDefault(t.Named["WIDTH"], 0),
			Height: atoiDefault(t.Named["HEIGHT"], 0), Align: t.Named["ALIGN"],
		}})

	case "SOUND", "MUSIC":
		res.emit(output.Fragment{Kind: output.KindSound, Sound: output.Sound{
			Src: t.Named["SRC"], IsMusic: t.Name == "MUSIC",
			Volume: atoiDefault(t.Named["V"], 100), Repeats: atoiDefault(t.Named["L"], 1),
		}})

	case "GAUGE":
		res.emit(output.Fragment{Kind: output.KindGauge, Gauge: output.Gauge{
			Name: firstArg(t, 0, "NAME"), Entity: firstArg(t, 1, "ENTITY"),
			Max: firstArg(t, 2, "MAX"), Caption: firstArg(t, 3, "CAPTION"),
		}})

	case "STAT":
		res.emit(output.Fragment{Kind: output.KindStat, Stat: output.Stat{
			Name: firstArg(t, 0, "NAME"), Entity: firstArg(t, 1, "ENTITY"),
			Max: firstArg(t, 2, "MAX"), Caption: firstArg(t, 3, "CAPTION"),
		}})

	case "FRAME":
		res.emit(output.Fragment{Kind: output.KindFrame, Frame: output.Frame{
			Name: firstArg(t, 0, "NAME"), Width: atoiDefault(t.Named["WIDTH"], 0),
			Height: atoiDefault(t.Named["HEIGHT"], 0),
			Internal: t.Named["INTERNAL"] != "",
		}})

	case "DEST", "RELOCATE":
		res.emit(output.Fragment{Kind: output.KindRelocate, Relocate: output.Relocate{
			Host: firstArg(t, 0, "NAME"), Port: atoiDefault(firstArg(t, 1, "PORT"), 0),
		}})

	case "VERSION", "SUPPORT":
		reply := "\x1b[1z<VERSION MXP=\"0.8\" CLIENT=\"" + c.ClientName +
			"\" VERSION=\"" + c.ClientVersion + "\""
		if c.Player != "" {
			reply += " PLAYER=\"" + c.Player + "\""
		}
		reply += " REGISTERED=yes>"
		res.Reply = []byte(reply)

	case "RESET":
		c.Styles.UnwindAll()
		c.Styles.ResetAttributes()
		c.Entities.Reset()

	default:
		if el, ok := c.Elements.Lookup(t.Name); ok {
			c.applyUserElement(el, t, &res)
			return res
		}
		if c.LineMode.FullTagsAllowed() {
			res.errf(t.Name, "unknown tag: %s", t.Name)
		}
	}

	return res
}

// applyClose pops the style pushed by the matching open tag. A
// mismatched close (nothing open, or a different element on top) is
// reported as an MxpError per spec.md §4.5, without aborting the
// stream.
func (c *Context) applyClose(t Tag, res *Result) {
	if !c.Styles.Pop() {
		res.errf(t.Name, "mismatched close tag: </%s>", t.Name)
	}
}

// pushAttr clones the current style, lets mutate adjust it, and pushes
// the result as a new open scope.
func (c *Context) pushAttr(mutate func(*ansi.Style)) {
	st := c.Styles.Current()
	mutate(&st)
	c.Styles.Push(st)
}

// applyUserElement expands a user-defined element's template and emits
// the expansion as one Text fragment in the current style. The
// expansion is not lexed again: markup inside the template reaches the
// output as literal text. An OPEN element also pushes a copy of the
// current style as a new scope.
func (c *Context) applyUserElement(el *Element, t Tag, res *Result) {
	expanded := c.Elements.Expand(el, t.Positional, t.Named)
	res.emit(output.Fragment{Kind: output.KindText, Text: ansi.TextFragment{
		Content: expanded, Style: c.Styles.Current(),
	}})
	if el.Open && !t.Close {
		c.Styles.Push(c.Styles.Current())
	}
}

func firstArg(t Tag, idx int, namedKey string) string {
	if v, ok := t.Named[namedKey]; ok {
		return v
	}
	if idx < len(t.Positional) {
		return t.Positional[idx]
	}
	return ""
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseColorArg(s string) (ansi.Color, bool) {
	if s == "" {
		return ansi.Color{}, false
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, err1 := strconv.ParseUint(s[1:3], 16, 8)
		g, err2 := strconv.ParseUint(s[3:5], 16, 8)
		b, err3 := strconv.ParseUint(s[5:7], 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			return ansi.RGB24(uint8(r), uint8(g), uint8(b)), true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		if n < 16 {
			return ansi.Ansi16(uint8(n)), true
		}
		if n < 256 {
			return ansi.Xterm256(uint8(n)), true
		}
	}
	return ansi.NamedColor(s)
}

// ApplyEntityDirective applies a parsed "<!ENTITY ...>" directive.
func (c *Context) ApplyEntityDirective(d EntityDef) Result {
	var res Result
	if !IsValidEntityName(d.Name) {
		res.errf(d.Name, "invalid entity name: %s", d.Name)
		return res
	}
	entity, publish := c.Entities.Define(d.Name, d.Value, d.Private, d.Publish, d.Add, d.Remove, d.Delete)
	if publish {
		res.emit(output.Entity(output.EntityFragment{Name: d.Name, Value: entity.Value}))
	}
	return res
}

// ApplyElementDirective applies a parsed "<!ELEMENT ...>" directive.
func (c *Context) ApplyElementDirective(d ElementDef) Result {
	var res Result
	if !IsValidEntityName(d.Name) {
		res.errf(d.Name, "invalid element name: %s", d.Name)
		return res
	}
	c.Elements.Define(d.ToElement(), d.Delete)
	return res
}
