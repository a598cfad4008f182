package transform

import (
	"strings"

	"github.com/drake/rune/ansi"
	"github.com/drake/rune/mxp"
	"github.com/drake/rune/output"
)

// Phase is the sub-state the byte machine is in (spec.md §4.7). TELNET
// framing is stripped before bytes reach PhaseMachine — see
// Transformer.Receive — so there is no Iac phase here; Normal only
// ever dispatches on ESC, '<', '&', CR/LF, and plain text.
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseEsc
	PhaseCsi
	PhaseOsc
	PhaseOscEsc
	PhaseMxpElement
	PhaseMxpEntity
)

// PhaseMachine drives the ANSI/MXP byte classifier over plain
// (post-TELNET) data, feeding style mutations into a shared
// ansi.StyleStack/ansi.SpanBuffer and MXP tag/entity/directive
// applications into a shared mxp.Context, and collecting the results
// into an output.Assembler plus a pending server-reply buffer.
type PhaseMachine struct {
	phase Phase

	pending []byte
	quote   byte // active quote byte inside PhaseMxpElement, 0 if none

	styles *ansi.StyleStack
	span   *ansi.SpanBuffer
	mxp    *mxp.Context
	mxpOn  bool

	assembler *output.Assembler
	replies   []byte
}

// NewPhaseMachine builds a machine sharing the given style stack and
// MXP context with the rest of the transformer.
func NewPhaseMachine(styles *ansi.StyleStack, m *mxp.Context) *PhaseMachine {
	return &PhaseMachine{
		styles:    styles,
		span:      ansi.NewSpanBuffer(styles),
		mxp:       m,
		assembler: output.NewAssembler(),
	}
}

// SetMxpEnabled toggles whether '<' and '&' enter MXP lexing.
func (p *PhaseMachine) SetMxpEnabled(on bool) { p.mxpOn = on }

// MxpEnabled reports the current MXP toggle.
func (p *PhaseMachine) MxpEnabled() bool { return p.mxpOn }

// Drive feeds one batch of plain bytes through the machine.
func (p *PhaseMachine) Drive(data []byte) {
	c := NewCursor(data)
	for {
		b, ok := c.Next()
		if !ok {
			return
		}
		p.step(b)
	}
}

// Fragments drains every fragment produced so far.
func (p *PhaseMachine) Fragments() []output.Fragment { return p.assembler.Drain() }

// DrainReplies drains every server-reply byte accumulated so far.
func (p *PhaseMachine) DrainReplies() []byte {
	r := p.replies
	p.replies = nil
	return r
}

// Finish flushes any in-progress text span, for use at stream end
// (spec.md invariant: "<B>hello at stream end flushes hello... no
// error").
func (p *PhaseMachine) Finish() {
	if frag, ok := p.span.Flush(false); ok {
		p.assembler.Push(output.Text(frag))
	}
}

func (p *PhaseMachine) step(b byte) {
	switch p.phase {
	case PhaseNormal:
		p.stepNormal(b)
	case PhaseEsc:
		p.stepEsc(b)
	case PhaseCsi:
		p.stepCsi(b)
	case PhaseOsc:
		p.stepOsc(b)
	case PhaseOscEsc:
		p.stepOscEsc(b)
	case PhaseMxpElement:
		p.stepMxpElement(b)
	case PhaseMxpEntity:
		p.stepMxpEntity(b)
	}
}

func (p *PhaseMachine) stepNormal(b byte) {
	switch {
	case b == 0x1B:
		p.phase = PhaseEsc
	case b == '<' && p.mxpOn:
		p.phase = PhaseMxpElement
		p.pending = p.pending[:0]
		p.quote = 0
	case b == '&' && p.mxpOn:
		p.phase = PhaseMxpEntity
		p.pending = p.pending[:0]
	case b == '\r':
		// absorbed; a following LF (if any) does the flushing.
	case b == '\n':
		p.flushLine()
	default:
		p.span.Append([]byte{b})
	}
}

func (p *PhaseMachine) flushLine() {
	if frag, ok := p.span.Flush(true); ok {
		p.assembler.Push(output.Text(frag))
	} else {
		p.assembler.Push(output.LineBreak())
	}
	p.mxp.LineMode.NextLine()
}

func (p *PhaseMachine) flushSpan() {
	if frag, ok := p.span.NoteStyleChange(); ok {
		p.assembler.Push(output.Text(frag))
	}
}

func (p *PhaseMachine) stepEsc(b byte) {
	switch b {
	case '[':
		p.phase = PhaseCsi
		p.pending = p.pending[:0]
	case ']':
		p.phase = PhaseOsc
		p.pending = p.pending[:0]
	case 'c':
		p.resetTerminal()
		p.phase = PhaseNormal
	default:
		// '=', '>' (keypad mode) and anything else unrecognised: tracked
		// nowhere further, no visible effect (spec.md §4.4).
		p.phase = PhaseNormal
	}
}

func (p *PhaseMachine) resetTerminal() {
	p.flushSpan()
	p.styles.UnwindAll()
	p.styles.ResetAttributes()
}

func (p *PhaseMachine) stepCsi(b byte) {
	if ansi.IsFinalByte(b) {
		p.finishCsi(b)
		p.phase = PhaseNormal
		return
	}
	p.pending = append(p.pending, b)
}

func (p *PhaseMachine) finishCsi(final byte) {
	var paramBytes, intermediates []byte
	for _, b := range p.pending {
		// '>' is a private-marker parameter byte; it is routed to the
		// intermediates so DecodeCSI can tell "CSI > c" from "CSI c".
		if ansi.IsIntermediateByte(b) || b == '>' {
			intermediates = append(intermediates, b)
		} else {
			paramBytes = append(paramBytes, b)
		}
	}
	params := ansi.ParseParams(paramBytes)

	if final == 'm' {
		p.flushSpan()
	}
	st := p.styles.Current()
	result := ansi.DecodeCSI(params, intermediates, final, &st)
	p.styles.SetCurrent(st)

	if result.Reply != nil {
		p.replies = append(p.replies, result.Reply...)
	}
	if result.IsLineMode {
		p.mxp.LineMode.Apply(result.Param)
	}
}

func (p *PhaseMachine) stepOsc(b byte) {
	switch b {
	case 0x07:
		p.finishOsc()
		p.phase = PhaseNormal
	case 0x1B:
		p.phase = PhaseOscEsc
	default:
		p.pending = append(p.pending, b)
	}
}

func (p *PhaseMachine) stepOscEsc(b byte) {
	if b == '\\' {
		p.finishOsc()
		p.phase = PhaseNormal
		return
	}
	p.pending = append(p.pending, 0x1B)
	p.phase = PhaseOsc
	p.stepOsc(b)
}

func (p *PhaseMachine) finishOsc() {
	result := ansi.DecodeOSC(p.pending)
	if result.IsLink {
		p.flushSpan()
		st := p.styles.Current()
		st.LinkHref = result.LinkURL
		p.styles.SetCurrent(st)
	}
}

func (p *PhaseMachine) stepMxpElement(b byte) {
	if p.quote != 0 {
		p.pending = append(p.pending, b)
		if b == p.quote {
			p.quote = 0
		}
		return
	}
	switch b {
	case '\'', '"':
		p.quote = b
		p.pending = append(p.pending, b)
	case '>':
		if isMxpCommentBody(p.pending) && !hasMxpCommentEnd(p.pending) {
			p.pending = append(p.pending, b)
			return
		}
		p.finishMxpTag()
		p.phase = PhaseNormal
	default:
		p.pending = append(p.pending, b)
	}
}

func isMxpCommentBody(pending []byte) bool {
	return len(pending) >= 3 && pending[0] == '!' && pending[1] == '-' && pending[2] == '-'
}

func hasMxpCommentEnd(pending []byte) bool {
	n := len(pending)
	return n >= 2 && pending[n-1] == '-' && pending[n-2] == '-'
}

func (p *PhaseMachine) finishMxpTag() {
	body := string(p.pending)
	switch {
	case strings.HasPrefix(body, "!--"):
		// comment, discarded
	case strings.HasPrefix(body, "!"):
		p.finishMxpDirective(body[1:])
	default:
		p.finishMxpOpenOrClose(body)
	}
}

func (p *PhaseMachine) finishMxpDirective(rest string) {
	trimmed := strings.TrimSpace(rest)
	upper := strings.ToUpper(trimmed)
	switch {
	case strings.HasPrefix(upper, "ELEMENT"):
		def := mxp.ParseElementDef(strings.TrimSpace(trimmed[len("ELEMENT"):]))
		p.flushSpan()
		p.pushResult(p.mxp.ApplyElementDirective(def))
	case strings.HasPrefix(upper, "ENTITY"):
		def := mxp.ParseEntityDef(strings.TrimSpace(trimmed[len("ENTITY"):]))
		p.flushSpan()
		p.pushResult(p.mxp.ApplyEntityDirective(def))
	}
}

func (p *PhaseMachine) finishMxpOpenOrClose(body string) {
	tag := mxp.ParseTag(body)
	if !p.mxp.LineMode.TagAllowed(tag.Name) {
		p.span.AppendString("<" + body + ">")
		return
	}
	p.flushSpan()
	p.pushResult(p.mxp.ApplyTag(tag))
}

func (p *PhaseMachine) pushResult(res mxp.Result) {
	for _, f := range res.Fragments {
		p.assembler.Push(f)
	}
	if res.Reply != nil {
		p.replies = append(p.replies, res.Reply...)
	}
}

func (p *PhaseMachine) stepMxpEntity(b byte) {
	if b == ';' {
		p.finishMxpEntity()
		p.phase = PhaseNormal
		return
	}
	if isMxpEntityChar(b) {
		p.pending = append(p.pending, b)
		return
	}
	p.abortMxpEntity()
	p.phase = PhaseNormal
	p.stepNormal(b)
}

func isMxpEntityChar(b byte) bool {
	return b == '#' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (p *PhaseMachine) finishMxpEntity() {
	name := string(p.pending)
	if value, ok := p.mxp.Entities.Resolve(name); ok {
		p.span.AppendString(value)
		return
	}
	p.span.AppendString("&" + name + ";")
}

func (p *PhaseMachine) abortMxpEntity() {
	p.span.AppendString("&" + string(p.pending))
}
