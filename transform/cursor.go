// Package transform is the byte-level protocol transformer: it drives
// TELNET framing (delegated to network.Parser), the ANSI/MXP phase
// state machine, and the output fragment assembler as one synchronous
// unit (spec.md §4.7, §4.9).
package transform

// Cursor is an infallible, non-owning view over one batch of bytes a
// phase step is driving through. It never persists across Drive calls:
// Drive consumes every byte of its batch, and a sequence cut off at the
// batch end carries over in the PhaseMachine's phase and pending
// buffer, not in the cursor (spec.md §4.1 "the cursor never owns the
// buffer").
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor borrows buf for the duration of one drive.
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

// Peek reports the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos], true
}

// Advance consumes one byte.
func (c *Cursor) Advance() {
	if c.pos < len(c.buf) {
		c.pos++
	}
}

// Next consumes and returns the next byte.
func (c *Cursor) Next() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// TakeWhile consumes and returns the longest run of bytes satisfying
// pred, starting at the current position.
func (c *Cursor) TakeWhile(pred func(byte) bool) []byte {
	start := c.pos
	for c.pos < len(c.buf) && pred(c.buf[c.pos]) {
		c.pos++
	}
	return c.buf[start:c.pos]
}

// Remaining reports how many unconsumed bytes are left.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Rest returns every unconsumed byte without advancing.
func (c *Cursor) Rest() []byte { return c.buf[c.pos:] }
