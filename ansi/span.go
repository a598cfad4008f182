package ansi

// TextFragment is a run of text rendered in a single style.
type TextFragment struct {
	Content string
	Style   Style
	// Breaks is true when this fragment ended at a line break (LF),
	// matching spec.md §3's TextFragment.breaks.
	Breaks bool
}

// SpanBuffer accumulates text under the active style and flushes it
// into TextFragments on style changes or explicit flush points
// (spec.md §4.6).
type SpanBuffer struct {
	styles *StyleStack
	buf    []byte
	// flushStyle is the style the in-progress buffer was opened under;
	// flushing emits this, not necessarily the current style, so a
	// style change mid-buffer flushes the *prior* style first.
	flushStyle Style
}

// NewSpanBuffer returns an empty span buffer sharing the given style
// stack.
func NewSpanBuffer(styles *StyleStack) *SpanBuffer {
	return &SpanBuffer{styles: styles, flushStyle: styles.Current()}
}

// Styles returns the underlying style stack.
func (s *SpanBuffer) Styles() *StyleStack { return s.styles }

// Append adds raw text bytes to the in-progress fragment.
func (s *SpanBuffer) Append(b []byte) {
	if len(s.buf) == 0 {
		s.flushStyle = s.styles.Current()
	}
	s.buf = append(s.buf, b...)
}

// AppendString adds text produced internally (entity expansion, element
// template splicing) to the in-progress fragment.
func (s *SpanBuffer) AppendString(text string) {
	s.Append([]byte(text))
}

// Pending reports whether there is unflushed text.
func (s *SpanBuffer) Pending() bool { return len(s.buf) > 0 }

// Flush emits the accumulated text as a TextFragment under the style it
// was opened with, and resets the buffer. Returns false if there was
// nothing to flush and breaks is false (an empty, non-breaking flush is
// a no-op, matching "idempotent flush" in spec.md §8).
func (s *SpanBuffer) Flush(breaks bool) (TextFragment, bool) {
	if len(s.buf) == 0 && !breaks {
		return TextFragment{}, false
	}
	frag := TextFragment{Content: string(s.buf), Style: s.flushStyle, Breaks: breaks}
	s.buf = s.buf[:0]
	s.flushStyle = s.styles.Current()
	return frag, true
}

// NoteStyleChange flushes any pending text under the prior style ahead
// of a style mutation, so the caller can then push/pop/mutate the
// stack and have subsequent text flush separately.
func (s *SpanBuffer) NoteStyleChange() (TextFragment, bool) {
	return s.Flush(false)
}
