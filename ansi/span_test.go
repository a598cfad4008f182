package ansi

import "testing"

func TestSpanBufferFlushIsIdempotentOnEmpty(t *testing.T) {
	s := NewSpanBuffer(NewStyleStack())
	if _, ok := s.Flush(false); ok {
		t.Fatalf("empty non-breaking flush must be a no-op")
	}
}

func TestSpanBufferFlushEmitsBreakEvenWhenEmpty(t *testing.T) {
	s := NewSpanBuffer(NewStyleStack())
	frag, ok := s.Flush(true)
	if !ok || !frag.Breaks {
		t.Fatalf("an empty breaking flush must still emit, got %+v ok=%v", frag, ok)
	}
}

func TestSpanBufferFlushesUnderOpeningStyle(t *testing.T) {
	styles := NewStyleStack()
	span := NewSpanBuffer(styles)
	span.Append([]byte("hello"))

	cur := styles.Current()
	cur.Bold = true
	styles.SetCurrent(cur)

	frag, ok := span.NoteStyleChange()
	if !ok {
		t.Fatalf("expected a flush")
	}
	if frag.Content != "hello" {
		t.Fatalf("expected content %q, got %q", "hello", frag.Content)
	}
	if frag.Style.Bold {
		t.Fatalf("flushed fragment must carry the style active when the text was buffered, not after the mutation")
	}
}
