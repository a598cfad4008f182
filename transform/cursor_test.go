package transform

import "testing"

func TestCursorPeekAdvanceNext(t *testing.T) {
	c := NewCursor([]byte("ab"))
	b, ok := c.Peek()
	if !ok || b != 'a' {
		t.Fatalf("expected peek 'a', got %q ok=%v", b, ok)
	}
	c.Advance()
	b, ok = c.Next()
	if !ok || b != 'b' {
		t.Fatalf("expected next 'b', got %q ok=%v", b, ok)
	}
	if _, ok = c.Next(); ok {
		t.Fatalf("expected exhausted cursor to report ok=false")
	}
}

func TestCursorTakeWhile(t *testing.T) {
	c := NewCursor([]byte("123abc"))
	digits := c.TakeWhile(func(b byte) bool { return b >= '0' && b <= '9' })
	if string(digits) != "123" {
		t.Fatalf("expected %q, got %q", "123", digits)
	}
	if c.Remaining() != 3 {
		t.Fatalf("expected 3 bytes remaining, got %d", c.Remaining())
	}
	if string(c.Rest()) != "abc" {
		t.Fatalf("expected rest %q, got %q", "abc", c.Rest())
	}
}
