package ansi

import "testing"

func TestStyleStackPushPop(t *testing.T) {
	s := NewStyleStack()
	if s.Depth() != 0 {
		t.Fatalf("expected depth 0 at base, got %d", s.Depth())
	}
	cur := s.PushCurrent()
	cur.Bold = true
	s.SetCurrent(cur)
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1 after push, got %d", s.Depth())
	}
	if !s.Current().Bold {
		t.Fatalf("expected pushed style to carry Bold")
	}
	if !s.Pop() {
		t.Fatalf("expected Pop to succeed at depth 1")
	}
	if s.Current().Bold {
		t.Fatalf("expected base style after pop to be unaffected")
	}
}

func TestStyleStackPopAtBaseFails(t *testing.T) {
	s := NewStyleStack()
	if s.Pop() {
		t.Fatalf("Pop at base style must report false (mismatched close)")
	}
}

func TestStyleStackUnwindAll(t *testing.T) {
	s := NewStyleStack()
	s.PushCurrent()
	s.PushCurrent()
	s.PushCurrent()
	if s.Depth() != 3 {
		t.Fatalf("expected depth 3, got %d", s.Depth())
	}
	s.UnwindAll()
	if s.Depth() != 0 {
		t.Fatalf("expected depth 0 after UnwindAll, got %d", s.Depth())
	}
}

func TestStyleStackResetAttributesKeepsDepth(t *testing.T) {
	s := NewStyleStack()
	s.PushCurrent()
	cur := s.Current()
	cur.Bold = true
	cur.ElementHandle = 3
	s.SetCurrent(cur)

	s.ResetAttributes()
	if s.Depth() != 1 {
		t.Fatalf("ResetAttributes must not change nesting depth, got %d", s.Depth())
	}
	if s.Current().Bold {
		t.Fatalf("ResetAttributes must clear attributes")
	}
}
