package ansi

import "github.com/charmbracelet/lipgloss"

// Style is the full set of visual and MXP-semantic attributes attached
// to a span of text. Styles form a stack: MXP open tags push a copy,
// SGR mutates the top entry in place, and close tags (or end of stream)
// pop back to the enclosing style.
type Style struct {
	Fg, Bg Color

	Bold, Italic, Underline, Strikethrough, Blink, Inverse bool

	// MXP semantic attributes. Empty string means "not set".
	LinkHref string
	SendTo   string
	Hint     string
	Expire   string

	// ElementHandle is a small integer index into the owning
	// transformer's element table, avoiding a deep clone of the element
	// definition per span (spec.md §9 "Back-references in styles").
	ElementHandle int
}

// Lipgloss renders the style as a lipgloss.Style for display.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg.Origin != ColorDefault {
		st = st.Foreground(s.Fg.Lipgloss())
	}
	if s.Bg.Origin != ColorDefault {
		st = st.Background(s.Bg.Lipgloss())
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Strikethrough {
		st = st.Strikethrough(true)
	}
	if s.Blink {
		st = st.Blink(true)
	}
	if s.Inverse {
		st = st.Reverse(true)
	}
	return st
}

// StyleStack holds the running style stack for a transformer. Index 0
// is always present and holds the base (default) style; it is never
// popped.
type StyleStack struct {
	frames []Style
}

// NewStyleStack returns a stack seeded with a default base style.
func NewStyleStack() *StyleStack {
	return &StyleStack{frames: []Style{{}}}
}

// Current returns the active (topmost) style.
func (s *StyleStack) Current() Style {
	return s.frames[len(s.frames)-1]
}

// SetCurrent replaces the active style in place, used by SGR mutation.
func (s *StyleStack) SetCurrent(st Style) {
	s.frames[len(s.frames)-1] = st
}

// Push opens a new style scope (an MXP open tag) holding st exactly as
// given; it does not merge st with the current style.
func (s *StyleStack) Push(st Style) {
	s.frames = append(s.frames, st)
}

// PushCurrent clones the current style onto the stack and returns a
// copy of it. Changing the returned value does not change the pushed
// scope; SetCurrent does.
func (s *StyleStack) PushCurrent() Style {
	cur := s.Current()
	s.Push(cur)
	return cur
}

// Pop closes the innermost style scope. Reports false if already at the
// base style (mismatched close tag).
func (s *StyleStack) Pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return true
}

// Depth reports how many scopes are open above the base style.
func (s *StyleStack) Depth() int {
	return len(s.frames) - 1
}

// ResetAttributes clears the visual attributes of the current style
// (SGR 0 / MXP <RESET>) but keeps nesting depth intact.
func (s *StyleStack) ResetAttributes() {
	s.frames[len(s.frames)-1] = Style{}
}

// UnwindAll closes every open scope, LIFO, as required at stream end
// (spec.md invariant 2: "unclosed tags at stream end implicitly close").
func (s *StyleStack) UnwindAll() {
	s.frames = s.frames[:1]
}
