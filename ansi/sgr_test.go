package ansi

import "testing"

func TestParseParams(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"1", []int{1}},
		{"1;31", []int{1, 31}},
		{";31", []int{0, 31}},
		{"38;5;201", []int{38, 5, 201}},
	}
	for _, c := range cases {
		got := ParseParams([]byte(c.in))
		if len(got) != len(c.want) {
			t.Fatalf("ParseParams(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("ParseParams(%q) = %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestApplySGRBasicAttributes(t *testing.T) {
	var st Style
	ApplySGR(ParseParams([]byte("1;4;31")), &st)
	if !st.Bold || !st.Underline {
		t.Fatalf("expected bold+underline, got %+v", st)
	}
	if st.Fg.Origin != ColorAnsi16 || st.Fg.Index != 1 {
		t.Fatalf("expected ansi16 red fg, got %+v", st.Fg)
	}

	ApplySGR(ParseParams([]byte("22")), &st)
	if st.Bold {
		t.Fatalf("expected bold cleared by SGR 22")
	}
}

func TestApplySGRReset(t *testing.T) {
	st := Style{Bold: true, ElementHandle: 7}
	ApplySGR(ParseParams([]byte("0")), &st)
	if st.Bold {
		t.Fatalf("SGR 0 should clear attributes")
	}
	if st.ElementHandle != 7 {
		t.Fatalf("SGR 0 must not disturb ElementHandle, got %d", st.ElementHandle)
	}
}

func TestApplySGRXterm256(t *testing.T) {
	var st Style
	ApplySGR(ParseParams([]byte("38;5;201")), &st)
	if st.Fg.Origin != ColorXterm256 || st.Fg.Index != 201 {
		t.Fatalf("expected xterm256 fg 201, got %+v", st.Fg)
	}
}

func TestApplySGRRGB24(t *testing.T) {
	var st Style
	ApplySGR(ParseParams([]byte("48;2;10;20;30")), &st)
	if st.Bg.Origin != ColorRGB || st.Bg.R != 10 || st.Bg.G != 20 || st.Bg.B != 30 {
		t.Fatalf("expected rgb24 bg, got %+v", st.Bg)
	}
}

func TestApplySGRUnknownParamSkipped(t *testing.T) {
	var st Style
	ApplySGR(ParseParams([]byte("1;63;3")), &st)
	if !st.Bold || !st.Italic {
		t.Fatalf("unknown param 63 should not block neighboring params, got %+v", st)
	}
}
