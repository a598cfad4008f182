package ansi

// ParseParams splits a CSI parameter buffer ("1;31") into decimal
// values, defaulting empty fields to 0 (e.g. leading/trailing/doubled
// semicolons), per spec.md §4.4.
func ParseParams(buf []byte) []int {
	if len(buf) == 0 {
		return nil
	}
	params := make([]int, 0, 4)
	val := 0
	has := false
	for _, b := range buf {
		if b == ';' {
			params = append(params, val)
			val = 0
			has = false
			continue
		}
		if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			has = true
		}
	}
	_ = has
	params = append(params, val)
	return params
}

// ApplySGR mutates style according to a parsed SGR parameter list
// (spec.md §4.4). Unknown parameters are skipped individually, never
// aborting the whole sequence.
func ApplySGR(params []int, style *Style) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			*style = Style{ElementHandle: style.ElementHandle}
		case p == 1:
			style.Bold = true
		case p == 3:
			style.Italic = true
		case p == 4:
			style.Underline = true
		case p == 5:
			style.Blink = true
		case p == 7:
			style.Inverse = true
		case p == 9:
			style.Strikethrough = true
		case p == 22:
			style.Bold = false
		case p == 23:
			style.Italic = false
		case p == 24:
			style.Underline = false
		case p == 25:
			style.Blink = false
		case p == 27:
			style.Inverse = false
		case p == 29:
			style.Strikethrough = false
		case p >= 30 && p <= 37:
			style.Fg = Ansi16(uint8(p - 30))
		case p == 38:
			n := consumeExtendedColor(params, &i)
			if n.ok {
				style.Fg = n.color
			}
		case p == 39:
			style.Fg = DefaultColor()
		case p >= 40 && p <= 47:
			style.Bg = Ansi16(uint8(p - 40))
		case p == 48:
			n := consumeExtendedColor(params, &i)
			if n.ok {
				style.Bg = n.color
			}
		case p == 49:
			style.Bg = DefaultColor()
		case p >= 90 && p <= 97:
			style.Fg = Ansi16(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			style.Bg = Ansi16(uint8(p - 100 + 8))
		}
		// All other parameters are silently skipped.
	}
}

type extendedColor struct {
	ok    bool
	color Color
}

// consumeExtendedColor parses the "5;N" (xterm-256) or "2;R;G;B" (RGB24)
// tail of an SGR 38/48 sequence, advancing i past the bytes it consumes.
func consumeExtendedColor(params []int, i *int) extendedColor {
	if *i+1 >= len(params) {
		return extendedColor{}
	}
	switch params[*i+1] {
	case 5:
		if *i+2 >= len(params) {
			*i += 1
			return extendedColor{}
		}
		idx := params[*i+2]
		*i += 2
		if idx < 0 || idx > 255 {
			return extendedColor{}
		}
		return extendedColor{ok: true, color: Xterm256(uint8(idx))}
	case 2:
		if *i+4 >= len(params) {
			*i = len(params) - 1
			return extendedColor{}
		}
		r, g, b := params[*i+2], params[*i+3], params[*i+4]
		*i += 4
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return extendedColor{}
		}
		return extendedColor{ok: true, color: RGB24(uint8(r), uint8(g), uint8(b))}
	default:
		*i += 1
		return extendedColor{}
	}
}
