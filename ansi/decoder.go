package ansi

// Byte classifiers for CSI sequence parsing (ECMA-48), used by the
// phase state machine to decide when a CSI sequence is complete.
func IsParamByte(b byte) bool        { return b >= 0x30 && b <= 0x3F }
func IsIntermediateByte(b byte) bool { return b >= 0x20 && b <= 0x2F }
func IsFinalByte(b byte) bool        { return b >= 0x40 && b <= 0x7E }

// CSIResult describes the effect of a fully-parsed CSI sequence.
type CSIResult struct {
	// Reply holds bytes to send back to the server, if any.
	Reply []byte
	// IsLineMode is true when the final byte was 'z' (MXP line-mode
	// change); Param and Variant are then meaningful.
	IsLineMode bool
	Param      int
	Variant    byte // 0, 'x', or '*' depending on the z-command form
	// Unknown marks a final byte this decoder does not recognise; the
	// sequence is silently dropped per spec.md §4.4.
	Unknown bool
}

// DecodeCSI applies a complete CSI sequence's effect. For 'm' (SGR) it
// mutates style in place. For other finals it returns any reply bytes
// or the MXP line-mode directive to apply.
func DecodeCSI(params []int, intermediates []byte, final byte, style *Style) CSIResult {
	lastIntermediate := byte(0)
	if len(intermediates) > 0 {
		lastIntermediate = intermediates[len(intermediates)-1]
	}

	switch final {
	case 'm':
		ApplySGR(params, style)
		return CSIResult{}

	case 'z':
		p := 0
		if len(params) > 0 {
			p = params[0]
		}
		return CSIResult{IsLineMode: true, Param: p, Variant: lastIntermediate}

	case 'n':
		p := 0
		if len(params) > 0 {
			p = params[0]
		}
		if p == 6 {
			return CSIResult{Reply: CursorPositionReport(1, 1)}
		}
		return CSIResult{Reply: []byte(CSI + "0n")}

	case 'c':
		if lastIntermediate == '>' {
			return CSIResult{Reply: SecondaryAttributeReport()}
		}
		return CSIResult{Reply: PrimaryAttributeReport()}

	case 'x':
		return CSIResult{Reply: TerminalParamsReport()}

	case 'y':
		if lastIntermediate == '$' {
			mode := 0
			if len(params) > 0 {
				mode = params[0]
			}
			return CSIResult{Reply: ModeReport(mode, ModeNotRecognized)}
		}
		return CSIResult{Unknown: true}

	case 'q':
		if lastIntermediate == '*' {
			seq := 0
			if len(params) > 0 {
				seq = params[0]
			}
			return CSIResult{Reply: SecureResetConfirmation(seq)}
		}
		return CSIResult{Unknown: true}

	default:
		return CSIResult{Unknown: true}
	}
}

// OSCResult describes a parsed "Ps ; Pt" OSC payload.
type OSCResult struct {
	Ps int
	Pt string
	// LinkURL is set when Ps selects the hyperlink OSC (8) and Pt
	// carries the target URL; it is mapped to an MXP-style link.
	LinkURL string
	IsLink  bool
}

// DecodeOSC parses the buffered payload between "ESC ]" and its
// terminator (BEL or ESC \\).
func DecodeOSC(buf []byte) OSCResult {
	semi := -1
	for i, b := range buf {
		if b == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return OSCResult{}
	}
	ps := 0
	for _, b := range buf[:semi] {
		if b >= '0' && b <= '9' {
			ps = ps*10 + int(b-'0')
		}
	}
	pt := string(buf[semi+1:])
	result := OSCResult{Ps: ps, Pt: pt}
	if ps == 8 {
		// "8;params;URI" — params are ignored, URI is the final field.
		if i := indexByte(pt, ';'); i >= 0 {
			result.LinkURL = pt[i+1:]
		} else {
			result.LinkURL = pt
		}
		result.IsLink = result.LinkURL != ""
	}
	return result
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
