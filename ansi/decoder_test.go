package ansi

import (
	"bytes"
	"testing"
)

// parseCSI splits a CSI sequence's body (without "ESC [") into params
// and intermediates the way the phase machine does, then decodes it.
func parseCSI(seq string, style *Style) CSIResult {
	var params, intermediates []byte
	for i := 0; i < len(seq)-1; i++ {
		b := seq[i]
		if IsIntermediateByte(b) || b == '>' {
			intermediates = append(intermediates, b)
		} else {
			params = append(params, b)
		}
	}
	final := seq[len(seq)-1]
	return DecodeCSI(ParseParams(params), intermediates, final, style)
}

func TestDecodeCSISGRMutatesStyle(t *testing.T) {
	var st Style
	res := parseCSI("1m", &st)
	if res.Reply != nil {
		t.Fatalf("SGR must not produce a reply, got %v", res.Reply)
	}
	if !st.Bold {
		t.Fatalf("expected bold set by SGR 1")
	}
}

func TestDecodeCSILineMode(t *testing.T) {
	var st Style
	res := parseCSI("6z", &st)
	if !res.IsLineMode || res.Param != 6 {
		t.Fatalf("expected line mode param 6, got %+v", res)
	}
}

func TestDecodeCSIDeviceStatusReport(t *testing.T) {
	var st Style
	res := parseCSI("6n", &st)
	want := CursorPositionReport(1, 1)
	if !bytes.Equal(res.Reply, want) {
		t.Fatalf("expected cursor position report %q, got %q", want, res.Reply)
	}
}

func TestDecodeCSIPrimaryVsSecondaryAttributes(t *testing.T) {
	var st Style
	res := parseCSI("c", &st)
	if !bytes.Equal(res.Reply, PrimaryAttributeReport()) {
		t.Fatalf("expected primary attribute report, got %q", res.Reply)
	}
	res = parseCSI(">c", &st)
	if !bytes.Equal(res.Reply, SecondaryAttributeReport()) {
		t.Fatalf("expected secondary attribute report for intermediate '>', got %q", res.Reply)
	}
}

func TestDecodeCSIUnknownFinal(t *testing.T) {
	var st Style
	res := parseCSI("d", &st)
	if !res.Unknown {
		t.Fatalf("expected an unrecognised final byte to report Unknown")
	}
}

func TestDecodeOSCHyperlink(t *testing.T) {
	res := DecodeOSC([]byte("8;;https://example.invalid"))
	if !res.IsLink || res.LinkURL != "https://example.invalid" {
		t.Fatalf("expected hyperlink OSC to resolve, got %+v", res)
	}
}

func TestDecodeOSCNonLink(t *testing.T) {
	res := DecodeOSC([]byte("0;window title"))
	if res.IsLink {
		t.Fatalf("OSC 0 must not be treated as a hyperlink")
	}
	if res.Pt != "window title" {
		t.Fatalf("expected Pt %q, got %q", "window title", res.Pt)
	}
}
