package transform

import (
	"bytes"
	"testing"

	"github.com/drake/rune/network"
	"github.com/drake/rune/output"
)

// newTestTransformer builds a Transformer and discards the capability
// announcements (WILL TTYPE/GMCP/MSDP/MSSP/CHARSET/MCCP2, and NAWS when
// enabled) it queues at construction, so tests can assert on the reply
// bytes produced by the specific exchange under test.
func newTestTransformer(cfg Config) *Transformer {
	tr := New(cfg)
	tr.DrainInput()
	return tr
}

func buildSub(t *testing.T, opt byte, payload []byte) []byte {
	t.Helper()
	escaped := network.EscapeIAC(payload)
	out := make([]byte, 0, 5+len(escaped))
	out = append(out, network.CmdIAC, network.CmdSB, opt)
	out = append(out, escaped...)
	out = append(out, network.CmdIAC, network.CmdSE)
	return out
}

func TestTransformerReceivePlainText(t *testing.T) {
	tr := newTestTransformer(DefaultConfig())
	frags := tr.Receive([]byte("hello world"))
	if len(frags) != 1 || frags[0].Text.Content != "hello world" {
		t.Fatalf("expected plain text fragment, got %+v", frags)
	}
}

func TestTransformerReceiveEmptyIsIdempotent(t *testing.T) {
	tr := newTestTransformer(DefaultConfig())
	if frags := tr.Receive(nil); frags != nil {
		t.Fatalf("expected nil fragments for empty input, got %+v", frags)
	}
}

func TestTransformerAnnouncesCapabilitiesOnConstruction(t *testing.T) {
	tr := New(DefaultConfig())
	reply := tr.DrainInput()
	if !bytes.Contains(reply, []byte{network.CmdIAC, network.CmdWILL, network.OptTTYPE}) {
		t.Fatalf("expected a WILL TTYPE announcement at construction, got %v", reply)
	}
	if !bytes.Contains(reply, []byte{network.CmdIAC, network.CmdWILL, network.OptMCCP2}) {
		t.Fatalf("expected a WILL MCCP2 announcement at construction, got %v", reply)
	}
	if bytes.Contains(reply, []byte{network.CmdIAC, network.CmdWILL, network.OptNAWS}) {
		t.Fatalf("expected no NAWS announcement when Config.Naws is false, got %v", reply)
	}
}

func TestTransformerTTYPEReply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TerminalIdentification = "xterm-256color"
	tr := newTestTransformer(cfg)

	tr.Receive([]byte{network.CmdIAC, network.CmdWILL, network.OptTTYPE})
	reply := tr.DrainInput()

	want := []byte{network.CmdIAC, network.CmdDO, network.OptTTYPE}
	if !bytes.Equal(reply, want) {
		t.Fatalf("expected a DO TTYPE reply, got %v", reply)
	}

	tr.Receive(buildSub(t, network.OptTTYPE, []byte{network.CmdSEND}))
	reply = tr.DrainInput()
	wantSend := append([]byte{network.CmdIAC, network.CmdSB, network.OptTTYPE, network.CmdIS}, []byte("xterm-256color")...)
	wantSend = append(wantSend, network.CmdIAC, network.CmdSE)
	if !bytes.Equal(reply, wantSend) {
		t.Fatalf("expected TTYPE IS reply advertising the configured terminal name, got %v want %v", reply, wantSend)
	}
}

func TestTransformerMXPEnabledOnNegotiation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseMxp = MxpCommand
	tr := newTestTransformer(cfg)
	if tr.phase.MxpEnabled() {
		t.Fatalf("expected MXP disabled before negotiation")
	}

	tr.Receive([]byte{network.CmdIAC, network.CmdWILL, network.OptMXP})
	if !tr.phase.MxpEnabled() {
		t.Fatalf("expected MXP to be enabled once the server WILLs it under MxpCommand")
	}
}

func TestTransformerMXPAlwaysEnabledFromStart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseMxp = MxpAlways
	tr := newTestTransformer(cfg)
	if !tr.phase.MxpEnabled() {
		t.Fatalf("expected MxpAlways to enable MXP from construction")
	}
}

func TestTransformerMSDPSubnegotiationSurfacedAsTelnetFragment(t *testing.T) {
	tr := newTestTransformer(DefaultConfig())
	frags := tr.Receive(buildSub(t, network.OptMSDP, []byte("payload")))
	if len(frags) != 1 || frags[0].Kind != output.KindTelnet {
		t.Fatalf("expected a Telnet fragment surfacing MSDP, got %+v", frags)
	}
	if frags[0].Telnet.Option != network.OptMSDP || string(frags[0].Telnet.Data) != "payload" {
		t.Fatalf("unexpected telnet fragment contents: %+v", frags[0].Telnet)
	}
}

func TestTransformerNAWSOnlyWhenEnabled(t *testing.T) {
	tr := newTestTransformer(DefaultConfig())
	tr.NAWS(80, 24)
	if reply := tr.DrainInput(); len(reply) != 0 {
		t.Fatalf("expected no NAWS reply when Config.Naws is false, got %v", reply)
	}

	cfg := DefaultConfig()
	cfg.Naws = true
	tr = newTestTransformer(cfg)
	tr.NAWS(80, 24)
	reply := tr.DrainInput()
	if len(reply) == 0 {
		t.Fatalf("expected a NAWS subnegotiation once enabled")
	}
}

func TestTransformerMCCP2ActivatesDecompressor(t *testing.T) {
	tr := newTestTransformer(DefaultConfig())
	tr.Receive(buildSub(t, network.OptMCCP2, nil))
	if !tr.decompressor.Active() {
		t.Fatalf("expected MCCP2 subnegotiation to engage the decompressor")
	}
}

func TestTransformerGAConvertedToNewlineWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConvertGAToNewline = true
	tr := newTestTransformer(cfg)
	frags := tr.Receive([]byte{'p', 'r', 'o', 'm', 'p', 't', '>', network.CmdIAC, network.CmdGA})
	if len(frags) != 1 || !frags[0].Text.Breaks {
		t.Fatalf("expected GA to flush the prompt as a breaking text fragment, got %+v", frags)
	}
}

func TestTransformerEchoTogglesLocalEcho(t *testing.T) {
	tr := newTestTransformer(DefaultConfig())
	if !tr.LocalEcho() {
		t.Fatalf("expected local echo on before any ECHO negotiation")
	}

	tr.Receive([]byte{network.CmdIAC, network.CmdWILL, network.OptEcho})
	if tr.LocalEcho() {
		t.Fatalf("expected WILL ECHO to disable local echo")
	}

	tr.Receive([]byte{network.CmdIAC, network.CmdWONT, network.OptEcho})
	if !tr.LocalEcho() {
		t.Fatalf("expected WONT ECHO to re-enable local echo")
	}
}

func TestTransformerNoEchoOffPinsLocalEchoOn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoEchoOff = true
	tr := newTestTransformer(cfg)

	tr.Receive([]byte{network.CmdIAC, network.CmdWILL, network.OptEcho})
	if !tr.LocalEcho() {
		t.Fatalf("expected no_echo_off to keep local echo on despite WILL ECHO")
	}
}
