package transform

import (
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/drake/rune/ansi"
	"github.com/drake/rune/mxp"
	"github.com/drake/rune/network"
	"github.com/drake/rune/output"
)

// Transformer is the public façade (spec.md §4.9): it owns the TELNET
// parser, the optional MCCP2 decompressor, the MXP/ANSI phase machine,
// and the pending-reply buffer a driver must flush to the wire.
type Transformer struct {
	config Config

	telnet       *network.Parser
	decompressor Decompressor
	phase        *PhaseMachine

	mxp *mxp.Context

	// localEcho tracks whether the driver should echo typed input
	// locally; ECHO negotiation flips it unless Config.NoEchoOff forces
	// it to stay on (spec.md §6 "no_echo_off, force local echo").
	localEcho bool

	replies []byte
}

// New builds a fresh transformer: empty style stack, default entity
// table, PermOpen line mode (spec.md §4.9).
func New(config Config) *Transformer {
	table := network.DefaultCompatibility()
	styles := ansi.NewStyleStack()
	mctx := &mxp.Context{
		Styles:          styles,
		Entities:        mxp.NewEntityTable(),
		Elements:        mxp.NewElementTable(),
		LineMode:        mxp.NewLineModeState(mxp.ModePermOpen),
		ClientName:      "rune",
		ClientVersion:   config.ClientVersion,
		Player:          config.Player,
		IgnoreMxpColors: config.IgnoreMxpColors,
	}
	t := &Transformer{
		config:    config,
		telnet:    network.NewParser(table),
		phase:     NewPhaseMachine(styles, mctx),
		mxp:       mctx,
		localEcho: true,
	}
	if config.UseMxp == MxpAlways {
		t.phase.SetMxpEnabled(true)
	}
	t.announceLocalOptions()
	return t
}

// announceLocalOptions sends WILL for every option this transformer
// sends or accepts a subnegotiation for: network.Parser.Subnegotiation
// (send) and its internal subnegotiation acceptance (receive) both gate
// on LocalState, which only Will() sets, regardless of which side
// conventionally initiates that option (see network/telnet_test.go's
// TestParser, which calls Will(MCCP2) before exercising a server-sent
// MCCP2 subnegotiation). MXP carries no subnegotiation of its own — its
// negotiation-only DO/WILL exchange needs no local announcement.
func (t *Transformer) announceLocalOptions() {
	opts := []byte{
		network.OptTTYPE, network.OptGMCP,
		network.OptMSDP, network.OptMSSP, network.OptCharset,
		network.OptMCCP2,
	}
	if t.config.Naws {
		opts = append(opts, network.OptNAWS)
	}
	for _, opt := range opts {
		if ev := t.telnet.Will(opt); ev != nil {
			t.replies = append(t.replies, ev.Data...)
		}
	}
}

// SetWorldConfig atomically replaces the mutable config fields without
// disturbing in-flight phase state (spec.md §4.9).
func (t *Transformer) SetWorldConfig(config Config) {
	t.config = config
	t.mxp.ClientVersion = config.ClientVersion
	t.mxp.Player = config.Player
	t.mxp.IgnoreMxpColors = config.IgnoreMxpColors
}

// LocalEcho reports whether the driver should echo typed input locally.
// It flips on ECHO negotiation (network.OptEcho) unless Config.NoEchoOff
// pins it to true regardless of what the server asks for.
func (t *Transformer) LocalEcho() bool { return t.localEcho }

// Receive pushes a batch of wire bytes through the transformer and
// returns the fragments produced. Idempotent on empty input (spec.md
// §8 "idempotent flush").
func (t *Transformer) Receive(raw []byte) []output.Fragment {
	if len(raw) == 0 {
		return nil
	}
	t.ingest(raw)
	t.phase.Finish()
	return t.phase.Fragments()
}

// DrainInput returns pending bytes the driver must write to the wire:
// negotiation replies, MXP responses, and terminal attribute replies
// (spec.md §4.9).
func (t *Transformer) DrainInput() []byte {
	out := append(t.replies, t.phase.DrainReplies()...)
	t.replies = nil
	return out
}

// ingest decompresses raw (if MCCP2 is active), runs it through the
// TELNET parser, and drives every resulting event. DecompressImmediate
// events recurse: the freshly inflated bytes are themselves raw TELNET
// stream data that may contain further negotiations (spec.md §4.2).
func (t *Transformer) ingest(raw []byte) {
	plain := raw
	if t.decompressor.Active() {
		out, err := t.decompressor.Feed(raw)
		if err != nil {
			t.phase.assembler.Push(output.Error("corrupt compressed stream", ""))
			t.decompressor.Stop()
			return
		}
		plain = out
	}
	if len(plain) == 0 {
		return
	}
	events := t.telnet.Receive(plain)
	for _, ev := range events {
		t.handleEvent(ev)
	}
}

func (t *Transformer) handleEvent(ev network.TelnetEvent) {
	switch ev.Kind {
	case network.TelnetEventDataReceive:
		t.phase.Drive(ev.Data)

	case network.TelnetEventDataSend:
		t.replies = append(t.replies, ev.Data...)

	case network.TelnetEventIAC:
		if ev.Command == network.CmdGA && t.config.ConvertGAToNewline {
			t.phase.Drive([]byte{'\n'})
		}

	case network.TelnetEventNegotiation:
		t.handleNegotiation(ev)

	case network.TelnetEventSubnegotiation:
		t.handleSubnegotiation(ev)

	case network.TelnetEventDecompressImmediate:
		t.decompressor.Start()
		out, err := t.decompressor.Feed(ev.Data)
		if err != nil {
			t.phase.assembler.Push(output.Error("corrupt compressed stream", ""))
			t.decompressor.Stop()
			return
		}
		if len(out) > 0 {
			t.ingest(out)
		}
	}
}

// handleNegotiation reacts to a completed WILL/WONT/DO/DONT exchange.
// TTYPE's reply is driven entirely by handleSubnegotiation's SEND case
// below — the negotiation itself (DO TTYPE) is already answered by
// network.Parser, so nothing further is owed here on WILL.
func (t *Transformer) handleNegotiation(ev network.TelnetEvent) {
	switch ev.Option {
	case network.OptMXP:
		if ev.Command == network.CmdDO || ev.Command == network.CmdWILL {
			if t.config.UseMxp == MxpQuery || t.config.UseMxp == MxpCommand {
				t.phase.SetMxpEnabled(true)
			}
		}
	case network.OptEcho:
		if t.config.NoEchoOff {
			return
		}
		switch ev.Command {
		case network.CmdWILL:
			t.localEcho = false
		case network.CmdWONT, network.CmdDONT, network.CmdDO:
			t.localEcho = true
		}
	}
}

// ttypeSend builds the TERMINAL-TYPE "IS <name>" payload sent in
// response to a SEND request: the option already frames it in
// IAC SB 24 ... IAC SE via network.Parser.Subnegotiation.
func ttypeSend(name string) []byte {
	payload := make([]byte, 0, len(name)+1)
	payload = append(payload, network.CmdIS)
	payload = append(payload, []byte(name)...)
	return payload
}

func (t *Transformer) handleSubnegotiation(ev network.TelnetEvent) {
	switch ev.Option {
	case network.OptTTYPE:
		if len(ev.Data) > 0 && ev.Data[0] == network.CmdSEND {
			if sub := t.telnet.Subnegotiation(network.OptTTYPE, ttypeSend(t.config.TerminalIdentification)); sub != nil {
				t.replies = append(t.replies, sub.Data...)
			}
		}
	case network.OptMSSP, network.OptGMCP, network.OptMSDP:
		t.phase.assembler.Push(output.Telnet(output.TelnetFragment{
			Verb: output.TelnetSubnegotiation, Option: ev.Option, Data: ev.Data,
		}))
	case network.OptMCCP2:
		t.decompressor.Start()
	case network.OptCharset:
		t.handleCharset(ev.Data)
	}
}

// CHARSET subnegotiation sub-commands (RFC 2066).
const (
	charsetRequest  byte = 1
	charsetAccepted byte = 2
	charsetRejected byte = 3
)

// handleCharset accepts UTF-8 if the server offered it, rejecting
// otherwise (spec.md §4.3 "accept UTF-8 if offered").
func (t *Transformer) handleCharset(data []byte) {
	if len(data) < 2 || data[0] != charsetRequest {
		return
	}
	sep := data[1]
	for _, name := range strings.Split(string(data[2:]), string(sep)) {
		if !strings.EqualFold(name, "utf-8") {
			continue
		}
		if _, err := htmlindex.Get(name); err != nil {
			continue
		}
		reply := append([]byte{charsetAccepted}, []byte(name)...)
		if sub := t.telnet.Subnegotiation(network.OptCharset, reply); sub != nil {
			t.replies = append(t.replies, sub.Data...)
		}
		return
	}
	if sub := t.telnet.Subnegotiation(network.OptCharset, []byte{charsetRejected}); sub != nil {
		t.replies = append(t.replies, sub.Data...)
	}
}

// NAWS sends the 9-byte window-size frame (spec.md §4.3), when the
// driver knows the terminal dimensions and the option is enabled.
func (t *Transformer) NAWS(width, height int) {
	if !t.config.Naws {
		return
	}
	data := []byte{
		byte(width >> 8), byte(width),
		byte(height >> 8), byte(height),
	}
	if sub := t.telnet.Subnegotiation(network.OptNAWS, data); sub != nil {
		t.replies = append(t.replies, sub.Data...)
	}
}
