// Package output defines the typed fragment stream a Transformer
// produces, and the ordered, coalescing queue that assembles it
// (spec.md §3 "Output fragment", §4.8).
package output

import "github.com/drake/rune/ansi"

// Kind tags which variant a Fragment holds.
type Kind int

const (
	KindText Kind = iota
	KindLineBreak
	KindTelnet
	KindEffect
	KindEntity
	KindPageBreak
	KindHr
	KindImage
	KindFrame
	KindSound
	KindGauge
	KindStat
	KindRelocate
	KindMxpError
)

// EffectKind enumerates the control effects of spec.md §3.
type EffectKind int

const (
	EffectBeep EffectKind = iota
	EffectBackspace
	EffectEraseCharacter
	EffectEraseLine
)

// ShouldFlush reports whether this effect must flush pending text
// before it is emitted (spec.md §4.6: "Beep" does not flush, others do).
func (e EffectKind) ShouldFlush() bool { return e != EffectBeep }

// TelnetVerb names the informational TELNET event a TelnetFragment
// reports.
type TelnetVerb int

const (
	TelnetWill TelnetVerb = iota
	TelnetWont
	TelnetDo
	TelnetDont
	TelnetSubnegotiation
)

// TelnetFragment surfaces a TELNET negotiation or subnegotiation as
// informational data (spec.md §4.3: MSSP/GMCP/MSDP, and negotiation
// outcomes in general).
type TelnetFragment struct {
	Verb   TelnetVerb
	Option byte
	Data   []byte // subnegotiation payload, if any
}

// EntityFragment reports a published MXP entity (spec.md §4.5
// "<!ENTITY ... PUBLISH>").
type EntityFragment struct {
	Name  string
	Value string
}

// Image is the <IMAGE> element's resolved attributes.
type Image struct {
	Src, Xch, Ycl   string
	Width, Height   int
	Align, Hspace   string
	Vspace, Ismap   string
}

// Frame is the <FRAME> element's resolved attributes; placement is
// left to the consumer (spec.md §9).
type Frame struct {
	Name                  string
	Action                string
	Title                 string
	Width, Height         int
	Top, Left             int
	Scrolling, Floating   bool
	Internal              bool
}

// Sound is the <SOUND>/<MUSIC> element's resolved attributes.
type Sound struct {
	Src         string
	IsMusic     bool
	Volume      int
	Repeats     int
	Priority    int
	Continue    bool
}

// Gauge is the <GAUGE> element's resolved attributes.
type Gauge struct {
	Name, Entity, Max, Caption string
}

// Stat is the <STAT> element's resolved attributes.
type Stat struct {
	Name, Entity, Max, Caption string
}

// Relocate is the <DEST>/<RELOCATE> element's resolved attributes.
type Relocate struct {
	Host string
	Port int
}

// MxpError carries a human-readable diagnostic for a protocol-
// recoverable condition (spec.md §7 kind 1): malformed tag, unknown
// entity, mismatched close tag, invalid SGR parameter, and so on.
type MxpError struct {
	Message string
	Span    string // the offending literal text, if applicable
}

// Fragment is the tagged union of everything a Transformer can emit.
// Exactly one of the typed fields is meaningful, selected by Kind.
type Fragment struct {
	Kind Kind

	Text     ansi.TextFragment
	Telnet   TelnetFragment
	Effect   EffectKind
	Entity   EntityFragment
	Image    Image
	Frame    Frame
	Sound    Sound
	Gauge    Gauge
	Stat     Stat
	Relocate Relocate
	MxpError MxpError
}

// Text builds a KindText fragment.
func Text(f ansi.TextFragment) Fragment { return Fragment{Kind: KindText, Text: f} }

// LineBreak builds a KindLineBreak fragment.
func LineBreak() Fragment { return Fragment{Kind: KindLineBreak} }

// Telnet builds a KindTelnet fragment.
func Telnet(f TelnetFragment) Fragment { return Fragment{Kind: KindTelnet, Telnet: f} }

// Effect builds a KindEffect fragment.
func Effect(kind EffectKind) Fragment { return Fragment{Kind: KindEffect, Effect: kind} }

// Entity builds a KindEntity fragment.
func Entity(f EntityFragment) Fragment { return Fragment{Kind: KindEntity, Entity: f} }

// Error builds a KindMxpError fragment.
func Error(message, span string) Fragment {
	return Fragment{Kind: KindMxpError, MxpError: MxpError{Message: message, Span: span}}
}
