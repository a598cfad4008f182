package transform

import "github.com/drake/rune/ansi"

// UseMxp selects when MXP mode engages (spec.md §6).
type UseMxp int

const (
	// MxpCommand enables MXP once the server completes a DO or WILL MXP
	// negotiation, the same as MxpQuery. A CSI-z line-mode change does
	// not enable MXP.
	MxpCommand UseMxp = iota
	MxpAlways
	MxpNever
	// MxpQuery enables MXP once the server completes a DO or WILL MXP
	// negotiation.
	MxpQuery
)

// Config holds the mutable, server-agnostic settings a driver supplies
// to a Transformer (spec.md §6 "Config fields").
type Config struct {
	TerminalIdentification string // TTYPE reply; default "unknown"
	Player                 string // MXP <VERSION> response
	ClientVersion          string

	UseMxp           UseMxp
	IgnoreMxpColors  bool
	DisableCompression bool
	Naws             bool
	NoEchoOff        bool
	ConvertGAToNewline bool

	Colors [16]ansi.RGB
}

// DefaultConfig returns the configuration a fresh client typically
// starts from.
func DefaultConfig() Config {
	return Config{
		TerminalIdentification: "unknown",
		ClientVersion:          "1.0",
		UseMxp:                 MxpCommand,
	}
}
