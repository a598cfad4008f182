package mxp

// Mode is the MXP line-mode trust level controlling which tags are
// honoured on the current line (spec.md §3 "MXP line mode").
type Mode int

const (
	ModeOpen Mode = iota
	ModeSecure
	ModeLocked
	ModeLockedSecure
	ModeTempSecure
	ModeSecureOnce
	ModePermOpen
	ModePermSecure
)

// LineModeState tracks the current line mode plus the "prior
// persistent mode" TempSecure/SecureOnce revert to at end of line
// (spec.md §4.5, Open Question decision recorded in DESIGN.md).
type LineModeState struct {
	current     Mode
	persistent  Mode
	defaultMode Mode
}

// NewLineModeState seeds the state at the given default (persistent)
// mode, e.g. PermOpen.
func NewLineModeState(defaultMode Mode) *LineModeState {
	return &LineModeState{current: defaultMode, persistent: defaultMode, defaultMode: defaultMode}
}

// Current returns the active line mode.
func (l *LineModeState) Current() Mode { return l.current }

// Apply applies a parsed "CSI Pz" line-mode directive (spec.md §4.5):
// 0z Open, 1z Secure, 2z Locked, 3z reset-to-default, 4z PermOpen,
// 5z PermSecure, 6z LockedSecure, 7z TempSecure. The variant byte
// ('x' or '*' forms) does not change the transition table.
func (l *LineModeState) Apply(code int) {
	switch code {
	case 0:
		l.current = ModeOpen
	case 1:
		l.current = ModeSecure
	case 2:
		l.current = ModeLocked
	case 3:
		l.current = l.defaultMode
	case 4:
		l.current = ModePermOpen
		l.persistent = ModePermOpen
	case 5:
		l.current = ModePermSecure
		l.persistent = ModePermSecure
	case 6:
		l.current = ModeLockedSecure
	case 7:
		l.current = ModeTempSecure
	}
}

// SetSecureOnce enters the single-line secure mode (reachable via the
// MXP <SECURE> tag in a full implementation; modelled here so the
// state machine is total even though no built-in tag in this spec
// triggers it).
func (l *LineModeState) SetSecureOnce() { l.current = ModeSecureOnce }

// NextLine applies the next-line policy on LF: TempSecure/SecureOnce
// revert to the last persistent mode; every other mode persists.
func (l *LineModeState) NextLine() {
	if l.current == ModeTempSecure || l.current == ModeSecureOnce {
		l.current = l.persistent
	}
}

// TagsForbidden reports whether the current mode honours no tags at
// all (Locked/LockedSecure).
func (l *LineModeState) TagsForbidden() bool {
	return l.current == ModeLocked || l.current == ModeLockedSecure
}

// FullTagsAllowed reports whether the current mode honours the full
// tag set, including element/entity definitions.
func (l *LineModeState) FullTagsAllowed() bool {
	switch l.current {
	case ModeSecure, ModePermSecure, ModeTempSecure, ModeSecureOnce:
		return true
	}
	return false
}

// openModeSafe is the tag set honoured in Open mode: text styling and
// links only (spec.md §4.5).
var openModeSafe = map[string]bool{
	"B": true, "I": true, "U": true, "S": true, "STRONG": true, "EM": true,
	"COLOR": true, "C": true, "FONT": true, "H": true, "A": true, "SEND": true, "BR": true,
}

// TagAllowed reports whether the named built-in or user tag may be
// honoured under the current line mode. A forbidden tag must be
// emitted as literal text by the caller.
func (l *LineModeState) TagAllowed(name string) bool {
	if l.TagsForbidden() {
		return false
	}
	if l.FullTagsAllowed() {
		return true
	}
	// Open mode (or PermOpen): only the safe subset.
	return openModeSafe[name]
}
