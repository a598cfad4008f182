package mxp

import "testing"

func TestLineModeDefaultPermOpenAllowsSafeTagsOnly(t *testing.T) {
	l := NewLineModeState(ModePermOpen)
	if !l.TagAllowed("B") {
		t.Fatalf("expected B allowed under PermOpen")
	}
	if l.TagAllowed("SOMEUSERELEMENT") {
		t.Fatalf("expected unknown user element forbidden under PermOpen")
	}
}

func TestLineModeSecureAllowsFullTagSet(t *testing.T) {
	l := NewLineModeState(ModePermOpen)
	l.Apply(1) // Secure
	if !l.FullTagsAllowed() {
		t.Fatalf("expected Secure to allow the full tag set")
	}
	if !l.TagAllowed("SOMEUSERELEMENT") {
		t.Fatalf("expected arbitrary element allowed under Secure")
	}
}

func TestLineModeLockedForbidsEverything(t *testing.T) {
	l := NewLineModeState(ModePermOpen)
	l.Apply(2) // Locked
	if l.TagAllowed("B") {
		t.Fatalf("expected Locked to forbid all tags")
	}
}

func TestLineModeTempSecureRevertsOnNextLine(t *testing.T) {
	l := NewLineModeState(ModePermOpen)
	l.Apply(5) // PermSecure becomes the persistent mode
	l.Apply(7) // TempSecure for this line only
	if l.Current() != ModeTempSecure {
		t.Fatalf("expected current mode TempSecure, got %v", l.Current())
	}
	l.NextLine()
	if l.Current() != ModePermSecure {
		t.Fatalf("expected revert to persistent PermSecure, got %v", l.Current())
	}
}

func TestLineModeSecureOnceRevertsOnNextLine(t *testing.T) {
	l := NewLineModeState(ModeOpen)
	l.SetSecureOnce()
	if l.Current() != ModeSecureOnce {
		t.Fatalf("expected SecureOnce active")
	}
	l.NextLine()
	if l.Current() != ModeOpen {
		t.Fatalf("expected revert to persistent Open after one line, got %v", l.Current())
	}
}

func TestLineModeResetToDefault(t *testing.T) {
	l := NewLineModeState(ModePermOpen)
	l.Apply(2) // Locked
	l.Apply(3) // reset to default
	if l.Current() != ModePermOpen {
		t.Fatalf("expected reset-to-default to restore PermOpen, got %v", l.Current())
	}
}
