package keyhook

import "strings"

// Modifier is a bitset of the modifier keys the manager tracks.
type Modifier uint8

const (
	// ModNone indicates no modifiers are held.
	ModNone Modifier = 0

	// ModCtrl indicates either Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates either Alt key.
	ModAlt

	// ModShift indicates either Shift key.
	ModShift

	// ModLWin indicates the left Windows key.
	ModLWin

	// ModRWin indicates the right Windows key.
	ModRWin
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasWin returns true if either Windows key is held.
func (m Modifier) HasWin() bool {
	return m.Has(ModLWin | ModRWin)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.Has(ModLWin) {
		parts = append(parts, "LWin")
	}
	if m.Has(ModRWin) {
		parts = append(parts, "RWin")
	}
	return strings.Join(parts, "+")
}

// modifierBit maps a virtual-key code to the tracked bit it represents.
// Generic and left/right variants of Ctrl, Alt and Shift fold into one
// bit each; the Windows keys stay distinct.
func modifierBit(k Key) (Modifier, bool) {
	switch k {
	case KeyControl, KeyLControl, KeyRControl:
		return ModCtrl, true
	case KeyAlt, KeyLAlt, KeyRAlt:
		return ModAlt, true
	case KeyShift, KeyLShift, KeyRShift:
		return ModShift, true
	case KeyLWin:
		return ModLWin, true
	case KeyRWin:
		return ModRWin, true
	}
	return ModNone, false
}
