package keyhook

// Code packs a key and the modifiers held at the time of the event into
// one comparable value: the raw virtual-key code in the low 16 bits and
// the modifier bits above them.
type Code uint32

// Combine builds the packed code for a key plus modifier set.
func Combine(key Key, mods Modifier) Code {
	return Code(key) | Code(mods)<<16
}

// Key returns the raw virtual-key part of the code.
func (c Code) Key() Key {
	return Key(c & 0xFFFF)
}

// Mods returns the modifier part of the code.
func (c Code) Mods() Modifier {
	return Modifier(c >> 16)
}

// Event describes one key transition observed by the hook. Mods is the
// state before the key's own transition is applied, so a Ctrl press
// carries no ModCtrl while the Space in Ctrl+Space does.
type Event struct {
	Key  Key      // raw virtual-key code
	Code Code     // key combined with the modifier snapshot
	Mods Modifier // modifiers held when the event fired

	handled bool
}

// Value returns the numeric key value.
func (e *Event) Value() int {
	return int(e.Key)
}

// Handled reports whether a subscriber claimed the event.
func (e *Event) Handled() bool {
	return e.handled
}

// MarkHandled claims the event. The flag is a one-way latch: dispatch
// stops at the subscriber that set it, and a handled key never reaches
// the focused application.
func (e *Event) MarkHandled() {
	e.handled = true
}

// Handler receives key events on the hook's dispatch thread.
type Handler func(*Event)
