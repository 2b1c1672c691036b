// Package keyhook installs a process-wide low-level keyboard hook and
// dispatches every key transition to registered subscribers before the
// rest of the system sees it.
package keyhook

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Manager owns the global keyboard hook. Subscribers run synchronously
// on the hook's dispatch thread, so they must stay fast; a key-down
// marked handled is swallowed instead of reaching the focused window.
type Manager struct {
	mu      sync.Mutex
	keyDown []Handler
	keyUp   []Handler
	mods    Modifier

	installed atomic.Bool
	closed    atomic.Bool

	// set by Install, invoked at most once by Close
	release func() error
}

// New returns a manager with no subscribers and an empty modifier state.
// Register subscribers, then call Install.
func New() *Manager {
	return &Manager{}
}

// OnKeyDown registers fn for key-down events. Subscribers run in
// registration order until one marks the event handled.
func (m *Manager) OnKeyDown(fn Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyDown = append(m.keyDown, fn)
}

// OnKeyUp registers fn for key-up events.
func (m *Manager) OnKeyUp(fn Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyUp = append(m.keyUp, fn)
}

// Modifiers returns the tracked modifier state, the net effect of every
// transition observed so far.
func (m *Manager) Modifiers() Modifier {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mods
}

// ProcessKeyDown dispatches one key-down observation and reports whether
// a subscriber handled it. Subscribers see the modifier state as of
// before this key's own transition; the tracked bit updates only after
// they have run, whether or not the event was handled.
func (m *Manager) ProcessKeyDown(key Key) bool {
	ev := m.dispatch(key, true)
	if bit, ok := modifierBit(key); ok {
		m.mu.Lock()
		m.mods = m.mods.With(bit)
		m.mu.Unlock()
	}
	return ev.Handled()
}

// ProcessKeyUp dispatches one key-up observation and reports whether a
// subscriber handled it.
func (m *Manager) ProcessKeyUp(key Key) bool {
	ev := m.dispatch(key, false)
	if bit, ok := modifierBit(key); ok {
		m.mu.Lock()
		m.mods = m.mods.Without(bit)
		m.mu.Unlock()
	}
	return ev.Handled()
}

// dispatch builds the event and walks the subscriber chain, stopping at
// the first subscriber that claims it. Callbacks run outside the lock so
// they may query Modifiers.
func (m *Manager) dispatch(key Key, down bool) *Event {
	m.mu.Lock()
	subs := m.keyDown
	if !down {
		subs = m.keyUp
	}
	mods := m.mods
	m.mu.Unlock()

	ev := &Event{Key: key, Code: Combine(key, mods), Mods: mods}
	for _, fn := range subs {
		fn(ev)
		if ev.Handled() {
			break
		}
	}
	return ev
}

// Close uninstalls the hook and stops its message pump. It is safe to
// call more than once and from any goroutine; only the first call
// releases the hook.
func (m *Manager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	runtime.SetFinalizer(m, nil)
	if m.release == nil {
		return nil
	}
	return m.release()
}

// finalize is a fallback for managers dropped without Close.
func (m *Manager) finalize() {
	_ = m.Close()
}
