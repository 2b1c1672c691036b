package main

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"hardspace/keyhook"
)

// The shortcut and its payload are fixed: Ctrl+Space with nothing else
// held inserts a non-breaking space into the focused control.
const (
	triggerKey  = keyhook.KeySpace
	triggerMods = keyhook.ModCtrl

	nonBreakingSpace = " "
)

// textInjector is the slice of the injector the agent needs.
type textInjector interface {
	Inject(text string) error
}

// Agent binds the global shortcut to text injection. It owns the hook
// lifecycle and the enabled state the tray toggles.
type Agent struct {
	hook     *keyhook.Manager
	injector textInjector
	enabled  atomic.Bool
}

// NewAgent creates a new agent subscribed to hook's key-down events
func NewAgent(hook *keyhook.Manager, injector textInjector) *Agent {
	a := &Agent{hook: hook, injector: injector}
	a.enabled.Store(true)
	hook.OnKeyDown(a.handleKeyDown)
	return a
}

// Start installs the global keyboard hook
func (a *Agent) Start() error {
	if err := a.hook.Install(); err != nil {
		return fmt.Errorf("failed to install keyboard hook: %w", err)
	}
	slog.Info("Keyboard hook installed", "shortcut", "Ctrl+Space")
	return nil
}

// SetEnabled turns shortcut handling on or off without touching the hook
func (a *Agent) SetEnabled(on bool) {
	a.enabled.Store(on)
	slog.Info("Shortcut handling toggled", "enabled", on)
}

// Enabled reports whether the shortcut is currently active
func (a *Agent) Enabled() bool {
	return a.enabled.Load()
}

// Close releases the keyboard hook. Safe to call more than once.
func (a *Agent) Close() error {
	return a.hook.Close()
}

// handleKeyDown runs on the hook thread for every key press in the
// system. The match is exact: Space while Ctrl and only Ctrl is held.
// A match claims the event, so the Space never reaches the target; the
// injected character arrives through the paste instead.
func (a *Agent) handleKeyDown(ev *keyhook.Event) {
	if !a.enabled.Load() {
		return
	}
	if ev.Key != triggerKey || ev.Mods != triggerMods {
		return
	}

	ev.MarkHandled()

	if err := a.injector.Inject(nonBreakingSpace); err != nil {
		slog.Warn("Failed to inject text", "error", err)
	}
}
