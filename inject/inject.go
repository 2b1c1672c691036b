// Package inject places text into the focused control of whatever window
// is in the foreground, even when that control belongs to another
// process. It works by staging the text on the clipboard, posting a
// synthetic paste chord to the control's message queue and restoring the
// clipboard afterwards.
package inject

import (
	"fmt"
	"log/slog"
	"time"
)

// Paste chord posted to the target control.
const (
	vkControl = 0x11
	vkV       = 0x56
)

// defaultSettle is roughly one display refresh, long enough in practice
// for the target to service the posted paste before the clipboard is
// swapped back.
const defaultSettle = 16 * time.Millisecond

// Window identifies a native control, usually owned by another process.
type Window uintptr

// System is the narrow OS surface the injector runs against. The real
// implementation talks to user32; tests substitute an in-memory fake.
type System interface {
	// FocusedControl resolves the control with keyboard focus inside
	// the current foreground window, or reports false if there is none.
	FocusedControl() (Window, bool)

	// PostKeyDown queues a key-down message for the control and returns
	// without waiting for it to be processed.
	PostKeyDown(w Window, key uint16) error

	// ClipboardText returns the current clipboard text and whether text
	// was present at all. Empty text and no text are different states.
	ClipboardText() (string, bool)

	SetClipboardText(text string) error
	ClearClipboard() error

	MoveCursor(x, y int) error
	ClickMouse() error
}

// Injector performs clipboard-swap text injection.
type Injector struct {
	sys    System
	settle time.Duration
}

// NewInjector returns an injector over sys. settle is how long to wait
// after posting the paste chord before the clipboard is restored; values
// of zero or less use the default.
func NewInjector(sys System, settle time.Duration) *Injector {
	if settle <= 0 {
		settle = defaultSettle
	}
	return &Injector{sys: sys, settle: settle}
}

// Inject places text into the focused control of the foreground window.
// When no control has keyboard focus the call is a silent no-op and the
// clipboard is left untouched. Otherwise the previous clipboard text is
// put back afterwards; if the clipboard held no text it is left empty.
func (inj *Injector) Inject(text string) error {
	target, ok := inj.sys.FocusedControl()
	if !ok {
		slog.Debug("No focused control, skipping injection")
		return nil
	}

	// Snapshot before staging so the user's clipboard survives the swap.
	prev, hadText := inj.sys.ClipboardText()

	if err := inj.sys.SetClipboardText(text); err != nil {
		return fmt.Errorf("failed to stage clipboard text: %w", err)
	}

	postErr := inj.postPasteChord(target)
	if postErr == nil {
		// Give the target a beat to service the paste before swapping
		// back.
		time.Sleep(inj.settle)
	}
	inj.restoreClipboard(prev, hadText)

	return postErr
}

// postPasteChord queues Ctrl down followed by V down on the target's
// message queue. No key-ups are sent; the target interprets the pair as
// a paste command on its own thread.
func (inj *Injector) postPasteChord(target Window) error {
	if err := inj.sys.PostKeyDown(target, vkControl); err != nil {
		return fmt.Errorf("failed to post paste chord: %w", err)
	}
	if err := inj.sys.PostKeyDown(target, vkV); err != nil {
		return fmt.Errorf("failed to post paste chord: %w", err)
	}
	return nil
}

// restoreClipboard is best effort; a failure leaves the staged text
// behind, which is visible but harmless.
func (inj *Injector) restoreClipboard(prev string, hadText bool) {
	if hadText {
		if err := inj.sys.SetClipboardText(prev); err != nil {
			slog.Warn("Failed to restore clipboard", "error", err)
		}
		return
	}
	if err := inj.sys.ClearClipboard(); err != nil {
		slog.Warn("Failed to clear clipboard", "error", err)
	}
}

// Click presses and releases the left mouse button at the current cursor
// position.
func (inj *Injector) Click() error {
	return inj.sys.ClickMouse()
}

// ClickAt moves the cursor to virtual-screen coordinates x,y and clicks
// there.
func (inj *Injector) ClickAt(x, y int) error {
	if err := inj.sys.MoveCursor(x, y); err != nil {
		return fmt.Errorf("failed to move cursor: %w", err)
	}
	return inj.sys.ClickMouse()
}
