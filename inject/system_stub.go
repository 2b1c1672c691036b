//go:build !windows

package inject

import "errors"

var errUnsupported = errors.New("inject: synthetic input is only supported on Windows")

// NewSystem returns a stub so the package compiles on other platforms;
// every operation fails or reports nothing to act on.
func NewSystem() System {
	return stubSystem{}
}

type stubSystem struct{}

func (stubSystem) FocusedControl() (Window, bool)   { return 0, false }
func (stubSystem) PostKeyDown(Window, uint16) error { return errUnsupported }
func (stubSystem) ClipboardText() (string, bool)    { return "", false }
func (stubSystem) SetClipboardText(string) error    { return errUnsupported }
func (stubSystem) ClearClipboard() error            { return errUnsupported }
func (stubSystem) MoveCursor(int, int) error        { return errUnsupported }
func (stubSystem) ClickMouse() error                { return errUnsupported }
