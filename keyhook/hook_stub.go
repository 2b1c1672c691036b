//go:build !windows

package keyhook

import "errors"

// Install is a stub so the package compiles on other platforms. The
// low-level keyboard hook only exists on Windows.
func (m *Manager) Install() error {
	return errors.New("keyhook: global keyboard hook is only supported on Windows")
}
