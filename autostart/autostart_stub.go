//go:build !windows

package autostart

import "errors"

var errUnsupported = errors.New("autostart: only supported on Windows")

type unsupported struct{}

// New returns a stub manager; login items are only wired up on Windows.
func New() Manager {
	return unsupported{}
}

func (unsupported) IsEnabled() (bool, error) { return false, nil }
func (unsupported) Enable() error            { return errUnsupported }
func (unsupported) Disable() error           { return errUnsupported }
