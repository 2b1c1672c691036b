// Package autostart manages launching the app when the user signs in.
package autostart

// Manager reports and changes whether the app starts at login.
type Manager interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
}
