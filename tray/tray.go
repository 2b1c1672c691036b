// Package tray renders the notification-area icon and its menu.
package tray

import (
	"log/slog"

	"github.com/getlantern/systray"

	"hardspace/autostart"
)

// Options wires the menu to the rest of the app.
type Options struct {
	Enabled    func() bool       // initial state of the Enabled item
	SetEnabled func(bool)        // invoked when the Enabled item is toggled
	Autostart  autostart.Manager // backs the "Start at login" item
	Icon       []byte            // optional tray icon (.ico bytes)
}

// Manager manages the system tray icon and menu
type Manager struct {
	opts Options
}

// New creates a new tray manager
func New(opts Options) *Manager {
	return &Manager{opts: opts}
}

// Run starts the system tray (blocking call)
func (m *Manager) Run() {
	systray.Run(m.onReady, m.onExit)
}

// Stop stops the system tray, unblocking Run
func (m *Manager) Stop() {
	systray.Quit()
}

// onReady is called when the systray is ready
func (m *Manager) onReady() {
	if len(m.opts.Icon) > 0 {
		systray.SetIcon(m.opts.Icon)
	}

	systray.SetTitle("hardspace")
	systray.SetTooltip("hardspace - Ctrl+Space inserts a non-breaking space")

	mEnabled := systray.AddMenuItemCheckbox("Enabled", "Toggle the shortcut", m.opts.Enabled())
	mLogin := systray.AddMenuItemCheckbox("Start at login", "Run hardspace when you sign in", m.autostartOn())
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit hardspace")

	// Handle menu clicks
	go func() {
		for {
			select {
			case <-mEnabled.ClickedCh:
				m.toggleEnabled(mEnabled)
			case <-mLogin.ClickedCh:
				m.toggleAutostart(mLogin)
			case <-mQuit.ClickedCh:
				slog.Info("User requested quit from system tray")
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the systray is exiting
func (m *Manager) onExit() {
	slog.Info("System tray exited")
}

func (m *Manager) toggleEnabled(item *systray.MenuItem) {
	if item.Checked() {
		item.Uncheck()
		m.opts.SetEnabled(false)
	} else {
		item.Check()
		m.opts.SetEnabled(true)
	}
}

func (m *Manager) autostartOn() bool {
	on, err := m.opts.Autostart.IsEnabled()
	if err != nil {
		slog.Warn("Failed to read autostart state", "error", err)
		return false
	}
	return on
}

func (m *Manager) toggleAutostart(item *systray.MenuItem) {
	if item.Checked() {
		if err := m.opts.Autostart.Disable(); err != nil {
			slog.Warn("Failed to disable autostart", "error", err)
			return
		}
		item.Uncheck()
	} else {
		if err := m.opts.Autostart.Enable(); err != nil {
			slog.Warn("Failed to enable autostart", "error", err)
			return
		}
		item.Check()
	}
}
