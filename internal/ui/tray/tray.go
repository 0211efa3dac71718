package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "SmartClock"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow             func()
	OnToggleFullscreen func()
	OnQuit             func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	toggleItem *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
	fullscreen bool
}

// New creates a tray manager with the provided callbacks. A nil app builds
// the menu without installing it.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show clock", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.toggleItem = fyne.NewMenuItem(toggleLabel(false), func() {
		if manager.callbacks.OnToggleFullscreen != nil {
			manager.callbacks.OnToggleFullscreen()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.SetStatus("Running...")
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetFullscreen relabels the toggle item for the current window mode.
func (manager *Manager) SetFullscreen(fullscreen bool) {
	if manager.fullscreen == fullscreen {
		return
	}
	manager.fullscreen = fullscreen
	manager.toggleItem.Label = toggleLabel(fullscreen)
	manager.refreshMenu()
}

// Menu returns the tray menu as currently shown.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.toggleItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func toggleLabel(fullscreen bool) string {
	if fullscreen {
		return "Exit full screen"
	}
	return "Full screen"
}
