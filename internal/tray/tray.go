// Package tray provides the agent's system tray menu using getlantern/systray.
package tray

import (
	"github.com/getlantern/systray"
)

// MenuItem represents a menu item
type MenuItem struct {
	ID       int
	Title    string
	Callback func()
	item     *systray.MenuItem
}

// Tray manages the system tray icon and menu
type Tray struct {
	title   string
	tooltip string
	items   []*MenuItem
	readyCh chan struct{}
	quitCh  chan struct{}
}

// New creates a new system tray
func New(title, tooltip string) *Tray {
	return &Tray{
		title:   title,
		tooltip: tooltip,
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// AddMenuItem adds a menu item to the tray and returns its id
func (t *Tray) AddMenuItem(title string, callback func()) int {
	id := len(t.items)
	t.items = append(t.items, &MenuItem{ID: id, Title: title, Callback: callback})
	return id
}

// AddSeparator adds a separator to the menu
func (t *Tray) AddSeparator() {
	t.items = append(t.items, nil) // nil indicates separator
}

// SetItemChecked sets the checked state of a menu item
func (t *Tray) SetItemChecked(id int, checked bool) {
	if id < 0 || id >= len(t.items) || t.items[id] == nil || t.items[id].item == nil {
		return
	}
	if checked {
		t.items[id].item.Check()
	} else {
		t.items[id].item.Uncheck()
	}
}

// Run starts the tray event loop (blocks until Stop)
func (t *Tray) Run() {
	systray.Run(t.setupMenu, func() { close(t.quitCh) })
}

// Stop stops the tray
func (t *Tray) Stop() {
	systray.Quit()
}

// setupMenu is called when systray is ready
func (t *Tray) setupMenu() {
	systray.SetTitle(t.title)
	systray.SetTooltip(t.tooltip)
	systray.SetIcon(getIcon())

	for _, menuItem := range t.items {
		if menuItem == nil {
			systray.AddSeparator()
			continue
		}
		menuItem.item = systray.AddMenuItem(menuItem.Title, "")
		if menuItem.Callback == nil {
			continue
		}
		go func(mi *MenuItem) {
			for {
				select {
				case <-mi.item.ClickedCh:
					mi.Callback()
				case <-t.quitCh:
					return
				}
			}
		}(menuItem)
	}
}

// getIcon returns a placeholder icon (valid 16x16 32-bit ICO)
func getIcon() []byte {
	icon := make([]byte, 1118)
	// ICO header
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	// Icon directory
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00, // 1024 pixel bytes + 40 header + 32 mask
		0x16, 0x00, 0x00, 0x00, // offset
	})
	// DIB header
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00, // size
		0x10, 0x00, 0x00, 0x00, // width
		0x20, 0x00, 0x00, 0x00, // height (16 * 2 for the mask plane)
		0x01, 0x00, // planes
		0x20, 0x00, // bpp
		0x00, 0x00, 0x00, 0x00, // compression
		0x00, 0x04, 0x00, 0x00, // image size
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	// Pixels and mask stay zero for transparency
	return icon
}
