package mimetug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// clipboard copies text to the system clipboard through the terminal (OSC 52).
// tview does not expose its screen, so we grab it from an after-draw hook;
// until the first draw Copy is a no-op.
type clipboard struct {
	screen tcell.Screen
}

func (c *clipboard) attach(app *tview.Application) {
	app.SetAfterDrawFunc(func(screen tcell.Screen) {
		c.screen = screen
	})
}

// Copy sends the text to the terminal clipboard. Returns false if no screen
// has been captured yet.
func (c *clipboard) Copy(text string) bool {
	if c.screen == nil {
		return false
	}
	c.screen.SetClipboard([]byte(text))
	return true
}
