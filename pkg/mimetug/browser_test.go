package mimetug

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datatug/mimetug/pkg/sneatv/ttestutils"
)

func TestNewBrowser(t *testing.T) {
	b := NewBrowser(nil)
	require.NotNil(t, b)
	require.NotNil(t, b.tabs)
	require.NotNil(t, b.bottom)

	active := b.tabs.ActiveTab()
	require.NotNil(t, active)
	assert.Equal(t, "ext2mime", active.ID)
}

func TestBrowser_AltDigitSwitchesTabs(t *testing.T) {
	b := NewBrowser(nil)

	event := tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModAlt)
	assert.Nil(t, b.handleInput(event))
	assert.Equal(t, "types", b.tabs.ActiveTab().ID)

	event = tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModAlt)
	assert.Nil(t, b.handleInput(event))
	assert.Equal(t, "ext2mime", b.tabs.ActiveTab().ID)

	// Out of range is ignored but consumed
	event = tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModAlt)
	assert.Nil(t, b.handleInput(event))
	assert.Equal(t, "ext2mime", b.tabs.ActiveTab().ID)
}

func TestBrowser_F1ShowsHelp(t *testing.T) {
	b := NewBrowser(nil)

	var root tview.Primitive
	b.setAppRoot = func(r tview.Primitive, fullscreen bool) {
		root = r
	}

	event := tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)
	assert.Nil(t, b.handleInput(event))
	assert.NotNil(t, root)
}

func TestBrowser_AltXStops(t *testing.T) {
	b := NewBrowser(nil) // nil app: stop must be a safe no-op
	event := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)
	assert.Nil(t, b.handleInput(event))

	event = tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModAlt)
	assert.Nil(t, b.handleInput(event))
}

func TestBrowser_OtherKeysPassThrough(t *testing.T) {
	b := NewBrowser(nil)
	event := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.Equal(t, event, b.handleInput(event))
}

func TestBrowser_Draw(t *testing.T) {
	const width, height = 80, 24
	screen := ttestutils.NewSimScreen(t, "UTF-8", width, height)
	defer screen.Fini()

	b := NewBrowser(nil)
	b.SetRect(0, 0, width, height)
	b.Draw(screen)
	screen.Show()

	text := ttestutils.ScreenText(screen, width, height)
	assert.Contains(t, text, "MimeTug")
	assert.Contains(t, text, "Extension")
}

func TestSetupApp(t *testing.T) {
	app := tview.NewApplication()
	SetupApp(app) // must not panic
}
