package mimetug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/mimetug/pkg/mimetypes"
	"github.com/datatug/mimetug/pkg/sneatv"
)

// Browser is the root primitive: a tab bar with the demo pages and a bottom
// menu bar.
type Browser struct {
	app *tview.Application

	*tview.Flex

	tabs   *sneatv.Tabs
	bottom *bottom
	clip   *clipboard

	extLookup  *lookupPanel
	typeLookup *lookupPanel
	types      *typesPanel
	examples   *examplesPanel

	setAppRoot  func(root tview.Primitive, fullscreen bool)
	setAppFocus func(p tview.Primitive)
}

func NewBrowser(app *tview.Application) *Browser {
	b := &Browser{
		app:  app,
		clip: &clipboard{},
	}
	b.setAppRoot = func(root tview.Primitive, fullscreen bool) {
		if b.app != nil {
			b.app.SetRoot(root, fullscreen)
		}
	}
	b.setAppFocus = func(p tview.Primitive) {
		if b.app != nil {
			b.app.SetFocus(p)
		}
	}
	if app != nil {
		b.clip.attach(app)
	}

	b.extLookup = newLookupPanel(
		"Extension or file name: ",
		"Type an extension (png), a dotted one (.png) or a file name (image.png).",
		"No MIME type registered for this extension.",
		mimetypes.TypeByExtension,
		b.clip.Copy,
	)
	b.typeLookup = newLookupPanel(
		"MIME type: ",
		"Type a MIME type, e.g. text/html or image/jpeg.",
		"No extension registered for this MIME type.",
		mimetypes.ExtensionByType,
		b.clip.Copy,
	)
	b.types = newTypesPanel()
	b.examples = newExamplesPanel()

	if app == nil {
		// keep the tabs' app interface truly nil so its guards work
		b.tabs = sneatv.NewTabs(nil, sneatv.UnderlineTabsStyle, sneatv.WithLabel(" MimeTug "))
	} else {
		b.tabs = sneatv.NewTabs(app, sneatv.UnderlineTabsStyle, sneatv.WithLabel(" MimeTug "))
	}
	b.tabs.AddTabs(
		sneatv.NewTab("ext2mime", "Extension → MIME", b.extLookup),
		sneatv.NewTab("mime2ext", "MIME → extension", b.typeLookup),
		sneatv.NewTab("types", "All types", b.types),
		sneatv.NewTab("examples", "Examples", b.examples),
	)
	b.tabs.SetSwitchedFunc(func(index int, tab *sneatv.Tab) {
		b.setAppFocus(tab.Primitive)
	})

	b.bottom = newBottom(b)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.tabs, 0, 1, true).
		AddItem(b.bottom, 1, 0, false)

	b.SetInputCapture(b.handleInput)

	return b
}

func (b *Browser) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyF1 {
		b.showHelp()
		return nil
	}
	if event.Modifiers()&tcell.ModAlt != 0 && event.Key() == tcell.KeyRune {
		switch r := event.Rune(); {
		case r >= '1' && r <= '9':
			b.tabs.SwitchTo(int(r - '1'))
			return nil
		case r == 'x' || r == 'X':
			b.stop()
			return nil
		}
	}
	return event
}

func (b *Browser) showHelp() {
	modal, _, _ := createHelpModal(b, b.Flex)
	b.setAppRoot(modal, true)
}

func (b *Browser) stop() {
	if b.app != nil {
		b.app.Stop()
	}
}
