package mimetug

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type lookupFunc func(query string) (string, bool)

// lookupPanel is a single lookup form: an input field with a live result line
// underneath. It serves both directions (extension→MIME and MIME→extension),
// differing only in labels and the lookup function.
type lookupPanel struct {
	*tview.Flex

	input  *tview.InputField
	result *tview.TextView

	lookup   lookupFunc
	hint     string
	notFound string

	copyText func(text string) bool

	lastMatch string
}

func newLookupPanel(label, hint, notFound string, lookup lookupFunc, copyText func(text string) bool) *lookupPanel {
	p := &lookupPanel{
		lookup:   lookup,
		hint:     hint,
		notFound: notFound,
		copyText: copyText,
	}

	p.input = tview.NewInputField().
		SetLabel(label).
		SetFieldWidth(0).
		SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor).
		SetFieldTextColor(tview.Styles.PrimaryTextColor)

	p.result = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)

	p.input.SetChangedFunc(p.queryChanged)
	p.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.copyResult()
		}
	})

	p.queryChanged("")

	p.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.input, 1, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(p.result, 0, 1, false)
	p.Flex.SetBorderPadding(1, 1, 2, 2)

	return p
}

func (p *lookupPanel) queryChanged(query string) {
	if query == "" {
		p.lastMatch = ""
		p.result.SetText("[gray]" + tview.Escape(p.hint) + "[-]")
		return
	}
	value, ok := p.lookup(query)
	if !ok {
		p.lastMatch = ""
		p.result.SetText(fmt.Sprintf("[red]%s[-] [gray]%s[-]",
			tview.Escape(p.notFound), tview.Escape("("+query+")")))
		return
	}
	p.lastMatch = value
	p.result.SetText(fmt.Sprintf("[green::b]%s[-::-]\n\n[gray]Press Enter to copy[-]",
		tview.Escape(value)))
}

func (p *lookupPanel) copyResult() {
	if p.lastMatch == "" {
		return
	}
	if p.copyText != nil && p.copyText(p.lastMatch) {
		p.result.SetText(fmt.Sprintf("[green::b]%s[-::-]\n\n[gray]Copied to clipboard[-]",
			tview.Escape(p.lastMatch)))
	}
}

func (p *lookupPanel) Focus(delegate func(p tview.Primitive)) {
	delegate(p.input)
}
