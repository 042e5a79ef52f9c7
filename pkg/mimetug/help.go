package mimetug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func createHelpModal(b *Browser, root tview.Primitive) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	const helpText = `F1 - Help
Alt+1 - Extension → MIME lookup
Alt+2 - MIME → extension lookup
Alt+3 - All registered types
Alt+4 - Usage examples
←/→ - Switch tabs (tab bar)
Enter - Copy lookup result
Alt+X - Exit the app`

	helpView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText).
		SetTextAlign(tview.AlignCenter)

	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeHelp := func() {
		b.setAppRoot(root, true)
		b.setAppFocus(b.tabs)
	}

	helpView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	})

	button = tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	})

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)

	helpFlex.SetBorder(true).
		SetTitle(" MimeTug - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	// Modal-like layout: a grid centering the help box
	modal = tview.NewGrid().
		SetColumns(0, 44, 0).
		SetRows(0, 12, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}
