package mimetug

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/datatug/mimetug/pkg/mimetypes"
	"github.com/datatug/mimetug/pkg/sticky"
)

// typesPanel lists the whole forward table with a substring filter.
type typesPanel struct {
	*tview.Flex

	filter *tview.InputField
	table  *sticky.Table
	footer *tview.TextView

	printer *message.Printer

	all      []mimetypes.Entry
	filtered []mimetypes.Entry
}

type entryRecords struct {
	entries []mimetypes.Entry
}

func (r entryRecords) Count() int {
	return len(r.entries)
}

func (r entryRecords) GetCell(row, col int) *tview.TableCell {
	e := r.entries[row]
	switch col {
	case 0:
		return tview.NewTableCell("." + e.Extension)
	case 1:
		return tview.NewTableCell(e.Type).SetTextColor(tcell.ColorLightSkyBlue)
	default:
		return nil
	}
}

func newTypesPanel() *typesPanel {
	p := &typesPanel{
		printer: message.NewPrinter(language.English),
		all:     mimetypes.All(),
	}

	p.filter = tview.NewInputField().
		SetLabel("Filter: ").
		SetFieldWidth(0).
		SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor).
		SetFieldTextColor(tview.Styles.PrimaryTextColor)
	p.filter.SetChangedFunc(p.filterChanged)

	p.table = sticky.NewTable([]sticky.Column{
		{Name: "Extension", MinWidth: 12},
		{Name: "MIME type", Expansion: 1},
	})

	p.footer = tview.NewTextView().
		SetDynamicColors(true).
		SetTextColor(tcell.ColorSlateGray)

	p.filterChanged("")

	p.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.filter, 1, 0, true).
		AddItem(p.table, 0, 1, false).
		AddItem(p.footer, 1, 0, false)
	p.Flex.SetBorderPadding(1, 0, 2, 2)

	p.filter.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Let the filter field hand scrolling over to the table
		switch event.Key() {
		case tcell.KeyDown, tcell.KeyUp:
			return p.table.GetInputCapture()(event)
		}
		return event
	})

	return p
}

func (p *typesPanel) filterChanged(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		p.filtered = p.all
	} else {
		p.filtered = p.filtered[:0:0]
		for _, e := range p.all {
			if strings.Contains(e.Extension, query) || strings.Contains(e.Type, query) {
				p.filtered = append(p.filtered, e)
			}
		}
	}
	p.table.SetRecords(entryRecords{entries: p.filtered})
	p.footer.SetText(p.printer.Sprintf("%d of %d registered types", len(p.filtered), mimetypes.Count()))
}

func (p *typesPanel) Focus(delegate func(p tview.Primitive)) {
	delegate(p.filter)
}
