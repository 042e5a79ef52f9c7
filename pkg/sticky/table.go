package sticky

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Table is a tview table with a sticky header row: the records scroll while
// the header stays at the top.
type Table struct {
	*tview.Table
	width   int
	columns []Column
	records Records
	//
	topRowIndex int
}

func (t *Table) SetRecords(records Records) {
	t.records = records
	t.topRowIndex = 0
	t.render()
}

func NewTable(columns []Column) *Table {
	t := &Table{
		columns: columns,
		Table:   tview.NewTable(),
	}
	t.SetFixed(1, 0)
	t.setHeader()
	t.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		t.width = width
		t.render()
		return x + 1, y + 1, width - 2, height - 2
	})
	// ---- keyboard scrolling ----
	t.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyDown:
			if t.records != nil && t.topRowIndex < t.records.Count()-1 {
				t.topRowIndex++
				t.render()
			}
			return nil
		case tcell.KeyUp:
			if t.topRowIndex > 0 {
				t.topRowIndex--
				t.render()
			}
			return nil
		default:
			return event
		}
	})
	return t
}

func (t *Table) setHeader() {
	for i, col := range t.columns {
		th := tview.NewTableCell(col.Name)
		th.SetTextColor(tcell.ColorYellow)
		th.SetSelectable(false)
		if i == 0 {
			th.SetExpansion(9)
		}
		t.SetCell(0, i, th)
	}
}

func (t *Table) render() {
	t.Clear()
	t.setHeader()

	if t.records == nil {
		return
	}

	_, _, _, visibleRowsCount := t.GetRect()
	if visibleRowsCount <= 1 { // 1 for header
		return
	}
	visibleRowsCount-- // header

	maxColWidth := make([]int, len(t.columns))
	for i, col := range t.columns {
		if col.FixedWidth > 0 {
			maxColWidth[i] = col.FixedWidth
			continue
		}
		if col.MinWidth > 0 && maxColWidth[i] < col.MinWidth {
			maxColWidth[i] = col.MinWidth
		}
	}

	for row := 0; row < visibleRowsCount && t.topRowIndex+row < t.records.Count(); row++ {
		for col, column := range t.columns {
			td := t.records.GetCell(t.topRowIndex+row, col)
			if td == nil {
				continue
			}
			if maxWidth := maxColWidth[col]; maxWidth > 0 {
				td.SetMaxWidth(maxWidth)
			}
			if column.Expansion > 0 {
				td.SetExpansion(column.Expansion)
			}
			t.SetCell(row+1, col, td)
		}
	}
}
