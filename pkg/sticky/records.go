package sticky

import "github.com/rivo/tview"

// Records feeds rows into a Table.
type Records interface {
	Count() int
	GetCell(row, col int) *tview.TableCell
}

// Column describes a single table column.
type Column struct {
	Name       string
	FixedWidth int
	MinWidth   int
	Expansion  int
}
