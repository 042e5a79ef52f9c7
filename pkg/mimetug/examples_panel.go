package mimetug

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/rivo/tview"

	"github.com/datatug/mimetug/pkg/chroma2tcell"
)

// Illustrative snippets only: the examples tab renders them, it does not run them.
const usageExample = `package main

import (
	"fmt"

	"github.com/datatug/mimetug/pkg/mimetypes"
)

func main() {
	if mimeType, ok := mimetypes.TypeByExtension("index.html"); ok {
		fmt.Println(mimeType) // text/html
	}

	if ext, ok := mimetypes.ExtensionByType("image/jpeg"); ok {
		fmt.Println(ext) // jpg
	}

	for _, e := range mimetypes.All() {
		fmt.Printf(".%s\t%s\n", e.Extension, e.Type)
	}
}
`

// examplesPanel shows syntax-highlighted usage code.
type examplesPanel struct {
	*tview.TextView
}

func newExamplesPanel() *examplesPanel {
	p := &examplesPanel{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false),
	}
	p.SetBorderPadding(1, 1, 2, 2)

	colorized, err := chroma2tcell.ColorizeGoForTview(usageExample, lexers.Get)
	if err != nil {
		// fall back to plain text
		p.SetText(tview.Escape(usageExample))
		return p
	}
	p.SetText(colorized)
	return p
}
