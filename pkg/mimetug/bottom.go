package mimetug

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type menuItem struct {
	ID     string
	Title  string
	HotKey string
	Action func()
}

// bottom is the menu bar at the bottom of the browser.
type bottom struct {
	*tview.TextView
	browser   *Browser
	menuItems []menuItem
}

func newBottom(browser *Browser) *bottom {
	b := &bottom{
		browser: browser,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}

	b.menuItems = b.getMenuItems()
	b.SetHighlightedFunc(b.highlighted)
	b.render()

	return b
}

func (b *bottom) getMenuItems() []menuItem {
	return []menuItem{
		{ID: "help", Title: "F1 Help", HotKey: "F1", Action: func() {
			b.browser.showHelp()
		}},
		{ID: "tabs", Title: "Alt+1…4 Tabs", HotKey: "Alt+1…4"},
		{ID: "exit", Title: "Alt+X Exit", HotKey: "Alt+X", Action: func() {
			b.browser.stop()
		}},
	}
}

func (b *bottom) render() {
	const separator = " ┊ "
	var sb strings.Builder
	for i, mi := range b.menuItems {
		if i > 0 {
			sb.WriteString(separator)
		}
		title := mi.Title
		if mi.HotKey != "" {
			hotkeyText := fmt.Sprintf("[yellow]%s[-]", mi.HotKey)
			title = strings.Replace(title, mi.HotKey, hotkeyText, 1)
		}
		sb.WriteString(fmt.Sprintf(`["%s"]%s[""]`, mi.ID, title))
	}
	b.SetText(sb.String())
}

func (b *bottom) highlighted(added, removed, remaining []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	for _, mi := range b.menuItems {
		if mi.ID == region && mi.Action != nil {
			b.Highlight()
			mi.Action()
			return
		}
	}
	b.Highlight()
}
