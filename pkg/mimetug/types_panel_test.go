package mimetug

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datatug/mimetug/pkg/mimetypes"
)

func TestTypesPanel_NoFilterShowsEverything(t *testing.T) {
	p := newTypesPanel()
	assert.Equal(t, mimetypes.Count(), len(p.filtered))
	footer := p.footer.GetText(false)
	assert.Contains(t, footer, fmt.Sprintf("%d of %d", mimetypes.Count(), mimetypes.Count()))
}

func TestTypesPanel_Filter(t *testing.T) {
	p := newTypesPanel()

	p.filter.SetText("7z")
	require.Equal(t, 1, len(p.filtered))
	assert.Equal(t, "7z", p.filtered[0].Extension)
	assert.Contains(t, p.footer.GetText(false), "1 of")

	// Filter matches both extension and MIME type columns
	p.filter.SetText("jpeg")
	for _, e := range p.filtered {
		matched := strings.Contains(e.Extension, "jpeg") || strings.Contains(e.Type, "jpeg")
		assert.True(t, matched, "entry %v should not have passed the filter", e)
	}
	require.True(t, len(p.filtered) >= 2) // at least jpg and jpeg

	// Case-insensitive, whitespace-tolerant
	p.filter.SetText("  PNG ")
	require.True(t, len(p.filtered) >= 1)
	assert.Equal(t, "png", p.filtered[0].Extension)
}

func TestTypesPanel_FilterNoMatch(t *testing.T) {
	p := newTypesPanel()
	p.filter.SetText("no-such-thing")
	assert.Equal(t, 0, len(p.filtered))
	assert.Contains(t, p.footer.GetText(false), "0 of")
}

func TestTypesPanel_ClearFilterRestores(t *testing.T) {
	p := newTypesPanel()
	p.filter.SetText("zip")
	require.True(t, len(p.filtered) < mimetypes.Count())
	p.filter.SetText("")
	assert.Equal(t, mimetypes.Count(), len(p.filtered))
}

func TestEntryRecords(t *testing.T) {
	r := entryRecords{entries: []mimetypes.Entry{
		{Extension: "png", Type: "image/png"},
	}}
	assert.Equal(t, 1, r.Count())
	assert.Equal(t, ".png", r.GetCell(0, 0).Text)
	assert.Equal(t, "image/png", r.GetCell(0, 1).Text)
	assert.Nil(t, r.GetCell(0, 2))
}
