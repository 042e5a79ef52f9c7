package mimetypes

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestEntriesTableInvariants(t *testing.T) {
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if prev, dup := seen[e.Extension]; dup {
			t.Errorf("extension %q defined twice, at %d and %d", e.Extension, prev, i)
		}
		seen[e.Extension] = i

		assert.NotEqual(t, "", e.Extension)
		assert.Equal(t, strings.ToLower(e.Extension), e.Extension, "extension %q must be lowercase", e.Extension)
		assert.False(t, strings.HasPrefix(e.Extension, "."), "extension %q must not have a leading dot", e.Extension)
		assert.Contains(t, e.Type, "/", "MIME type %q looks malformed", e.Type)
		assert.Equal(t, strings.ToLower(e.Type), e.Type, "MIME type %q must be lowercase", e.Type)
	}
}

func TestInverseTableCoversEveryType(t *testing.T) {
	distinct := make(map[string]bool, len(entries))
	for _, e := range entries {
		distinct[e.Type] = true
	}
	assert.Equal(t, len(distinct), len(extByType))
	for mimeType := range distinct {
		_, ok := extByType[mimeType]
		assert.True(t, ok, "no inverse entry for %q", mimeType)
	}
}
