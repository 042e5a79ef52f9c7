// Package mimetypes maps file extensions to MIME types and back.
//
// Both tables are built once at package load from a fixed literal and are never
// mutated afterwards, so lookups are safe for concurrent use without locking.
package mimetypes

import "strings"

// Entry is a single extension→MIME pair of the forward table.
// Extension is lowercase and has no leading dot.
type Entry struct {
	Extension string
	Type      string
}

var (
	typeByExt map[string]string
	extByType map[string]string
)

func init() {
	typeByExt = make(map[string]string, len(entries))
	for _, e := range entries {
		if _, dup := typeByExt[e.Extension]; dup {
			panic("mimetypes: duplicate extension in table: " + e.Extension)
		}
		typeByExt[e.Extension] = e.Type
	}

	// First extension listed for a MIME type wins, later ones are
	// skipped silently. This keeps ExtensionByType deterministic.
	extByType = make(map[string]string, len(entries))
	for _, e := range entries {
		if _, seen := extByType[e.Type]; !seen {
			extByType[e.Type] = e.Extension
		}
	}
}

// TypeByExtension returns the MIME type registered for the given extension.
// The argument may be a bare extension ("png"), a dotted one (".png"),
// a file name ("image.PNG") or a path — only the part after the last dot is
// looked at, case-insensitively. The second result reports whether the
// extension is known.
func TypeByExtension(nameOrExt string) (string, bool) {
	ext := candidateExtension(nameOrExt)
	if ext == "" {
		return "", false
	}
	t, ok := typeByExt[ext]
	return t, ok
}

// ExtensionByType returns the representative extension for a MIME type.
// When several extensions share the type, the one defined first in the
// forward table is returned.
func ExtensionByType(mimeType string) (string, bool) {
	ext, ok := extByType[strings.ToLower(mimeType)]
	return ext, ok
}

// All returns a copy of the forward table in definition order.
func All() []Entry {
	all := make([]Entry, len(entries))
	copy(all, entries)
	return all
}

// Count returns the number of entries in the forward table.
func Count() int {
	return len(entries)
}

// candidateExtension extracts the lookup key: the substring after the last
// dot, lowercased. A string without a dot is itself the candidate, so that
// both "png" and "image.png" resolve the same way. Inputs like "file." or
// "." yield an empty candidate.
func candidateExtension(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(s)
}
