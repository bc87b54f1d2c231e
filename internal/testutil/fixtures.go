package testutil

import (
	"strings"

	"github.com/atomicstack/arcade-menu/internal/catalog"
)

// Entries builds visible entries whose id is the lower-cased name.
func Entries(names ...string) []catalog.Entry {
	entries := make([]catalog.Entry, len(names))
	for i, name := range names {
		entries[i] = catalog.Entry{
			ID:          strings.ToLower(name),
			DisplayName: name,
			Visible:     true,
		}
	}
	return entries
}

// Letters builds n entries named A, B, C and so on.
func Letters(n int) []catalog.Entry {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	return Entries(names...)
}
