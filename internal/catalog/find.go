package catalog

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Find resolves query against entries: exact id or name first, then prefix,
// then substring, then the closest fuzzy match on the display name.
func Find(entries []Entry, query string) (Entry, error) {
	idx := BestMatchIndex(entries, query)
	if idx < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, strings.TrimSpace(query))
	}
	return entries[idx], nil
}

// BestMatchIndex returns the index of the best match for query or -1.
func BestMatchIndex(entries []Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(entries) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.EqualFold(entry.ID, trimmed) || strings.EqualFold(entry.Name(), trimmed) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Name()), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.ID), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name()), lower) {
			return i
		}
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}
