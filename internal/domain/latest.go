package domain

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// LatestPerEntry collapses a flat draft list spanning many entries into one
// representative draft per entry: the one with the greatest CreatedAt, ties
// broken by the lexicographically larger ID. The output is ordered by
// CreatedAt descending (then ID descending) and is the same for any
// permutation of the input, because Glossary, Review and My Drafts views
// must agree on what the current version of a definition is.
func LatestPerEntry(drafts []*Draft) []*Draft {
	if len(drafts) == 0 {
		return []*Draft{}
	}

	byEntry := make(map[uuid.UUID]*Draft, len(drafts))
	for _, d := range drafts {
		cur, ok := byEntry[d.EntryID]
		if !ok || newerDraft(d, cur) {
			byEntry[d.EntryID] = d
		}
	}

	out := make([]*Draft, 0, len(byEntry))
	for _, d := range byEntry {
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		return newerDraft(out[i], out[j])
	})

	return out
}

// newerDraft reports whether a should rank before b: later CreatedAt wins,
// identical timestamps fall back to the larger ID.
func newerDraft(a, b *Draft) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) > 0
}
