package leaderboard

import (
	"slices"
	"sort"
)

// Entry is one persisted run outcome.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Won   bool   `json:"won"`
	TS    uint64 `json:"ts"` // epoch seconds of submission
}

// Board holds the ranked score list for one process. Prior entries are
// loaded once at construction; every submission rewrites the store.
type Board struct {
	entries []Entry
	store   Store
}

// NewBoard loads prior entries from the store. Unreadable or corrupt
// content counts as an empty leaderboard, never as an error.
func NewBoard(store Store) *Board {
	b := &Board{store: store}
	if store != nil {
		if entries, err := store.Load(); err == nil {
			b.entries = entries
		}
	}
	return b
}

// Submit appends the entry, re-sorts descending by score and persists
// the list. It returns the 1-based rank of the submitted entry; ties
// resolve to the first matching entry after the stable sort.
func (b *Board) Submit(e Entry) int {
	b.entries = append(b.entries, e)
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if b.store != nil {
		// A failed write only loses this run's persistence; gameplay
		// must not be interrupted for it.
		_ = b.store.Save(b.entries)
	}
	for i, cur := range b.entries {
		if cur.Name == e.Name && cur.Score == e.Score && cur.Won == e.Won {
			return i + 1
		}
	}
	return 0
}

// Entries returns a copy of the entries, best score first.
func (b *Board) Entries() []Entry {
	return slices.Clone(b.entries)
}
