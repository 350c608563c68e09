// Package types contains common types used across the application
package types

import (
	"slices"
)

// Entry is one row of a ranking.
type Entry struct {
	Rank        int     `json:"rank"`
	Alternative string  `json:"alternative"`
	Index       int     `json:"index"`
	Score       float64 `json:"score"`
}

// Ranking pairs alternative names with their scores and ranks and returns the
// entries ordered by rank. All three slices must have the same length.
func Ranking(names []string, scores []float64, ranks []int) []Entry {
	entries := make([]Entry, len(ranks))
	for i, rank := range ranks {
		entries[i] = Entry{
			Rank:        rank,
			Alternative: names[i],
			Index:       i,
			Score:       scores[i],
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int { return a.Rank - b.Rank })
	return entries
}
