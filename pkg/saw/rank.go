package saw

import (
	"cmp"
	"math"
	"slices"
)

// Rank maps preference scores to ranks: the highest score gets 1 and every
// alternative gets a distinct rank. Equal scores are ordered by row index, the
// lower index ranking better. NaN scores rank after all numbers.
func Rank(preference []float64) []int {
	order := Order(preference)
	ranks := make([]int, len(order))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}
	return ranks
}

// Order returns row indices sorted best first, using the same rules as Rank.
func Order(preference []float64) []int {
	order := make([]int, len(preference))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := compareDesc(preference[a], preference[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}

// compareDesc orders larger scores first and NaN last.
func compareDesc(x, y float64) int {
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return 1
	case yNaN:
		return -1
	}
	return cmp.Compare(y, x)
}
