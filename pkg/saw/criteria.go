package saw

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// maxSuggestDistance bounds the edit distance at which a misspelled criterion
// type gets a suggestion.
const maxSuggestDistance = 2

// CriteriaType tells the normalizer which direction is better for a column.
type CriteriaType uint8

const (
	// Benefit criteria prefer higher raw values.
	Benefit CriteriaType = iota + 1
	// Cost criteria prefer lower raw values.
	Cost
)

// String returns the canonical lower-case name.
func (c CriteriaType) String() string {
	switch c {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return "unknown"
	}
}

// ParseCriteriaType parses "benefit" or "cost", ignoring case and surrounding
// whitespace.
func ParseCriteriaType(s string) (CriteriaType, error) {
	t, ok := lookupCriteriaType(s)
	if !ok {
		return 0, invalidCriteria(-1, s)
	}
	return t, nil
}

func lookupCriteriaType(s string) (CriteriaType, bool) {
	switch foldCriteria(s) {
	case "benefit":
		return Benefit, true
	case "cost":
		return Cost, true
	default:
		return 0, false
	}
}

// foldCriteria trims s and applies Unicode case folding. A Caser is stateful,
// so one is built per call.
func foldCriteria(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func invalidCriteria(col int, value string) *Error {
	msg := `must be "benefit" or "cost"`
	if hint := suggestCriteria(value); hint != "" {
		msg += `, did you mean "` + hint + `"?`
	}
	return newError(KindInvalidCriteria, msg).at(-1, col).with(value)
}

// suggestCriteria returns the closest known type name within
// maxSuggestDistance edits of s, or "".
func suggestCriteria(s string) string {
	folded := foldCriteria(s)
	if folded == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, name := range []string{Benefit.String(), Cost.String()} {
		if d := levenshtein.ComputeDistance(folded, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// parseCriteria parses the criteria list, checking its length against cols first.
func parseCriteria(criteria []string, cols int) ([]CriteriaType, error) {
	if len(criteria) != cols {
		return nil, newError(KindCardinality, countMismatch("criteria", len(criteria), cols))
	}
	out := make([]CriteriaType, len(criteria))
	for j, s := range criteria {
		t, ok := lookupCriteriaType(s)
		if !ok {
			return nil, invalidCriteria(j, s)
		}
		out[j] = t
	}
	return out, nil
}
