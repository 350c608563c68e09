// Package model holds the named decision problems handled by the service.
package model

import (
	"strconv"

	"github.com/okian/saw/internal/domain/types"
)

// Criterion is one column of a decision problem.
type Criterion struct {
	Name   string  `json:"name" koanf:"name"`
	Type   string  `json:"type" koanf:"type"`
	Weight float64 `json:"weight" koanf:"weight"`
}

// Problem is a decision matrix with named alternatives and criteria.
// Matrix[i][j] is the score of alternative i on criterion j.
type Problem struct {
	Name         string      `json:"name" koanf:"name"`
	Alternatives []string    `json:"alternatives" koanf:"alternatives"`
	Criteria     []Criterion `json:"criteria" koanf:"criteria"`
	Matrix       [][]float64 `json:"matrix" koanf:"matrix"`
}

// CriteriaTypes returns the criterion type labels in column order.
func (p Problem) CriteriaTypes() []string {
	out := make([]string, len(p.Criteria))
	for i, c := range p.Criteria {
		out[i] = c.Type
	}
	return out
}

// Weights returns the criterion weights in column order.
func (p Problem) Weights() []float64 {
	out := make([]float64, len(p.Criteria))
	for i, c := range p.Criteria {
		out[i] = c.Weight
	}
	return out
}

// AlternativeNames returns one label per matrix row. Blank labels become
// A1..An by row position. When no labels are given all rows are generated.
func (p Problem) AlternativeNames() []string {
	names := make([]string, len(p.Matrix))
	for i := range names {
		if i < len(p.Alternatives) && p.Alternatives[i] != "" {
			names[i] = p.Alternatives[i]
			continue
		}
		names[i] = "A" + strconv.Itoa(i+1)
	}
	return names
}

// Evaluation is the outcome of evaluating one Problem.
type Evaluation struct {
	ID         string        `json:"id"`
	Problem    string        `json:"problem"`
	Weights    []float64     `json:"weights"`
	Normalized [][]float64   `json:"normalized"`
	Preference []float64     `json:"preference"`
	Ranks      []int         `json:"ranks"`
	Ranking    []types.Entry `json:"ranking"`
}

// Best returns the top ranked entry, or false when the ranking is empty.
func (e Evaluation) Best() (types.Entry, bool) {
	if len(e.Ranking) == 0 {
		return types.Entry{}, false
	}
	return e.Ranking[0], true
}
