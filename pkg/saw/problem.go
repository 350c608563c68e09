package saw

import (
	"gonum.org/v1/gonum/mat"
)

// Problem is a validated, immutable decision problem. The only way to build
// one is NewProblem, which also computes the normalization and preferences,
// so evaluating a Problem cannot fail. It is safe for concurrent use.
type Problem struct {
	matrix     *mat.Dense
	criteria   []CriteriaType
	weights    []float64
	normalized *mat.Dense
	preference []float64
}

// NewProblem validates the inputs and returns the decision problem they
// describe. Checks run in order: matrix shape, criteria and weight counts,
// criteria vocabulary, weight values, finiteness of the normalized cells and
// preferences. The first failure is returned as an
// *Error and nothing else is computed.
func NewProblem(matrix [][]float64, criteria []string, weights []float64, opts ...Option) (*Problem, error) {
	return New(opts...).NewProblem(matrix, criteria, weights)
}

// Alternatives returns the number of rows.
func (p *Problem) Alternatives() int {
	rows, _ := p.matrix.Dims()
	return rows
}

// Criteria returns a copy of the parsed criteria types.
func (p *Problem) Criteria() []CriteriaType {
	return append([]CriteriaType(nil), p.criteria...)
}

// Weights returns a copy of the weights as they will be applied, i.e. after
// optional rescaling.
func (p *Problem) Weights() []float64 {
	return append([]float64(nil), p.weights...)
}

// Matrix returns a copy of the decision matrix.
func (p *Problem) Matrix() [][]float64 {
	return fromDense(p.matrix)
}

// Evaluate returns the normalization matrix, preferences and ranks.
func (p *Problem) Evaluate() Result {
	pref := append([]float64(nil), p.preference...)
	return Result{
		Normalized: fromDense(p.normalized),
		Preference: pref,
		Ranks:      Rank(pref),
	}
}

// Result is the output of one evaluation. Its slices are owned by the caller.
type Result struct {
	// Normalized has the same shape as the decision matrix.
	Normalized [][]float64
	// Preference holds one score per alternative.
	Preference []float64
	// Ranks is a permutation of 1..N, 1 being the best alternative.
	Ranks []int
}

// Order returns row indices from best to worst.
func (r Result) Order() []int {
	order := make([]int, len(r.Ranks))
	for idx, rank := range r.Ranks {
		order[rank-1] = idx
	}
	return order
}

// Best returns the row index ranked 1, or -1 for an empty result.
func (r Result) Best() int {
	for idx, rank := range r.Ranks {
		if rank == 1 {
			return idx
		}
	}
	return -1
}
