// Package saw implements the Simple Additive Weighting decision method.
//
// A decision matrix scores alternatives (rows) against criteria (columns).
// Each column is normalized according to its type, benefit or cost, the
// normalized rows are combined with criterion weights into preference scores,
// and the scores are turned into ranks, 1 being the best alternative.
//
// All functions are pure: inputs are never modified or retained and every
// call returns freshly allocated results, so they may be called concurrently.
package saw

// Engine evaluates decision problems under a fixed set of options. The zero
// value is not usable; build one with New.
type Engine struct {
	normalizeWeights bool
}

// New returns an Engine. Weights are rescaled to sum to 1 unless
// WithNormalizeWeights(false) is given.
func New(opts ...Option) *Engine {
	e := &Engine{
		normalizeWeights: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NormalizesWeights reports whether the engine rescales weights.
func (e *Engine) NormalizesWeights() bool { return e.normalizeWeights }

// NewProblem validates the inputs under the engine's options.
func (e *Engine) NewProblem(matrix [][]float64, criteria []string, weights []float64) (*Problem, error) {
	m, err := toDense(matrix, minAlternatives)
	if err != nil {
		return nil, err
	}
	_, cols := m.Dims()
	if len(criteria) != cols {
		return nil, newError(KindCardinality, countMismatch("criteria", len(criteria), cols))
	}
	if err := checkWeightCount(weights, cols); err != nil {
		return nil, err
	}
	types, err := parseCriteria(criteria, cols)
	if err != nil {
		return nil, err
	}
	w, err := prepareWeights(weights, e.normalizeWeights)
	if err != nil {
		return nil, err
	}
	norm, err := normalize(m, types)
	if err != nil {
		return nil, err
	}
	pref, err := aggregate(norm, w)
	if err != nil {
		return nil, err
	}
	return &Problem{matrix: m, criteria: types, weights: w, normalized: norm, preference: pref}, nil
}

// Evaluate validates the inputs and returns the normalization matrix,
// preference scores and ranks.
func (e *Engine) Evaluate(matrix [][]float64, criteria []string, weights []float64) (Result, error) {
	p, err := e.NewProblem(matrix, criteria, weights)
	if err != nil {
		return Result{}, err
	}
	return p.Evaluate(), nil
}

// Normalize is the free function Normalize.
func (e *Engine) Normalize(matrix [][]float64, criteria []string) ([][]float64, error) {
	return Normalize(matrix, criteria)
}

// Aggregate is the free function Aggregate. Weights are used as given,
// regardless of the engine's rescaling option.
func (e *Engine) Aggregate(norm [][]float64, weights []float64) ([]float64, error) {
	return Aggregate(norm, weights)
}

// Rank is the free function Rank.
func (e *Engine) Rank(preference []float64) []int {
	return Rank(preference)
}

// Evaluate runs the full pipeline with a one-off engine built from opts.
func Evaluate(matrix [][]float64, criteria []string, weights []float64, opts ...Option) (Result, error) {
	return New(opts...).Evaluate(matrix, criteria, weights)
}
