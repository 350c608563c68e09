package saw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// checkWeightCount reports a CardinalityError when weights do not match cols.
func checkWeightCount(weights []float64, cols int) error {
	if len(weights) != cols {
		return newError(KindCardinality, countMismatch("weights", len(weights), cols))
	}
	return nil
}

// prepareWeights copies weights, rejects negative or non-finite entries and,
// when rescale is set, divides every weight by the total so they sum to 1.
func prepareWeights(weights []float64, rescale bool) ([]float64, error) {
	out := make([]float64, len(weights))
	for j, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, newError(KindInvalidWeight, "weight is not finite").at(-1, j).with(formatFloat(w))
		}
		if w < 0 {
			return nil, newError(KindInvalidWeight, "weight is negative").at(-1, j).with(formatFloat(w))
		}
		out[j] = w
	}
	if !rescale {
		return out, nil
	}

	sum := floats.Sum(out)
	if sum == 0 {
		return nil, newError(KindInvalidWeight, "weights sum to zero and cannot be rescaled")
	}
	if math.IsInf(sum, 0) {
		return nil, newError(KindInvalidWeight, "weights overflow when summed")
	}
	for j := range out {
		out[j] /= sum
	}
	return out, nil
}
