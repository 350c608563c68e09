package saw

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Aggregate computes one preference score per row as the weighted sum of the
// row's normalized values. Weights are used exactly as given.
func Aggregate(norm [][]float64, weights []float64) ([]float64, error) {
	m, err := toDense(norm, 1)
	if err != nil {
		return nil, err
	}
	_, cols := m.Dims()
	if err := checkWeightCount(weights, cols); err != nil {
		return nil, err
	}
	w, err := prepareWeights(weights, false)
	if err != nil {
		return nil, err
	}
	return aggregate(m, w)
}

// aggregate fails with a KindShape error naming the row when a weighted sum
// overflows or meets an infinite cell.
func aggregate(norm mat.Matrix, weights []float64) ([]float64, error) {
	rows, _ := norm.Dims()
	var pref mat.VecDense
	pref.MulVec(norm, mat.NewVecDense(len(weights), weights))
	out := make([]float64, rows)
	for i := range rows {
		v := pref.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newError(KindShape, "preference is not finite").at(i, -1).with(formatFloat(v))
		}
		out[i] = v
	}
	return out, nil
}
