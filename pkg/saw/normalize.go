package saw

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalize returns the normalization matrix of matrix under the given
// criteria types. The matrix must be rectangular, non-empty and finite, and
// criteria must hold one "benefit" or "cost" entry per column.
func Normalize(matrix [][]float64, criteria []string) ([][]float64, error) {
	m, err := toDense(matrix, 1)
	if err != nil {
		return nil, err
	}
	_, cols := m.Dims()
	types, err := parseCriteria(criteria, cols)
	if err != nil {
		return nil, err
	}
	norm, err := normalize(m, types)
	if err != nil {
		return nil, err
	}
	return fromDense(norm), nil
}

// normalize scales every column of m into [0, 1] according to its type.
//
// Benefit: x / max. A column whose max is 0 becomes all zeros.
// Cost: min / x. A zero cell scores 1 when 0 is the column minimum and 0
// otherwise, so no cell is ever divided by zero.
//
// Extreme magnitudes can still overflow, e.g. a large negative value over a
// tiny positive max; such a cell is reported as a KindShape error.
func normalize(m *mat.Dense, types []CriteriaType) (*mat.Dense, error) {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)

	for j := range cols {
		mat.Col(col, j, m)
		switch types[j] {
		case Benefit:
			normalizeBenefit(col)
		case Cost:
			normalizeCost(col)
		default:
			return nil, invalidCriteria(j, types[j].String())
		}
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, newError(KindShape, "normalized value is not finite").at(i, j).with(formatFloat(m.At(i, j)))
			}
		}
		out.SetCol(j, col)
	}
	return out, nil
}

func normalizeBenefit(col []float64) {
	hi := floats.Max(col)
	if hi == 0 {
		clear(col)
		return
	}
	for i, v := range col {
		col[i] = v / hi
	}
}

func normalizeCost(col []float64) {
	lo := floats.Min(col)
	for i, v := range col {
		switch {
		case v != 0:
			col[i] = lo / v
		case lo == 0:
			col[i] = 1
		default:
			col[i] = 0
		}
	}
}
