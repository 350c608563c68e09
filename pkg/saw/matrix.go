package saw

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// minAlternatives is the smallest decision problem worth ranking.
const minAlternatives = 2

// toDense validates a row-major matrix and copies it into a gonum Dense.
// The input is never retained.
func toDense(matrix [][]float64, minRows int) (*mat.Dense, error) {
	rows := len(matrix)
	if rows < minRows {
		return nil, newError(KindShape, fmt.Sprintf("need at least %d rows, got %d", minRows, rows))
	}
	cols := len(matrix[0])
	if cols == 0 {
		return nil, newError(KindShape, "need at least 1 column, got 0")
	}

	data := make([]float64, 0, rows*cols)
	for i, row := range matrix {
		if len(row) != cols {
			return nil, newError(KindShape, fmt.Sprintf("ragged row: %d columns, want %d", len(row), cols)).at(i, -1)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, newError(KindShape, "value is not finite").at(i, j).with(formatFloat(v))
			}
		}
		data = append(data, row...)
	}
	return mat.NewDense(rows, cols, data), nil
}

// fromDense copies m out into fresh row slices.
func fromDense(m mat.Matrix) [][]float64 {
	rows, _ := m.Dims()
	out := make([][]float64, rows)
	for i := range rows {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

func countMismatch(what string, got, want int) string {
	return fmt.Sprintf("%d %s for %d columns", got, what, want)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
