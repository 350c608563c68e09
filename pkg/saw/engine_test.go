package saw_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/saw/pkg/saw"
	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-9

func referenceMatrix() [][]float64 {
	return [][]float64{
		{8, 7, 6, 9},
		{6, 8, 7, 5},
		{7, 6, 8, 7},
		{9, 5, 7, 8},
	}
}

var (
	referenceCriteria = []string{"benefit", "cost", "benefit", "benefit"}
	equalWeights      = []float64{0.25, 0.25, 0.25, 0.25}
)

func TestEvaluate_ReferenceScenario(t *testing.T) {
	Convey("Given the four-alternative reference problem", t, func() {
		result, err := saw.Evaluate(referenceMatrix(), referenceCriteria, equalWeights)
		So(err, ShouldBeNil)

		Convey("Then the first normalization row uses column max and min", func() {
			want := []float64{8.0 / 9, 5.0 / 7, 6.0 / 8, 1}
			So(result.Normalized, ShouldHaveLength, 4)
			for j, v := range want {
				So(result.Normalized[0][j], ShouldAlmostEqual, v, tolerance)
			}
		})

		Convey("Then every normalization row matches the hand computation", func() {
			want := [][]float64{
				{8.0 / 9, 5.0 / 7, 6.0 / 8, 9.0 / 9},
				{6.0 / 9, 5.0 / 8, 7.0 / 8, 5.0 / 9},
				{7.0 / 9, 5.0 / 6, 8.0 / 8, 7.0 / 9},
				{9.0 / 9, 5.0 / 5, 7.0 / 8, 8.0 / 9},
			}
			for i := range want {
				for j := range want[i] {
					So(result.Normalized[i][j], ShouldAlmostEqual, want[i][j], tolerance)
				}
			}
		})

		Convey("Then preferences are the mean of each normalized row", func() {
			want := []float64{
				(8.0/9 + 5.0/7 + 6.0/8 + 1) / 4,
				(6.0/9 + 5.0/8 + 7.0/8 + 5.0/9) / 4,
				(7.0/9 + 5.0/6 + 1 + 7.0/9) / 4,
				(1 + 1 + 7.0/8 + 8.0/9) / 4,
			}
			So(result.Preference, ShouldHaveLength, 4)
			for i, v := range want {
				So(result.Preference[i], ShouldAlmostEqual, v, tolerance)
			}
			So(result.Preference[0], ShouldAlmostEqual, 0.8382936507936508, tolerance)
			So(result.Preference[3], ShouldAlmostEqual, 0.9409722222222222, tolerance)
		})

		Convey("Then the fourth alternative ranks first", func() {
			So(result.Ranks, ShouldResemble, []int{3, 4, 2, 1})
			So(result.Best(), ShouldEqual, 3)
			So(result.Order(), ShouldResemble, []int{3, 2, 0, 1})
		})
	})
}

func TestEvaluate_Properties(t *testing.T) {
	Convey("Given a valid decision problem", t, func() {
		matrix := [][]float64{
			{250, 16, 12, 5},
			{200, 16, 8, 3},
			{300, 32, 16, 4},
			{275, 32, 8, 4},
			{225, 16, 16, 2},
		}
		criteria := []string{"cost", "benefit", "benefit", "Benefit"}
		weights := []float64{0.35, 0.3, 0.2, 0.15}

		Convey("When evaluating twice", func() {
			first, err1 := saw.Evaluate(matrix, criteria, weights)
			second, err2 := saw.Evaluate(matrix, criteria, weights)

			Convey("Then outputs are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})

		Convey("When evaluating", func() {
			result, err := saw.Evaluate(matrix, criteria, weights)
			So(err, ShouldBeNil)

			Convey("Then ranks are a permutation of 1..N", func() {
				seen := make(map[int]bool)
				for _, r := range result.Ranks {
					So(r, ShouldBeBetweenOrEqual, 1, len(matrix))
					So(seen[r], ShouldBeFalse)
					seen[r] = true
				}
				So(seen, ShouldHaveLength, len(matrix))
			})

			Convey("Then preferences lie in [0, 1]", func() {
				for _, p := range result.Preference {
					So(p, ShouldBeBetweenOrEqual, 0, 1)
				}
			})

			Convey("Then the inputs are untouched", func() {
				So(matrix[0], ShouldResemble, []float64{250, 16, 12, 5})
				So(weights, ShouldResemble, []float64{0.35, 0.3, 0.2, 0.15})
				So(criteria[3], ShouldEqual, "Benefit")
			})
		})

		Convey("When the weights are scaled by a positive constant", func() {
			base, err := saw.Evaluate(matrix, criteria, []float64{1, 2, 3, 4})
			So(err, ShouldBeNil)
			scaled, err := saw.Evaluate(matrix, criteria, []float64{2.5, 5, 7.5, 10})
			So(err, ShouldBeNil)

			Convey("Then preferences and ranks do not change", func() {
				for i := range base.Preference {
					So(scaled.Preference[i], ShouldAlmostEqual, base.Preference[i], tolerance)
				}
				So(scaled.Ranks, ShouldResemble, base.Ranks)
			})
		})

		Convey("When weight rescaling is disabled", func() {
			result, err := saw.Evaluate(matrix, criteria, []float64{2, 2, 2, 2}, saw.WithNormalizeWeights(false))
			So(err, ShouldBeNil)
			rescaled, err := saw.Evaluate(matrix, criteria, []float64{2, 2, 2, 2})
			So(err, ShouldBeNil)

			Convey("Then preferences use the raw weights", func() {
				for i := range result.Preference {
					So(result.Preference[i], ShouldAlmostEqual, rescaled.Preference[i]*8, tolerance)
				}
				So(result.Ranks, ShouldResemble, rescaled.Ranks)
			})
		})
	})
}

func TestEvaluate_Dominance(t *testing.T) {
	Convey("Given all-benefit criteria with equal weights", t, func() {
		matrix := [][]float64{
			{3, 4, 5},
			{9, 9, 9},
			{1, 8, 2},
		}

		Convey("When one row is highest in every column", func() {
			result, err := saw.Evaluate(matrix, []string{"benefit", "benefit", "benefit"}, []float64{1, 1, 1})

			Convey("Then it ranks first", func() {
				So(err, ShouldBeNil)
				So(result.Ranks[1], ShouldEqual, 1)
				So(result.Preference[1], ShouldAlmostEqual, 1, tolerance)
			})
		})
	})
}

func TestEvaluate_Ties(t *testing.T) {
	Convey("Given identical alternatives", t, func() {
		matrix := [][]float64{
			{5, 5},
			{7, 3},
			{5, 5},
			{5, 5},
		}

		Convey("When evaluating", func() {
			result, err := saw.Evaluate(matrix, []string{"benefit", "benefit"}, []float64{1, 1})

			Convey("Then tied rows are ranked by row index", func() {
				So(err, ShouldBeNil)
				So(result.Preference[0], ShouldEqual, result.Preference[2])
				So(result.Preference[2], ShouldEqual, result.Preference[3])
				So(result.Ranks[0], ShouldBeLessThan, result.Ranks[2])
				So(result.Ranks[2], ShouldBeLessThan, result.Ranks[3])
			})
		})
	})
}

func TestEvaluate_Validation(t *testing.T) {
	Convey("Given invalid inputs", t, func() {
		matrix := referenceMatrix()

		Convey("When there are three weights for four columns", func() {
			result, err := saw.Evaluate(matrix, referenceCriteria, []float64{0.3, 0.3, 0.4})

			Convey("Then a cardinality error is returned with no partial output", func() {
				So(errors.Is(err, saw.ErrCardinality), ShouldBeTrue)
				So(saw.KindOf(err), ShouldEqual, saw.KindCardinality)
				So(result, ShouldResemble, saw.Result{})
			})
		})

		Convey("When there are fewer criteria than columns", func() {
			_, err := saw.Evaluate(matrix, []string{"benefit"}, equalWeights)
			So(errors.Is(err, saw.ErrCardinality), ShouldBeTrue)
		})

		Convey("When the matrix has a single row", func() {
			_, err := saw.Evaluate([][]float64{{1, 2}}, []string{"benefit", "cost"}, []float64{1, 1})
			So(errors.Is(err, saw.ErrShape), ShouldBeTrue)
		})

		Convey("When the matrix is nil", func() {
			_, err := saw.Evaluate(nil, nil, nil)
			So(errors.Is(err, saw.ErrShape), ShouldBeTrue)
		})

		Convey("When the matrix has no columns", func() {
			_, err := saw.Evaluate([][]float64{{}, {}}, nil, nil)
			So(errors.Is(err, saw.ErrShape), ShouldBeTrue)
		})

		Convey("When a row is ragged", func() {
			_, err := saw.Evaluate([][]float64{{1, 2}, {3}}, []string{"benefit", "cost"}, []float64{1, 1})

			Convey("Then a shape error names the row", func() {
				var sawErr *saw.Error
				So(errors.As(err, &sawErr), ShouldBeTrue)
				So(sawErr.Kind, ShouldEqual, saw.KindShape)
				So(sawErr.Row, ShouldEqual, 1)
			})
		})

		Convey("When a criterion is unknown", func() {
			_, err := saw.Evaluate(matrix, []string{"benefit", "cost", "gain", "benefit"}, equalWeights)

			Convey("Then the error names the column and value", func() {
				var sawErr *saw.Error
				So(errors.As(err, &sawErr), ShouldBeTrue)
				So(sawErr.Kind, ShouldEqual, saw.KindInvalidCriteria)
				So(sawErr.Column, ShouldEqual, 2)
				So(sawErr.Value, ShouldEqual, "gain")
				So(err.Error(), ShouldContainSubstring, "column 2")
			})
		})

		Convey("When a weight is negative", func() {
			_, err := saw.Evaluate(matrix, referenceCriteria, []float64{0.5, -0.1, 0.3, 0.3})

			Convey("Then an invalid weight error names the column", func() {
				var sawErr *saw.Error
				So(errors.As(err, &sawErr), ShouldBeTrue)
				So(sawErr.Kind, ShouldEqual, saw.KindInvalidWeight)
				So(sawErr.Column, ShouldEqual, 1)
			})
		})

		Convey("When all weights are zero and rescaling is on", func() {
			_, err := saw.Evaluate(matrix, referenceCriteria, []float64{0, 0, 0, 0})
			So(errors.Is(err, saw.ErrInvalidWeight), ShouldBeTrue)
		})

		Convey("When all weights are zero and rescaling is off", func() {
			result, err := saw.Evaluate(matrix, referenceCriteria, []float64{0, 0, 0, 0}, saw.WithNormalizeWeights(false))

			Convey("Then every preference is zero and ranks follow row order", func() {
				So(err, ShouldBeNil)
				So(result.Preference, ShouldResemble, []float64{0, 0, 0, 0})
				So(result.Ranks, ShouldResemble, []int{1, 2, 3, 4})
			})
		})

		Convey("When finite values overflow during normalization", func() {
			p, err := saw.NewProblem([][]float64{{-1e308, 1}, {1e-308, 2}}, []string{"benefit", "benefit"}, []float64{0, 1})

			Convey("Then the problem is rejected before any NaN preference exists", func() {
				So(errors.Is(err, saw.ErrShape), ShouldBeTrue)
				So(p, ShouldBeNil)
				So(err.Error(), ShouldContainSubstring, "(row 0, column 0)")
			})
		})

		Convey("When all weights overflow when summed", func() {
			_, err := saw.Evaluate(matrix, referenceCriteria, []float64{math.MaxFloat64, math.MaxFloat64, 0, 0})

			Convey("Then an invalid weight error is returned", func() {
				So(errors.Is(err, saw.ErrInvalidWeight), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "overflow")
			})
		})

		Convey("When a criterion is unknown and a weight is negative", func() {
			_, err := saw.Evaluate(matrix, []string{"benefit", "cost", "gain", "benefit"}, []float64{-1, 1, 1, 1})

			Convey("Then the criteria error is reported first", func() {
				So(errors.Is(err, saw.ErrInvalidCriteria), ShouldBeTrue)
			})
		})
	})
}

func TestEngine(t *testing.T) {
	Convey("Given an engine", t, func() {
		Convey("When built with defaults", func() {
			e := saw.New()

			Convey("Then weights are rescaled", func() {
				So(e.NormalizesWeights(), ShouldBeTrue)
				p, err := e.NewProblem(referenceMatrix(), referenceCriteria, []float64{1, 1, 2, 4})
				So(err, ShouldBeNil)
				So(p.Weights(), ShouldResemble, []float64{0.125, 0.125, 0.25, 0.5})
			})
		})

		Convey("When composing the stages by hand", func() {
			e := saw.New()
			norm, err := e.Normalize(referenceMatrix(), referenceCriteria)
			So(err, ShouldBeNil)
			pref, err := e.Aggregate(norm, equalWeights)
			So(err, ShouldBeNil)
			ranks := e.Rank(pref)

			Convey("Then the result matches Evaluate", func() {
				result, err := e.Evaluate(referenceMatrix(), referenceCriteria, equalWeights)
				So(err, ShouldBeNil)
				So(norm, ShouldResemble, result.Normalized)
				So(ranks, ShouldResemble, result.Ranks)
				for i := range pref {
					So(pref[i], ShouldAlmostEqual, result.Preference[i], tolerance)
				}
			})
		})

		Convey("When re-weighting an existing normalization", func() {
			norm, err := saw.Normalize(referenceMatrix(), referenceCriteria)
			So(err, ShouldBeNil)
			pref, err := saw.Aggregate(norm, []float64{0, 1, 0, 0})
			So(err, ShouldBeNil)

			Convey("Then only the chosen column matters", func() {
				So(saw.Rank(pref), ShouldResemble, []int{3, 4, 2, 1})
				So(pref[3], ShouldEqual, 1)
			})
		})
	})
}

func TestProblem(t *testing.T) {
	Convey("Given a validated problem", t, func() {
		matrix := referenceMatrix()
		p, err := saw.NewProblem(matrix, []string{" BENEFIT", "Cost ", "benefit", "benefit"}, equalWeights)
		So(err, ShouldBeNil)

		Convey("Then its accessors describe the inputs", func() {
			So(p.Alternatives(), ShouldEqual, 4)
			So(p.Criteria(), ShouldResemble, []saw.CriteriaType{saw.Benefit, saw.Cost, saw.Benefit, saw.Benefit})
			So(p.Matrix(), ShouldResemble, referenceMatrix())
		})

		Convey("When the caller mutates the original matrix", func() {
			matrix[0][0] = 1000

			Convey("Then the problem is unaffected", func() {
				So(p.Matrix()[0][0], ShouldEqual, 8)
				So(p.Evaluate().Ranks, ShouldResemble, []int{3, 4, 2, 1})
			})
		})

		Convey("When the caller mutates returned slices", func() {
			w := p.Weights()
			w[0] = 42
			first := p.Evaluate()
			first.Ranks[0] = 99

			Convey("Then later evaluations are unaffected", func() {
				So(p.Weights()[0], ShouldEqual, 0.25)
				So(p.Evaluate().Ranks, ShouldResemble, []int{3, 4, 2, 1})
			})
		})

		Convey("When evaluated concurrently", func() {
			const n = 8
			results := make(chan saw.Result, n)
			for range n {
				go func() { results <- p.Evaluate() }()
			}

			Convey("Then all results agree", func() {
				want := p.Evaluate()
				for range n {
					So(<-results, ShouldResemble, want)
				}
			})
		})
	})
}
