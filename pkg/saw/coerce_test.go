package saw_test

import (
	"errors"
	"testing"

	"github.com/okian/saw/pkg/saw"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCoerce(t *testing.T) {
	Convey("Given decoded YAML values", t, func() {
		Convey("When the matrix mixes ints and floats", func() {
			m, err := saw.CoerceMatrix([]any{
				[]any{8, 7.5, int64(6)},
				[]any{uint8(1), float32(0.5), 3},
			})

			Convey("Then every value becomes float64", func() {
				So(err, ShouldBeNil)
				So(m, ShouldResemble, [][]float64{{8, 7.5, 6}, {1, 0.5, 3}})
			})
		})

		Convey("When the matrix is already typed", func() {
			m, err := saw.CoerceMatrix([][]int{{1, 2}, {3, 4}})
			So(err, ShouldBeNil)
			So(m, ShouldResemble, [][]float64{{1, 2}, {3, 4}})
		})

		Convey("When a cell is a string", func() {
			_, err := saw.CoerceMatrix([]any{[]any{1, "high"}})

			Convey("Then a type error names the cell", func() {
				var sawErr *saw.Error
				So(errors.As(err, &sawErr), ShouldBeTrue)
				So(sawErr.Kind, ShouldEqual, saw.KindType)
				So(sawErr.Row, ShouldEqual, 0)
				So(sawErr.Column, ShouldEqual, 1)
				So(sawErr.Value, ShouldEqual, "high")
			})
		})

		Convey("When a row is not a list", func() {
			_, err := saw.CoerceMatrix([]any{[]any{1, 2}, 3})
			So(errors.Is(err, saw.ErrType), ShouldBeTrue)
		})

		Convey("When the matrix is not a list", func() {
			_, err := saw.CoerceMatrix("1,2;3,4")
			So(errors.Is(err, saw.ErrType), ShouldBeTrue)
			_, err = saw.CoerceMatrix(nil)
			So(errors.Is(err, saw.ErrType), ShouldBeTrue)
		})

		Convey("When weights contain a bool", func() {
			_, err := saw.CoerceWeights([]any{0.5, true})
			So(saw.KindOf(err), ShouldEqual, saw.KindType)
		})

		Convey("When weights are numbers", func() {
			w, err := saw.CoerceWeights([]any{1, 0.5})
			So(err, ShouldBeNil)
			So(w, ShouldResemble, []float64{1, 0.5})
		})

		Convey("When criteria are strings", func() {
			c, err := saw.CoerceCriteria([]any{"benefit", "COST"})
			So(err, ShouldBeNil)
			So(c, ShouldResemble, []string{"benefit", "COST"})
		})

		Convey("When a criterion is a number", func() {
			_, err := saw.CoerceCriteria([]any{"benefit", 1})
			So(errors.Is(err, saw.ErrType), ShouldBeTrue)
		})

		Convey("When coercing single numbers", func() {
			f, err := saw.CoerceNumber(3)
			So(err, ShouldBeNil)
			So(f, ShouldEqual, 3)
			_, err = saw.CoerceNumber("3")
			So(errors.Is(err, saw.ErrType), ShouldBeTrue)
			_, err = saw.CoerceNumber(nil)
			So(errors.Is(err, saw.ErrType), ShouldBeTrue)
		})
	})
}
