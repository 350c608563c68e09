package saw

import (
	"fmt"
	"reflect"
)

// CoerceMatrix converts loosely typed input, as produced by YAML or JSON
// decoders, into a decision matrix. v must be a slice of slices whose
// elements are Go numbers; anything else yields a KindType error. Shape rules
// are left to NewProblem.
func CoerceMatrix(v any) ([][]float64, error) {
	outer, ok := sliceValue(v)
	if !ok {
		return nil, newError(KindType, "matrix must be a list of rows").with(typeName(v))
	}
	out := make([][]float64, outer.Len())
	for i := range outer.Len() {
		row, ok := sliceValue(outer.Index(i).Interface())
		if !ok {
			return nil, newError(KindType, "row must be a list of numbers").at(i, -1).with(typeName(outer.Index(i).Interface()))
		}
		out[i] = make([]float64, row.Len())
		for j := range row.Len() {
			f, ok := toFloat(row.Index(j))
			if !ok {
				return nil, newError(KindType, "value must be a number").at(i, j).with(fmt.Sprint(row.Index(j).Interface()))
			}
			out[i][j] = f
		}
	}
	return out, nil
}

// CoerceWeights converts a loosely typed list of numbers into weights.
func CoerceWeights(v any) ([]float64, error) {
	list, ok := sliceValue(v)
	if !ok {
		return nil, newError(KindType, "weights must be a list of numbers").with(typeName(v))
	}
	out := make([]float64, list.Len())
	for j := range list.Len() {
		f, ok := toFloat(list.Index(j))
		if !ok {
			return nil, newError(KindType, "weight must be a number").at(-1, j).with(fmt.Sprint(list.Index(j).Interface()))
		}
		out[j] = f
	}
	return out, nil
}

// CoerceCriteria converts a loosely typed list of strings into criteria names.
// Vocabulary is checked later by NewProblem.
func CoerceCriteria(v any) ([]string, error) {
	list, ok := sliceValue(v)
	if !ok {
		return nil, newError(KindType, "criteria must be a list of strings").with(typeName(v))
	}
	out := make([]string, list.Len())
	for j := range list.Len() {
		s, ok := list.Index(j).Interface().(string)
		if !ok {
			return nil, newError(KindType, "criterion must be a string").at(-1, j).with(fmt.Sprint(list.Index(j).Interface()))
		}
		out[j] = s
	}
	return out, nil
}

// CoerceNumber converts a single Go number to float64.
func CoerceNumber(v any) (float64, error) {
	if v == nil {
		return 0, newError(KindType, "value must be a number").with("<nil>")
	}
	f, ok := toFloat(reflect.ValueOf(v))
	if !ok {
		return 0, newError(KindType, "value must be a number").with(fmt.Sprint(v))
	}
	return f, nil
}

func sliceValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

func toFloat(rv reflect.Value) (float64, bool) {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
