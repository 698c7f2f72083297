// File: weight.go
// Role: Interpretation of edge labels as numeric weights.
//
// A label is weighted when it implements Weighted or holds a Go numeric value
// (any int, uint or float kind, named numeric types included).
package core

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Bounds of the plain decimal weight rendering.
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// WeightOf interprets label as a weight.
//
// Weighted is consulted first, then the built-in numeric types, then named
// types whose underlying kind is numeric. The second result is false when the
// label carries no weight, including a nil label and a typed nil
// whose type implements Weighted.
//
// Complexity: O(1)
func WeightOf(label any) (float64, bool) {
	switch x := label.(type) {
	case nil:
		return 0, false
	case Weighted:
		if isNilRef(x) {
			return 0, false
		}
		return x.Weight(), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	}

	// Named numeric types (type Cost int) fall through the switch above.
	rv := reflect.ValueOf(label)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// isNilRef reports whether label is a typed nil (a nil *T, map, slice, func,
// chan or interface held in a non-nil interface value).
func isNilRef(label any) bool {
	rv := reflect.ValueOf(label)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// formatWeight renders w in the extended string form.
//
// Magnitudes in [1e-3, 1e7) and zero use plain decimal notation, with ".0"
// appended to integral values (1 → "1.0"). Other magnitudes use scientific
// notation with at least one fraction digit and an unpadded exponent
// (1e7 → "1.0E7", 1.5e-5 → "1.5E-5"). Digits are the shortest round-trip form.
func formatWeight(w float64) string {
	switch {
	case math.IsNaN(w):
		return "NaN"
	case math.IsInf(w, 1):
		return "Infinity"
	case math.IsInf(w, -1):
		return "-Infinity"
	}

	if abs := math.Abs(w); abs == 0 || (abs >= plainMin && abs < plainMax) {
		s := strconv.FormatFloat(w, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 'E' yields "1E+07" or "1.5E-05"
	mant, exp, _ := strings.Cut(strconv.FormatFloat(w, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)

	return mant + "E" + strconv.Itoa(n)
}

// formatKey renders a vertex key.
func formatKey[V any](v V) string {
	return fmt.Sprint(v)
}
