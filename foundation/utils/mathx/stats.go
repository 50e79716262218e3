// File: stats.go
// Title: Aggregates over Numeric Values
// Description: Mean and Max over slices of Value.
// Version: v0.4.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.4.0: Aggregates work on exact Values

package mathx

import (
	"math/big"
)

// Mean returns the arithmetic mean. Integer elements are summed exactly
// before the division. The second result is false for an empty slice, in
// which case the mean is 0.
func Mean(values []Value) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	ints := new(big.Int)
	var floats float64
	var tmp big.Int
	for _, v := range values {
		switch v.kind {
		case KindInt:
			ints.Add(ints, tmp.SetInt64(v.i))
		case KindUint:
			ints.Add(ints, tmp.SetUint64(v.u))
		default:
			floats += v.f
		}
	}

	total, _ := new(big.Float).SetInt(ints).Float64()
	return (total + floats) / float64(len(values)), true
}

// Max returns the largest value; of equal values the first wins. The
// second result is false for an empty slice.
func Max(values []Value) (Value, bool) {
	if len(values) == 0 {
		return Value{}, false
	}

	best := values[0]
	for _, v := range values[1:] {
		if v.Compare(best) > 0 {
			best = v
		}
	}
	return best, true
}

// ValuesOf converts a typed slice, preserving order and element types. A
// nil slice yields an empty, non-nil slice.
func ValuesOf[T Number](values []T) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		// every Number kind converts
		out[i], _ = ValueOf(v)
	}
	return out
}
