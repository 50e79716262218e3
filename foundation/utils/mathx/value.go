// File: value.go
// Title: Exact Numeric Values
// Description: Value holds a number of unknown static type without rounding
//              it through float64. Integers stay exact across comparison
//              and addition; the original element is kept for callers that
//              need it back unchanged.
// Version: v0.4.0
// Created: 2026-10-18
// Modified: 2026-10-18

package mathx

import (
	"cmp"
	"math"
	"strconv"
)

// Kind is the representation a Value is stored in
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
)

// Value is a signed integer, unsigned integer or float. The zero Value is
// invalid.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	orig interface{}
}

// Int returns the Value of a signed integer
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint returns the Value of an unsigned integer
func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

// Float returns the Value of a float
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind returns the representation of v
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a number
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Interface returns the element v was created from. Values built by Int,
// Uint, Float or Add return int64, uint64 or float64.
func (v Value) Interface() interface{} {
	if v.orig != nil {
		return v.orig
	}
	switch v.kind {
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	default:
		return nil
	}
}

// Float64 returns v as a float64, rounding integers beyond 2^53
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindUint:
		return float64(v.u)
	default:
		return v.f
	}
}

// String formats v without exponent; integers are printed exactly
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return "<invalid>"
	}
}

// Compare returns -1, 0 or +1 as v is less than, equal to or greater than
// w. Mixed kinds are compared exactly. NaN compares equal to everything so
// it never displaces or is displaced by a running maximum.
func (v Value) Compare(w Value) int {
	switch v.kind {
	case KindInt:
		switch w.kind {
		case KindInt:
			return cmp.Compare(v.i, w.i)
		case KindUint:
			return compareIntUint(v.i, w.u)
		case KindFloat:
			return compareIntFloat(v.i, w.f)
		}
	case KindUint:
		switch w.kind {
		case KindInt:
			return -compareIntUint(w.i, v.u)
		case KindUint:
			return cmp.Compare(v.u, w.u)
		case KindFloat:
			return compareUintFloat(v.u, w.f)
		}
	case KindFloat:
		switch w.kind {
		case KindInt:
			return -compareIntFloat(w.i, v.f)
		case KindUint:
			return -compareUintFloat(w.u, v.f)
		case KindFloat:
			if math.IsNaN(v.f) || math.IsNaN(w.f) {
				return 0
			}
			return cmp.Compare(v.f, w.f)
		}
	}
	return 0
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

// two63 and two64 are exactly representable as float64
const (
	two63 = 9223372036854775808.0
	two64 = 18446744073709551616.0
)

func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= two63:
		return -1
	case f < -two63:
		return 1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c
	}
	// same integer part, the fraction decides
	return cmp.Compare(t, f)
}

func compareUintFloat(u uint64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f < 0:
		return 1
	case f >= two64:
		return -1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(u, uint64(t)); c != 0 {
		return c
	}
	return cmp.Compare(t, f)
}

// Add returns a + b. Integer sums stay exact while they fit in int64 or
// uint64; an integer sum that fits neither, or any sum with a float
// operand, is computed in float64.
func Add(a, b Value) Value {
	if a.kind == KindFloat || b.kind == KindFloat {
		return Float(a.Float64() + b.Float64())
	}
	if a.kind == KindUint && b.kind == KindInt {
		a, b = b, a
	}

	switch {
	case a.kind == KindInt && b.kind == KindInt:
		s := a.i + b.i
		switch {
		case a.i >= 0 && b.i >= 0 && s < 0:
			// positive overflow always fits uint64
			return Uint(uint64(a.i) + uint64(b.i))
		case a.i < 0 && b.i < 0 && s >= 0:
			return Float(float64(a.i) + float64(b.i))
		}
		return Int(s)
	case a.kind == KindInt && b.kind == KindUint:
		if a.i >= 0 {
			return addUint(uint64(a.i), b.u)
		}
		if b.u <= math.MaxInt64 {
			return Int(a.i + int64(b.u))
		}
		// b.u >= 2^63 >= |a.i|, so the difference is non-negative
		return Uint(b.u - (uint64(^a.i) + 1))
	default:
		return addUint(a.u, b.u)
	}
}

func addUint(x, y uint64) Value {
	if s := x + y; s >= x {
		return Uint(s)
	}
	return Float(float64(x) + float64(y))
}
