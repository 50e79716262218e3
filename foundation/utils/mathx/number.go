// File: number.go
// Title: Numeric Type Constraint and Runtime Checks
// Description: Defines the Number constraint and the reflection based checks
//              that turn values of unknown static type into a Value.
// Version: v0.4.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.4.0: Checks return an exact Value instead of a float64

package mathx

import (
	"reflect"
)

// Number is satisfied by every integer and floating point type
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ValueOf converts v to a Value if it holds an integer or floating point
// value (named types included). It reports false for everything else,
// including bool, numeric strings and nil.
func ValueOf(v interface{}) (Value, bool) {
	switch n := v.(type) {
	case int:
		return Value{kind: KindInt, i: int64(n), orig: v}, true
	case int64:
		return Value{kind: KindInt, i: n, orig: v}, true
	case uint64:
		return Value{kind: KindUint, u: n, orig: v}, true
	case float64:
		return Value{kind: KindFloat, f: n, orig: v}, true
	case nil, bool, string:
		return Value{}, false
	}
	return ValueOfReflect(reflect.ValueOf(v))
}

// ValueOfReflect is ValueOf for a reflect.Value. Interface values are
// unwrapped first so that elements of []interface{} are checked by their
// dynamic type.
func ValueOfReflect(rv reflect.Value) (Value, bool) {
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || !rv.CanInterface() {
		return Value{}, false
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindInt, i: rv.Int(), orig: rv.Interface()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindUint, u: rv.Uint(), orig: rv.Interface()}, true
	case reflect.Float32, reflect.Float64:
		return Value{kind: KindFloat, f: rv.Float(), orig: rv.Interface()}, true
	default:
		return Value{}, false
	}
}

// TypeName describes the dynamic type of v for error messages
func TypeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
