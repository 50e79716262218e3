// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     sample
// Description: Helper functions and the DataProcessor shipped with the
//              project template. Arguments of unknown static type are
//              checked at call time; the generic variants move that check
//              to the compiler.
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package sample

import (
	"fmt"
	"reflect"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/foundation/utils/mathx"
)

// Sentinel errors. errors.Is matches any error carrying the same code, so
// callers can test for the kind without caring about details.
var (
	ErrTypeMismatch  = tkerror.New("type mismatch").WithCode(tkerror.CodeTypeMismatch)
	ErrEmptySequence = tkerror.New("empty sequence").WithCode(tkerror.CodeEmptySequence)
)

// Add returns the sum of a and b. Both must hold an integer or floating
// point value; anything else, including numeric strings and booleans, is a
// TYPE_MISMATCH error. Integer sums are exact; see mathx.Add.
func Add(a, b any) (mathx.Value, error) {
	x, ok := mathx.ValueOf(a)
	if !ok {
		return mathx.Value{}, typeError("add", "a", "number", a)
	}
	y, ok := mathx.ValueOf(b)
	if !ok {
		return mathx.Value{}, typeError("add", "b", "number", b)
	}
	return mathx.Add(x, y), nil
}

// AddOf returns a + b
func AddOf[T mathx.Number](a, b T) T {
	return a + b
}

// Greet returns "Hello, <name>!". name must be a string.
func Greet(name any) (string, error) {
	if name != nil {
		if rv := reflect.ValueOf(name); rv.Kind() == reflect.String {
			return GreetOf(rv.String()), nil
		}
	}
	return "", typeError("greet", "name", "string", name)
}

// GreetOf is the statically typed form of Greet
func GreetOf(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

func typeError(operation, param, want string, got any) *tkerror.Error {
	return tkerror.Newf("%s: %s must be a %s, got %s", operation, param, want, mathx.TypeName(got)).
		WithCode(tkerror.CodeTypeMismatch).
		WithOperation(operation).
		WithDetail("parameter", param).
		WithDetail("expected", want).
		WithDetail("actual", mathx.TypeName(got))
}
