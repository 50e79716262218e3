// Package mathx provides numeric helpers shared by the tmplkit libraries.
//
// Package: mathx
// Title: Numeric Type Checks and Aggregates
// Description: Number is the type constraint for every Go integer and
//              floating point kind, including named types built on them.
//              ValueOf answers the same question for values whose static
//              type is unknown (interface{} arguments, decoded JSON), which
//              is where runtime type guards are needed. It returns a Value
//              that keeps integers exact and remembers the original
//              element. Mean and Max are the aggregates the DataProcessor
//              builds on.
// Version: v0.4.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.4.0: Exact Value type; integers are no longer rounded through float64
// - 2026-10-18 v0.3.0: Replaced decimal/currency arithmetic with numeric guards and aggregates
//
// Booleans are not numbers here, and neither are numeric strings: no
// implicit conversion is ever attempted.
package mathx
