// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     sample
// Description: DataProcessor answers average and maximum queries over an
//              ordered numeric sequence fixed at construction.
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package sample

import (
	"reflect"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/foundation/utils/mathx"
)

// DataProcessor holds a read-only numeric sequence. Elements are kept as
// given; nothing is rounded through float64.
type DataProcessor struct {
	data []mathx.Value
}

// NewDataProcessor validates values and returns a processor over them.
// values must be a slice or array whose elements are all integers or
// floats; element order is preserved.
func NewDataProcessor(values any) (*DataProcessor, error) {
	if values == nil {
		return nil, typeError("new_data_processor", "values", "sequence", values)
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, typeError("new_data_processor", "values", "sequence", values)
	}

	data := make([]mathx.Value, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, ok := mathx.ValueOfReflect(rv.Index(i))
		if !ok {
			elem := rv.Index(i).Interface()
			return nil, tkerror.Newf("new_data_processor: element %d must be a number, got %s", i, mathx.TypeName(elem)).
				WithCode(tkerror.CodeTypeMismatch).
				WithOperation("new_data_processor").
				WithDetail("index", i).
				WithDetail("expected", "number").
				WithDetail("actual", mathx.TypeName(elem))
		}
		data[i] = v
	}

	return &DataProcessor{data: data}, nil
}

// NewDataProcessorOf returns a processor over values. A nil slice is empty.
func NewDataProcessorOf[T mathx.Number](values []T) *DataProcessor {
	return &DataProcessor{data: mathx.ValuesOf(values)}
}

// Data returns a copy of the sequence holding the original elements
func (p *DataProcessor) Data() []any {
	out := make([]any, len(p.data))
	for i, v := range p.data {
		out[i] = v.Interface()
	}
	return out
}

// Len returns the number of values
func (p *DataProcessor) Len() int {
	return len(p.data)
}

// CalculateAverage returns the arithmetic mean, or 0 for an empty sequence.
func (p *DataProcessor) CalculateAverage() float64 {
	mean, ok := mathx.Mean(p.data)
	if !ok {
		return 0
	}
	return mean
}

// FindMax returns the largest element as it was given. An empty sequence
// has no maximum and yields an EMPTY_SEQUENCE error.
func (p *DataProcessor) FindMax() (any, error) {
	largest, err := p.FindMaxValue()
	if err != nil {
		return nil, err
	}
	return largest.Interface(), nil
}

// FindMaxValue is FindMax returning the exact numeric value
func (p *DataProcessor) FindMaxValue() (mathx.Value, error) {
	largest, ok := mathx.Max(p.data)
	if !ok {
		return mathx.Value{}, tkerror.New("find_max: sequence is empty").
			WithCode(tkerror.CodeEmptySequence).
			WithOperation("find_max")
	}
	return largest, nil
}
