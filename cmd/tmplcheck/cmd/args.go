package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
)

// errTrailingInput is returned when more follows the first JSON value
var errTrailingInput = errors.New("unexpected data after JSON value")

// decodeJSON reads exactly one JSON value from r. Numbers become int64,
// uint64 or float64, whichever holds them exactly, so large integers
// survive decoding.
func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingInput
	}
	return convertNumbers(v), nil
}

func convertNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		return parseNumber(string(x))
	case []any:
		for i := range x {
			x[i] = convertNumbers(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = convertNumbers(x[k])
		}
		return x
	default:
		return v
	}
}

func parseNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	// the decoder only hands over valid JSON numbers
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// parseLiteral reads a command line argument as a JSON literal so that
// numbers, booleans and quoted strings keep their type. Anything that is
// not a single valid JSON value is taken as a plain string.
func parseLiteral(arg string) any {
	v, err := decodeJSON(strings.NewReader(arg))
	if err != nil {
		return arg
	}
	return v
}

// invalidJSON wraps a decode failure for the given command
func invalidJSON(err error, operation string) error {
	return tkerror.Wrap(err, "input is not valid JSON").
		WithCode(tkerror.CodeInvalidInput).
		WithOperation(operation)
}

// formatNumber prints whole numbers without a fractional part
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
