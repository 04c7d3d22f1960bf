// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"

	"github.com/taufulou/bazi-app-sub000/symbols"
)

// ErrIncompleteChart indicates a missing pillar role or required derived fact.
var ErrIncompleteChart = errors.New("chart: incomplete chart")

// ErrInvalidSymbol is symbols.ErrInvalidSymbol, re-exported for callers that
// only import this package.
var ErrInvalidSymbol = symbols.ErrInvalidSymbol

// FieldError localizes a validation failure to one chart and one field.
// It unwraps to ErrIncompleteChart or ErrInvalidSymbol.
type FieldError struct {
	Chart string // chart name, may be empty
	Field string // dotted field path, e.g. "pillars.day.stem"
	Err   error
}

func (e *FieldError) Error() string {
	if e.Chart == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("chart %q: %s: %v", e.Chart, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(chart, field string, sentinel error, format string, args ...any) error {
	return &FieldError{
		Chart: chart,
		Field: field,
		Err:   fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}
