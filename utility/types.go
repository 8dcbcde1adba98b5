package utility

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is the sentinel behind every parse or probe failure.
// Match it with errors.Is; the concrete *SyntaxError carries the details.
var ErrInvalidExpression = errors.New("utility: invalid expression")

// SyntaxError describes why an expression was rejected.
type SyntaxError struct {
	Expr   string // original input
	Offset int    // byte offset of the offending token, -1 when not positional
	Msg    string // human-readable reason
}

// Error implements error.
func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("utility: invalid expression %q: %s", e.Expr, e.Msg)
	}

	return fmt.Sprintf("utility: invalid expression %q at offset %d: %s", e.Expr, e.Offset, e.Msg)
}

// Unwrap lets errors.Is match ErrInvalidExpression.
func (e *SyntaxError) Unwrap() error { return ErrInvalidExpression }

// Defaults.
const (
	DefaultVarX   = "x"
	DefaultVarY   = "y"
	DefaultProbeX = 1.0
	DefaultProbeY = 1.0
)

// Option configures Parse.
type Option func(*options)

type options struct {
	varX, varY     string
	probeX, probeY float64
}

func defaultOptions() options {
	return options{
		varX:   DefaultVarX,
		varY:   DefaultVarY,
		probeX: DefaultProbeX,
		probeY: DefaultProbeY,
	}
}

// WithVariables renames the two goods. Names must be distinct identifiers and
// must not shadow a constant or built-in; Parse reports a SyntaxError otherwise.
func WithVariables(x, y string) Option {
	return func(o *options) { o.varX, o.varY = x, y }
}

// WithProbe sets the point at which a freshly parsed expression is evaluated
// once to surface domain errors (NaN/±Inf) early. Pick a point inside the
// region you intend to evaluate, e.g. the centre of the Edgeworth box.
func WithProbe(x, y float64) Option {
	return func(o *options) { o.probeX, o.probeY = x, y }
}
