package utility

import (
	"fmt"
	"math"
	"strings"
)

// Function is a compiled utility function of two goods. It implements
// economy.Utility. The zero value is not usable; obtain one from Parse.
type Function struct {
	src  string
	tree node
	eval evalFn
	vars [2]string
}

// Parse compiles expr into a Function.
//
// Stages:
//  1. Validate options (variable names).
//  2. Lex and parse into a tree; unknown identifiers and arity errors are
//     reported here with the byte offset of the offending token.
//  3. Compile the tree into closures.
//  4. Probe: evaluate once at the probe point; NaN or ±Inf is rejected.
//
// Errors: always a *SyntaxError wrapping ErrInvalidExpression.
//
// Complexity: O(len(expr)) to parse; evaluation is O(tree size).
func Parse(expr string, opts ...Option) (*Function, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateVariables(expr, o.varX, o.varY); err != nil {
		return nil, err
	}

	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{src: expr, toks: toks, vars: [2]string{o.varX, o.varY}}
	tree, err := p.parse()
	if err != nil {
		return nil, err
	}

	f := &Function{
		src:  strings.TrimSpace(expr),
		tree: tree,
		eval: tree.compile(),
		vars: p.vars,
	}
	if v := f.eval(o.probeX, o.probeY); math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &SyntaxError{
			Expr:   expr,
			Offset: -1,
			Msg:    fmt.Sprintf("evaluates to %v at probe point (%g, %g)", v, o.probeX, o.probeY),
		}
	}

	return f, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures with literal expressions.
func MustParse(expr string, opts ...Option) *Function {
	f, err := Parse(expr, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

func validateVariables(expr, x, y string) error {
	for _, name := range [...]string{x, y} {
		bad := name == "" || !isIdentStart(name[0])
		for i := 1; !bad && i < len(name); i++ {
			bad = !isIdentPart(name[i])
		}
		if bad {
			return &SyntaxError{Expr: expr, Offset: -1, Msg: fmt.Sprintf("variable name %q is not an identifier", name)}
		}
		if _, ok := constants[name]; ok {
			return &SyntaxError{Expr: expr, Offset: -1, Msg: fmt.Sprintf("variable name %q shadows a constant", name)}
		}
		if _, ok := builtins[name]; ok {
			return &SyntaxError{Expr: expr, Offset: -1, Msg: fmt.Sprintf("variable name %q shadows a function", name)}
		}
	}
	if x == y {
		return &SyntaxError{Expr: expr, Offset: -1, Msg: fmt.Sprintf("variable names must differ, both are %q", x)}
	}

	return nil
}

// Eval returns the utility of bundle (x, y).
func (f *Function) Eval(x, y float64) float64 { return f.eval(x, y) }

// EvalSlice evaluates f elementwise: dst[i] = f(xs[i], ys[i]).
// If dst is nil a new slice is allocated. It panics if the lengths of xs,
// ys and a non-nil dst differ.
//
// Complexity: O(n) evaluations, no allocations when dst is provided.
func (f *Function) EvalSlice(dst, xs, ys []float64) []float64 {
	if len(xs) != len(ys) {
		panic("utility: EvalSlice: len(xs) != len(ys)")
	}
	if dst == nil {
		dst = make([]float64, len(xs))
	} else if len(dst) != len(xs) {
		panic("utility: EvalSlice: len(dst) != len(xs)")
	}
	for i := range xs {
		dst[i] = f.eval(xs[i], ys[i])
	}

	return dst
}

// Grid evaluates f on the tensor grid xs × ys. The result is row-major by y:
// z[i][j] = f(xs[j], ys[i]), the layout surface plots expect.
//
// Each row is one EvalSlice call.
//
// Complexity: O(len(xs)·len(ys)).
func (f *Function) Grid(xs, ys []float64) [][]float64 {
	z := make([][]float64, len(ys))
	row := make([]float64, len(xs))
	for i, y := range ys {
		for j := range row {
			row[j] = y
		}
		z[i] = f.EvalSlice(nil, xs, row)
	}

	return z
}

// String returns the trimmed source text.
func (f *Function) String() string { return f.src }

// Tree returns a fully parenthesised rendering of the parsed expression,
// handy for checking precedence.
func (f *Function) Tree() string { return f.tree.String() }

// Variables returns the names bound to the first and second good.
func (f *Function) Variables() (x, y string) { return f.vars[0], f.vars[1] }
