package utility

import (
	"math"
	"strconv"
	"strings"
)

// evalFn is the compiled form of a node.
type evalFn func(x, y float64) float64

// node is an expression tree element. Nodes are built once by the parser and
// compiled into closures; they are never mutated afterwards.
type node interface {
	compile() evalFn
	String() string
}

type numNode struct{ v float64 }

func (n numNode) compile() evalFn {
	v := n.v
	return func(float64, float64) float64 { return v }
}

func (n numNode) String() string { return strconv.FormatFloat(n.v, 'g', -1, 64) }

// varNode reads the first (index 0) or second (index 1) good.
type varNode struct {
	index int
	name  string
}

func (n varNode) compile() evalFn {
	if n.index == 0 {
		return func(x, _ float64) float64 { return x }
	}

	return func(_, y float64) float64 { return y }
}

func (n varNode) String() string { return n.name }

type negNode struct{ arg node }

func (n negNode) compile() evalFn {
	a := n.arg.compile()
	return func(x, y float64) float64 { return -a(x, y) }
}

func (n negNode) String() string { return "(-" + n.arg.String() + ")" }

type binaryNode struct {
	op   tokenKind
	l, r node
}

func (n binaryNode) compile() evalFn {
	l, r := n.l.compile(), n.r.compile()
	switch n.op {
	case tokPlus:
		return func(x, y float64) float64 { return l(x, y) + r(x, y) }
	case tokMinus:
		return func(x, y float64) float64 { return l(x, y) - r(x, y) }
	case tokStar:
		return func(x, y float64) float64 { return l(x, y) * r(x, y) }
	case tokSlash:
		return func(x, y float64) float64 { return l(x, y) / r(x, y) }
	default: // tokPow
		return func(x, y float64) float64 { return math.Pow(l(x, y), r(x, y)) }
	}
}

var binarySymbols = map[tokenKind]string{
	tokPlus: " + ", tokMinus: " - ", tokStar: "*", tokSlash: "/", tokPow: "**",
}

func (n binaryNode) String() string {
	return "(" + n.l.String() + binarySymbols[n.op] + n.r.String() + ")"
}

type callNode struct {
	name string
	fn   builtin
	args []node
}

func (n callNode) compile() evalFn {
	if n.fn.unary != nil {
		a, f := n.args[0].compile(), n.fn.unary
		return func(x, y float64) float64 { return f(a(x, y)) }
	}
	if n.fn.binary != nil {
		a, b, f := n.args[0].compile(), n.args[1].compile(), n.fn.binary
		return func(x, y float64) float64 { return f(a(x, y), b(x, y)) }
	}
	// Variadic fold (min/max): no per-call allocation.
	args := make([]evalFn, len(n.args))
	for i := range n.args {
		args[i] = n.args[i].compile()
	}
	fold := n.fn.fold
	return func(x, y float64) float64 {
		acc := args[0](x, y)
		for _, a := range args[1:] {
			acc = fold(acc, a(x, y))
		}
		return acc
	}
}

func (n callNode) String() string {
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		parts[i] = a.String()
	}

	return n.name + "(" + strings.Join(parts, ", ") + ")"
}

// builtin describes a callable. Exactly one of unary, binary or fold is set;
// a function accepting both one and two arguments (log) is resolved by the
// parser into two distinct builtins.
type builtin struct {
	minArgs, maxArgs int // maxArgs < 0 ⇒ variadic
	unary            func(float64) float64
	binary           func(a, b float64) float64
	fold             func(acc, v float64) float64
}

func logBase(v, base float64) float64 { return math.Log(v) / math.Log(base) }

// builtins maps call names to implementations. Two-argument log is looked up
// under logWithBase.
var builtins = map[string]builtin{
	"log":   {minArgs: 1, maxArgs: 2, unary: math.Log},
	"ln":    {minArgs: 1, maxArgs: 1, unary: math.Log},
	"log10": {minArgs: 1, maxArgs: 1, unary: math.Log10},
	"log2":  {minArgs: 1, maxArgs: 1, unary: math.Log2},
	"sqrt":  {minArgs: 1, maxArgs: 1, unary: math.Sqrt},
	"exp":   {minArgs: 1, maxArgs: 1, unary: math.Exp},
	"abs":   {minArgs: 1, maxArgs: 1, unary: math.Abs},
	"Abs":   {minArgs: 1, maxArgs: 1, unary: math.Abs},
	"sin":   {minArgs: 1, maxArgs: 1, unary: math.Sin},
	"cos":   {minArgs: 1, maxArgs: 1, unary: math.Cos},
	"tan":   {minArgs: 1, maxArgs: 1, unary: math.Tan},
	"pow":   {minArgs: 2, maxArgs: 2, binary: math.Pow},
	"min":   {minArgs: 2, maxArgs: -1, fold: math.Min},
	"Min":   {minArgs: 2, maxArgs: -1, fold: math.Min},
	"max":   {minArgs: 2, maxArgs: -1, fold: math.Max},
	"Max":   {minArgs: 2, maxArgs: -1, fold: math.Max},
}

var logWithBase = builtin{minArgs: 2, maxArgs: 2, binary: logBase}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
	"E":  math.E,
}
