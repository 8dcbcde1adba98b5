// Package utility turns user-supplied utility formulas such as
// "x**0.5 * y**0.5" into fast, pure Go functions of two goods.
//
// 🚀 What does it do?
//
//	Parse tokenizes the text, builds an abstract syntax tree with a
//	recursive-descent parser and compiles that tree once into nested
//	closures. No reflection, no dynamic code execution: the grammar is
//	closed and every identifier must be a declared variable, a known
//	constant or a built-in function.
//
// ✨ Grammar (highest precedence last):
//
//	expr    := sum
//	sum     := product { ("+" | "-") product }
//	product := unary { ("*" | "/") unary }
//	unary   := ("+" | "-") unary | power
//	power   := primary [ ("**" | "^") unary ]      // right associative
//	primary := number | ident | ident "(" args ")" | "(" expr ")"
//
//	As in conventional algebra, -x**2 means -(x**2) and 2**3**2 means 2**(3**2).
//
// Built-ins: log/ln (optional base as second argument), log10, log2, sqrt,
// exp, abs/Abs, sin, cos, tan, min/Min, max/Max (two or more arguments) and
// pow(a, b). Constants: pi, e (also E).
//
// ⚙️ Usage:
//
//	f, err := utility.Parse("x**0.3 * y**0.7")
//	if err != nil {
//	  // errors.Is(err, utility.ErrInvalidExpression) == true
//	}
//	u := f.Eval(4, 9)
//
// A parsed Function is immutable and safe for concurrent use.
package utility
