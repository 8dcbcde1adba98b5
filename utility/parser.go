package utility

import "fmt"

// parser is a recursive-descent parser over a token slice. One parser
// handles one expression; it is not reused.
type parser struct {
	src  string
	toks []token
	pos  int
	vars [2]string
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) errorf(at token, format string, args ...any) error {
	return &SyntaxError{Expr: p.src, Offset: at.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", kind, t.describe())
	}

	return t, nil
}

// parse consumes the whole token stream.
func (p *parser) parse() (node, error) {
	if p.peek().kind == tokEOF {
		return nil, &SyntaxError{Expr: p.src, Offset: -1, Msg: "empty expression"}
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %s", t.describe())
	}

	return n, nil
}

// sum := product { ("+" | "-") product }
func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, l: left, r: right}
	}
}

// product := unary { ("*" | "/") unary }
func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, l: left, r: right}
	}
}

// unary := ("+" | "-") unary | power
func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		return p.parseUnary()
	case tokMinus:
		p.next()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negNode{arg: arg}, nil
	default:
		return p.parsePower()
	}
}

// power := primary [ "**" unary ]
//
// The exponent is parsed as unary, which makes the operator right
// associative and admits negative exponents (x**-2).
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binaryNode{op: tokPow, l: base, r: exp}, nil
}

// primary := number | ident | ident "(" args ")" | "(" expr ")"
func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numNode{v: t.num}, nil
	case tokLParen:
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t)
		}
		return p.resolveIdent(t)
	default:
		return nil, p.errorf(t, "unexpected %s", t.describe())
	}
}

func (p *parser) resolveIdent(t token) (node, error) {
	switch t.text {
	case p.vars[0]:
		return varNode{index: 0, name: t.text}, nil
	case p.vars[1]:
		return varNode{index: 1, name: t.text}, nil
	}
	if v, ok := constants[t.text]; ok {
		return numNode{v: v}, nil
	}
	if _, ok := builtins[t.text]; ok {
		return nil, p.errorf(t, "function %q used without arguments", t.text)
	}

	return nil, p.errorf(t, "unknown identifier %q (variables are %q and %q)", t.text, p.vars[0], p.vars[1])
}

func (p *parser) parseCall(name token) (node, error) {
	fn, ok := builtins[name.text]
	if !ok {
		return nil, p.errorf(name, "unknown function %q", name.text)
	}
	p.next() // "("

	var args []node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	if len(args) < fn.minArgs || (fn.maxArgs >= 0 && len(args) > fn.maxArgs) {
		return nil, p.errorf(name, "%s expects %s, got %d", name.text, arityText(fn), len(args))
	}
	if name.text == "log" && len(args) == 2 {
		fn = logWithBase
	}

	return callNode{name: name.text, fn: fn, args: args}, nil
}

func arityText(fn builtin) string {
	switch {
	case fn.maxArgs < 0:
		return fmt.Sprintf("at least %d arguments", fn.minArgs)
	case fn.minArgs == fn.maxArgs && fn.minArgs == 1:
		return "1 argument"
	case fn.minArgs == fn.maxArgs:
		return fmt.Sprintf("%d arguments", fn.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", fn.minArgs, fn.maxArgs)
	}
}
