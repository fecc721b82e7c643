package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokBang
	tokLParen
	tokRParen
	tokComma
	tokBad
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) {
		r, size := utf8.DecodeRuneInString(l.s[l.i:])
		if !unicode.IsSpace(r) {
			break
		}
		l.i += size
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	r, size := utf8.DecodeRuneInString(l.s[l.i:])
	switch r {
	case '+':
		l.i += size
		return token{kind: tokPlus, text: "+"}
	case '-', '−':
		l.i += size
		return token{kind: tokMinus, text: "-"}
	case '*', '×':
		l.i += size
		return token{kind: tokStar, text: "*"}
	case '/', '÷':
		l.i += size
		return token{kind: tokSlash, text: "/"}
	case '^':
		l.i += size
		return token{kind: tokCaret, text: "^"}
	case '!':
		l.i += size
		return token{kind: tokBang, text: "!"}
	case '(', '[':
		l.i += size
		return token{kind: tokLParen, text: "("}
	case ')', ']':
		l.i += size
		return token{kind: tokRParen, text: ")"}
	case ',':
		l.i += size
		return token{kind: tokComma, text: ","}
	case '√':
		// Keypad square-root glyph acts as the sqrt function name.
		l.i += size
		return token{kind: tokIdent, text: "sqrt"}
	case 'π':
		l.i += size
		return token{kind: tokIdent, text: "pi"}
	}

	if isIdentStart(r) {
		start := l.i
		l.i += size
		for l.i < len(l.s) {
			r, size := utf8.DecodeRuneInString(l.s[l.i:])
			if !isIdentContinue(r) {
				break
			}
			l.i += size
		}
		return token{kind: tokIdent, text: l.s[start:l.i]}
	}
	if r == '.' || unicode.IsDigit(r) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		n, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokBad, text: txt}
		}
		return token{kind: tokNumber, text: txt, num: n}
	}

	l.i += size
	return token{kind: tokBad, text: string(r)}
}

func scanNumber(s string, i int) int {
	start := i
	if i < len(s) && s[i] == '.' {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	if i == start {
		return start
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

type parser struct {
	l   lexer
	cur token
}

// Expr is a compiled expression, reusable across evaluations.
type Expr struct {
	src  string
	root node
}

// Compile parses src into an evaluable expression. Malformed input yields an
// error wrapping ErrSyntax; no partial expression is returned.
func Compile(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	p := &parser{l: lexer{s: src}}
	p.next()
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.cur.text)
	}
	return &Expr{src: src, root: root}, nil
}

// Source returns the text the expression was compiled from.
func (x *Expr) Source() string { return x.src }

// Eval evaluates the expression in env. It is a pure function of the
// expression, the environment bindings, and the angle unit.
func (x *Expr) Eval(env *Env) (float64, error) {
	return x.root.eval(env)
}

// EvalAt evaluates the expression with the plot variable x bound to xv,
// restoring any previous binding afterwards.
func (x *Expr) EvalAt(env *Env, xv float64) (float64, error) {
	prev, had := env.vars["x"]
	env.vars["x"] = xv
	defer func() {
		if had {
			env.vars["x"] = prev
		} else {
			delete(env.vars, "x")
		}
	}()
	return x.root.eval(env)
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseExpr() (node, error) {
	return p.parseSum()
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.text[0]
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parsePower() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (node, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokBang {
		p.next()
		x = nodeFactorial{x: x}
	}
	return x, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		name := p.cur.text
		p.next()
		if p.cur.kind == tokLParen {
			p.next()
			var args []node
			if p.cur.kind != tokRParen {
				for {
					ex, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, ex)
					if p.cur.kind == tokComma {
						p.next()
						continue
					}
					break
				}
			}
			if p.cur.kind != tokRParen {
				return nil, fmt.Errorf("%w: expected ')'", ErrSyntax)
			}
			p.next()
			return nodeCall{name: name, args: args}, nil
		}
		return nodeIdent{name: name}, nil
	case tokLParen:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrSyntax)
		}
		p.next()
		return ex, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.cur.text)
	}
}
