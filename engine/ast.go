package engine

import (
	"fmt"
	"math"
)

type node interface {
	eval(e *Env) (float64, error)
}

type nodeNumber struct{ v float64 }

func (n nodeNumber) eval(_ *Env) (float64, error) { return n.v, nil }

type nodeIdent struct{ name string }

func (n nodeIdent) eval(e *Env) (float64, error) {
	if v, ok := e.lookup(n.name); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: unknown name %q", ErrSyntax, n.name)
}

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) eval(e *Env) (float64, error) {
	v, err := n.x.eval(e)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return v, nil
	case '-':
		return -v, nil
	default:
		return 0, fmt.Errorf("%w: unary %q", ErrSyntax, n.op)
	}
}

type nodeBinary struct {
	op    byte
	left  node
	right node
}

func (n nodeBinary) eval(e *Env) (float64, error) {
	a, err := n.left.eval(e)
	if err != nil {
		return 0, err
	}
	b, err := n.right.eval(e)
	if err != nil {
		return 0, err
	}

	var out float64
	switch n.op {
	case '+':
		out = a + b
	case '-':
		out = a - b
	case '*':
		out = a * b
	case '/':
		if b == 0 {
			return 0, ErrDivideByZero
		}
		out = a / b
	case '^':
		out = math.Pow(a, b)
		if math.IsNaN(out) && !math.IsNaN(a) && !math.IsNaN(b) {
			// e.g. (-2)^0.5
			return 0, fmt.Errorf("%w: %g^%g", ErrDomain, a, b)
		}
	default:
		return 0, fmt.Errorf("%w: operator %q", ErrSyntax, n.op)
	}
	return checkRange(out, a, b)
}

type nodeFactorial struct{ x node }

func (n nodeFactorial) eval(e *Env) (float64, error) {
	v, err := n.x.eval(e)
	if err != nil {
		return 0, err
	}
	return factorial(v)
}

type nodeCall struct {
	name string
	args []node
}

func (n nodeCall) eval(e *Env) (float64, error) {
	b, ok := builtins[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown function %q", ErrSyntax, n.name)
	}
	if len(n.args) < b.minArgs || (b.maxArgs >= 0 && len(n.args) > b.maxArgs) {
		return 0, fmt.Errorf("%w: %s expects %s", ErrSyntax, n.name, b.arityText())
	}
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(e)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return b.fn(e, args)
}

// checkRange maps a non-finite result of finite inputs to ErrOverflow.
func checkRange(out float64, in ...float64) (float64, error) {
	if !math.IsInf(out, 0) && !math.IsNaN(out) {
		return out, nil
	}
	for _, v := range in {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return out, nil
		}
	}
	if math.IsInf(out, 0) {
		return 0, ErrOverflow
	}
	return 0, ErrDomain
}
