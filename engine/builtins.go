package engine

import (
	"fmt"
	"math"
)

// builtin describes a numeric function callable from expressions.
type builtin struct {
	minArgs int
	maxArgs int // -1 means variadic
	fn      func(*Env, []float64) (float64, error)
}

func (b builtin) arityText() string {
	if b.maxArgs < 0 {
		return fmt.Sprintf("at least %d argument(s)", b.minArgs)
	}
	if b.minArgs == b.maxArgs {
		return fmt.Sprintf("%d argument(s)", b.minArgs)
	}
	return fmt.Sprintf("%d..%d arguments", b.minArgs, b.maxArgs)
}

func unary(fn func(float64) float64) func(*Env, []float64) (float64, error) {
	return func(_ *Env, args []float64) (float64, error) {
		return checkRange(fn(args[0]), args[0])
	}
}

// trig applies the angle-unit conversion before the function.
func trig(fn func(float64) float64) func(*Env, []float64) (float64, error) {
	return func(e *Env, args []float64) (float64, error) {
		return checkRange(fn(e.toRadians(args[0])), args[0])
	}
}

// arcTrig checks the [-1,1] domain and converts the result back.
func arcTrig(fn func(float64) float64) func(*Env, []float64) (float64, error) {
	return func(e *Env, args []float64) (float64, error) {
		x := args[0]
		if x < -1 || x > 1 {
			return 0, fmt.Errorf("%w: argument %g outside [-1,1]", ErrDomain, x)
		}
		return e.fromRadians(fn(x)), nil
	}
}

func logBase(fn func(float64) float64) func(*Env, []float64) (float64, error) {
	return func(_ *Env, args []float64) (float64, error) {
		if args[0] <= 0 {
			return 0, fmt.Errorf("%w: log of %g", ErrDomain, args[0])
		}
		return fn(args[0]), nil
	}
}

func sqrtFn(_ *Env, args []float64) (float64, error) {
	if args[0] < 0 {
		return 0, fmt.Errorf("%w: sqrt of %g", ErrDomain, args[0])
	}
	return math.Sqrt(args[0]), nil
}

func factorialFn(_ *Env, args []float64) (float64, error) {
	return factorial(args[0])
}

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, fmt.Errorf("%w: factorial of %g", ErrDomain, x)
	}
	if x > 170 {
		// 171! exceeds float64 range.
		return 0, ErrOverflow
	}
	out := 1.0
	for i := 2.0; i <= x; i++ {
		out *= i
	}
	return out, nil
}

func powFn(_ *Env, args []float64) (float64, error) {
	out := math.Pow(args[0], args[1])
	if math.IsNaN(out) && !math.IsNaN(args[0]) && !math.IsNaN(args[1]) {
		return 0, fmt.Errorf("%w: pow(%g, %g)", ErrDomain, args[0], args[1])
	}
	return checkRange(out, args[0], args[1])
}

func minFn(_ *Env, args []float64) (float64, error) {
	m := args[0]
	for _, v := range args[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

func maxFn(_ *Env, args []float64) (float64, error) {
	m := args[0]
	for _, v := range args[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

var builtins = map[string]builtin{
	// Trigonometry, honoring the configured angle unit.
	"sin":  {minArgs: 1, maxArgs: 1, fn: trig(math.Sin)},
	"cos":  {minArgs: 1, maxArgs: 1, fn: trig(math.Cos)},
	"tan":  {minArgs: 1, maxArgs: 1, fn: trig(math.Tan)},
	"asin": {minArgs: 1, maxArgs: 1, fn: arcTrig(math.Asin)},
	"acos": {minArgs: 1, maxArgs: 1, fn: arcTrig(math.Acos)},
	"atan": {minArgs: 1, maxArgs: 1, fn: func(e *Env, args []float64) (float64, error) {
		return e.fromRadians(math.Atan(args[0])), nil
	}},

	// Exponentials and logs. The keypad LOG key is base 10, LN natural.
	"exp":   {minArgs: 1, maxArgs: 1, fn: unary(math.Exp)},
	"log":   {minArgs: 1, maxArgs: 1, fn: logBase(math.Log10)},
	"log10": {minArgs: 1, maxArgs: 1, fn: logBase(math.Log10)},
	"ln":    {minArgs: 1, maxArgs: 1, fn: logBase(math.Log)},

	// Powers and roots.
	"sqrt": {minArgs: 1, maxArgs: 1, fn: sqrtFn},
	"pow":  {minArgs: 2, maxArgs: 2, fn: powFn},

	// Rounding and misc.
	"floor": {minArgs: 1, maxArgs: 1, fn: unary(math.Floor)},
	"ceil":  {minArgs: 1, maxArgs: 1, fn: unary(math.Ceil)},
	"round": {minArgs: 1, maxArgs: 1, fn: unary(math.Round)},
	"abs":   {minArgs: 1, maxArgs: 1, fn: unary(math.Abs)},
	"fabs":  {minArgs: 1, maxArgs: 1, fn: unary(math.Abs)},

	"factorial": {minArgs: 1, maxArgs: 1, fn: factorialFn},

	// Variadic.
	"min": {minArgs: 1, maxArgs: -1, fn: minFn},
	"max": {minArgs: 1, maxArgs: -1, fn: maxFn},
}

// Builtins lists the callable function names, for completion and keypad help.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}
