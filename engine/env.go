package engine

import "math"

// AngleUnit selects how trigonometric builtins interpret their arguments.
type AngleUnit uint8

const (
	// Degrees is the default unit, matching the calculator's MODE default.
	Degrees AngleUnit = iota
	Radians
)

// Env is the evaluation environment: the angle unit plus named bindings
// (constants, Ans, the memory register M, and the plot variable x).
type Env struct {
	unit AngleUnit
	vars map[string]float64
}

// NewEnv returns an environment with the calculator constants bound.
func NewEnv(unit AngleUnit) *Env {
	return &Env{
		unit: unit,
		vars: map[string]float64{
			"pi":  math.Pi,
			"e":   math.E,
			"tau": 2 * math.Pi,
			"Ans": 0,
			"M":   0,
		},
	}
}

// Unit reports the configured angle unit.
func (e *Env) Unit() AngleUnit { return e.unit }

// SetUnit switches the angle unit at runtime, for the MODE key.
func (e *Env) SetUnit(u AngleUnit) { e.unit = u }

// Set binds name to v, overwriting any previous binding.
func (e *Env) Set(name string, v float64) { e.vars[name] = v }

func (e *Env) lookup(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// toRadians converts a trig argument from the configured unit.
func (e *Env) toRadians(x float64) float64 {
	if e.unit == Degrees {
		return x * math.Pi / 180
	}
	return x
}

// fromRadians converts an inverse-trig result into the configured unit.
func (e *Env) fromRadians(x float64) float64 {
	if e.unit == Degrees {
		return x * 180 / math.Pi
	}
	return x
}
