// Package graph manages the calculator's plot state: the Y1..Y6 equation
// slots, the viewing window, curve sampling, and rendering into a
// framebuffer canvas.
package graph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"tical/engine"
)

var (
	// ErrWindow is returned for a viewport whose min is not below its max.
	ErrWindow = errors.New("invalid window")
	// ErrNoFunction is returned when a plot is requested with no equation set.
	ErrNoFunction = errors.New("no function")
	// ErrSlot is returned for an equation label outside Y1..Y6.
	ErrSlot = errors.New("unknown slot")
)

// slotLabels is the fixed set of equation slots, in draw order.
var slotLabels = []string{"Y1", "Y2", "Y3", "Y4", "Y5", "Y6"}

// Window is the plot viewport.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultWindow is the standard ±10 viewport.
func DefaultWindow() Window {
	return Window{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
}

func (w Window) valid() bool {
	return w.XMin < w.XMax && w.YMin < w.YMax
}

// Zoom scales the window about its center. Factors below 1 zoom in.
func (w Window) Zoom(factor float64) Window {
	cx := (w.XMin + w.XMax) / 2
	cy := (w.YMin + w.YMax) / 2
	hx := (w.XMax - w.XMin) / 2 * factor
	hy := (w.YMax - w.YMin) / 2 * factor
	return Window{XMin: cx - hx, XMax: cx + hx, YMin: cy - hy, YMax: cy + hy}
}

// Point is an x,y pair in graph coordinates.
type Point struct {
	X, Y float64
}

// Grapher holds the plot state for one engine.
type Grapher struct {
	eng     *engine.Engine
	slots   map[string]*engine.Expr
	window  Window
	samples int
}

// New returns a Grapher with the default window. samples <= 1 selects the
// default of 400 points per curve.
func New(eng *engine.Engine, samples int) *Grapher {
	if samples <= 1 {
		samples = 400
	}
	return &Grapher{
		eng:     eng,
		slots:   make(map[string]*engine.Expr),
		window:  DefaultWindow(),
		samples: samples,
	}
}

// IsSlot reports whether label names an equation slot.
func IsSlot(label string) bool {
	for _, l := range slotLabels {
		if l == label {
			return true
		}
	}
	return false
}

// SetEquation compiles src into the given slot; an empty src clears it.
// Compile errors surface immediately so the editor can reject bad input.
func (gr *Grapher) SetEquation(label, src string) error {
	if !IsSlot(label) {
		return fmt.Errorf("%w: %q", ErrSlot, label)
	}
	if src == "" {
		delete(gr.slots, label)
		return nil
	}
	ex, err := engine.Compile(src)
	if err != nil {
		return err
	}
	gr.slots[label] = ex
	return nil
}

// Equations returns the configured slots as label → source text.
func (gr *Grapher) Equations() map[string]string {
	out := make(map[string]string, len(gr.slots))
	for label, ex := range gr.slots {
		out[label] = ex.Source()
	}
	return out
}

// Labels returns the occupied slot labels in draw order.
func (gr *Grapher) Labels() []string {
	var out []string
	for _, l := range slotLabels {
		if _, ok := gr.slots[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// SetWindow replaces the viewport after validation.
func (gr *Grapher) SetWindow(w Window) error {
	if !w.valid() {
		return ErrWindow
	}
	gr.window = w
	return nil
}

// Window returns the current viewport.
func (gr *Grapher) Window() Window { return gr.window }

// ZoomIn and ZoomOut scale the viewport about its center.
func (gr *Grapher) ZoomIn()  { gr.window = gr.window.Zoom(0.8) }
func (gr *Grapher) ZoomOut() { gr.window = gr.window.Zoom(1.25) }

// ResetWindow restores the default ±10 viewport.
func (gr *Grapher) ResetWindow() { gr.window = DefaultWindow() }

// xSamples returns the equidistant sample positions across the window.
func (gr *Grapher) xSamples() []float64 {
	n := gr.samples
	xs := make([]float64, n)
	step := (gr.window.XMax - gr.window.XMin) / float64(n-1)
	for i := range xs {
		xs[i] = gr.window.XMin + step*float64(i)
	}
	return xs
}

// series evaluates ex at each sample position. Evaluation failures and
// non-finite values become NaN, which the renderer treats as a gap.
func (gr *Grapher) series(ex *engine.Expr, xs []float64) []float64 {
	env := gr.eng.Env()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := ex.EvalAt(env, x)
		if err != nil {
			ys[i] = math.NaN()
			continue
		}
		ys[i] = y
	}
	return ys
}

// Series samples the named slot across the current window.
func (gr *Grapher) Series(label string) (xs, ys []float64, err error) {
	ex, ok := gr.slots[label]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoFunction, label)
	}
	xs = gr.xSamples()
	return xs, gr.series(ex, xs), nil
}

// Intersections finds approximate crossing points between every pair of
// configured equations by scanning the sampled difference for sign changes
// and interpolating linearly between the bracketing samples.
func (gr *Grapher) Intersections() []Point {
	labels := gr.Labels()
	if len(labels) < 2 {
		return nil
	}
	sort.Strings(labels)

	xs := gr.xSamples()
	series := make(map[string][]float64, len(labels))
	for _, l := range labels {
		series[l] = gr.series(gr.slots[l], xs)
	}

	var out []Point
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			out = append(out, crossings(xs, series[labels[i]], series[labels[j]])...)
		}
	}
	return out
}

func crossings(xs, ya, yb []float64) []Point {
	var out []Point
	havePrev := false
	var prevDiff, prevX, prevY float64
	for i := range xs {
		a := ya[i]
		b := yb[i]
		diff := a - b
		if math.IsNaN(diff) || math.IsInf(diff, 0) {
			havePrev = false
			continue
		}
		if havePrev {
			if diff == 0 {
				out = append(out, Point{X: xs[i], Y: a})
			} else if (diff > 0) != (prevDiff > 0) {
				t := math.Abs(prevDiff) / (math.Abs(prevDiff) + math.Abs(diff))
				out = append(out, Point{
					X: prevX + (xs[i]-prevX)*t,
					Y: prevY + (a-prevY)*t,
				})
			}
		}
		havePrev = true
		prevDiff = diff
		prevX = xs[i]
		prevY = a
	}
	return out
}
