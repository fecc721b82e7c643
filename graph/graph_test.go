package graph

import (
	"errors"
	"math"
	"testing"

	"tical/engine"
	"tical/screen"
)

func newTestCanvas(t *testing.T) *screen.Canvas {
	t.Helper()
	return screen.NewCanvas(screen.NewFramebuffer(240, 160))
}

func newGrapher(t *testing.T) *Grapher {
	t.Helper()
	return New(engine.New(engine.Options{Unit: engine.Radians}), 0)
}

func TestSetEquation(t *testing.T) {
	gr := newGrapher(t)

	if err := gr.SetEquation("Y1", "x^2"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}
	if err := gr.SetEquation("Y7", "x"); !errors.Is(err, ErrSlot) {
		t.Fatalf("Y7 err = %v, want ErrSlot", err)
	}
	if err := gr.SetEquation("Y2", "x++"); !errors.Is(err, engine.ErrSyntax) {
		t.Fatalf("bad source err = %v, want ErrSyntax", err)
	}

	eqs := gr.Equations()
	if eqs["Y1"] != "x^2" {
		t.Fatalf("Equations()[Y1] = %q", eqs["Y1"])
	}

	if err := gr.SetEquation("Y1", ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(gr.Labels()) != 0 {
		t.Fatalf("labels after clear: %v", gr.Labels())
	}
}

func TestLabelsDrawOrder(t *testing.T) {
	gr := newGrapher(t)
	for _, label := range []string{"Y3", "Y1", "Y5"} {
		if err := gr.SetEquation(label, "x"); err != nil {
			t.Fatalf("SetEquation(%s): %v", label, err)
		}
	}

	got := gr.Labels()
	want := []string{"Y1", "Y3", "Y5"}
	if len(got) != len(want) {
		t.Fatalf("Labels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Labels() = %v, want %v", got, want)
		}
	}
}

func TestSetWindow(t *testing.T) {
	gr := newGrapher(t)

	if err := gr.SetWindow(Window{XMin: 5, XMax: -5, YMin: -1, YMax: 1}); !errors.Is(err, ErrWindow) {
		t.Fatalf("inverted x err = %v, want ErrWindow", err)
	}
	if err := gr.SetWindow(Window{XMin: -1, XMax: 1, YMin: 2, YMax: 2}); !errors.Is(err, ErrWindow) {
		t.Fatalf("flat y err = %v, want ErrWindow", err)
	}
	if err := gr.SetWindow(Window{XMin: 0, XMax: 2, YMin: -3, YMax: 3}); err != nil {
		t.Fatalf("valid window: %v", err)
	}
	if w := gr.Window(); w.XMax != 2 || w.YMin != -3 {
		t.Fatalf("Window() = %+v", w)
	}
}

func TestZoom(t *testing.T) {
	gr := newGrapher(t)

	gr.ZoomIn()
	w := gr.Window()
	if math.Abs(w.XMax-8) > 1e-9 || math.Abs(w.XMin+8) > 1e-9 {
		t.Fatalf("after ZoomIn window = %+v", w)
	}

	gr.ResetWindow()
	gr.ZoomOut()
	w = gr.Window()
	if math.Abs(w.XMax-12.5) > 1e-9 {
		t.Fatalf("after ZoomOut window = %+v", w)
	}

	// Zooming keeps an off-center window centered on the same point.
	if err := gr.SetWindow(Window{XMin: 0, XMax: 4, YMin: 0, YMax: 4}); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}
	gr.ZoomIn()
	w = gr.Window()
	if cx := (w.XMin + w.XMax) / 2; math.Abs(cx-2) > 1e-9 {
		t.Fatalf("center moved: %+v", w)
	}
}

func TestSeries(t *testing.T) {
	gr := newGrapher(t)
	if err := gr.SetEquation("Y1", "x^2"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}

	xs, ys, err := gr.Series("Y1")
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(xs) != 400 || len(ys) != 400 {
		t.Fatalf("sample count = %d, %d", len(xs), len(ys))
	}
	if xs[0] != -10 || xs[len(xs)-1] != 10 {
		t.Fatalf("sample range = [%v, %v]", xs[0], xs[len(xs)-1])
	}
	for i := range xs {
		if math.Abs(ys[i]-xs[i]*xs[i]) > 1e-9 {
			t.Fatalf("ys[%d] = %v at x=%v", i, ys[i], xs[i])
		}
	}

	if _, _, err := gr.Series("Y2"); !errors.Is(err, ErrNoFunction) {
		t.Fatalf("empty slot err = %v, want ErrNoFunction", err)
	}
}

func TestSeriesGaps(t *testing.T) {
	gr := newGrapher(t)
	if err := gr.SetEquation("Y1", "sqrt(x)"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}

	xs, ys, err := gr.Series("Y1")
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	sawGap := false
	for i := range xs {
		if xs[i] < 0 {
			if !math.IsNaN(ys[i]) {
				t.Fatalf("sqrt(%v) = %v, want NaN gap", xs[i], ys[i])
			}
			sawGap = true
		}
	}
	if !sawGap {
		t.Fatalf("no negative samples in default window")
	}
}

func TestIntersections(t *testing.T) {
	gr := newGrapher(t)
	if err := gr.SetEquation("Y1", "x"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}
	if err := gr.SetEquation("Y2", "2-x"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}

	points := gr.Intersections()
	if len(points) != 1 {
		t.Fatalf("got %d intersections, want 1: %v", len(points), points)
	}
	if math.Abs(points[0].X-1) > 1e-6 || math.Abs(points[0].Y-1) > 1e-6 {
		t.Fatalf("intersection = %+v, want (1, 1)", points[0])
	}
}

func TestIntersectionsTrig(t *testing.T) {
	gr := newGrapher(t)
	if err := gr.SetEquation("Y1", "sin(x)"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}
	if err := gr.SetEquation("Y2", "cos(x)"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}

	// sin and cos cross at pi/4 + k*pi; six of those fall inside ±10.
	points := gr.Intersections()
	if len(points) != 6 {
		t.Fatalf("got %d intersections, want 6", len(points))
	}
	found := false
	for _, p := range points {
		if math.Abs(p.X-math.Pi/4) < 1e-3 {
			found = true
			if math.Abs(p.Y-math.Sqrt2/2) > 1e-3 {
				t.Fatalf("crossing at pi/4 has y = %v", p.Y)
			}
		}
	}
	if !found {
		t.Fatalf("no crossing near pi/4: %v", points)
	}
}

func TestIntersectionsNeedTwoCurves(t *testing.T) {
	gr := newGrapher(t)
	if err := gr.SetEquation("Y1", "x"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}
	if points := gr.Intersections(); points != nil {
		t.Fatalf("single curve intersections = %v", points)
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0.7, 1},
		{1.4, 2},
		{3, 5},
		{7, 10},
		{0.03, 0.05},
		{42, 50},
	}
	for _, tt := range tests {
		if got := niceStep(tt.raw); math.Abs(got-tt.want) > tt.want*1e-9 {
			t.Errorf("niceStep(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFmtAxis(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{5, "5.00"},
		{12, "12"},
		{0.25, "0.250"},
		{1500, "1.5e+03"},
		{-3.5, "-3.50"},
	}
	for _, tt := range tests {
		if got := fmtAxis(tt.v); got != tt.want {
			t.Errorf("fmtAxis(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestClipLineToRect(t *testing.T) {
	// Fully inside is untouched.
	x0, y0, x1, y1, ok := clipLineToRect(1, 1, 3, 3, 0, 0, 10, 10)
	if !ok || x0 != 1 || y0 != 1 || x1 != 3 || y1 != 3 {
		t.Fatalf("inside: (%v,%v)-(%v,%v) ok=%v", x0, y0, x1, y1, ok)
	}

	// Crossing the right edge is trimmed to it.
	_, _, x1, _, ok = clipLineToRect(5, 5, 15, 5, 0, 0, 10, 10)
	if !ok || x1 != 10 {
		t.Fatalf("right clip: x1=%v ok=%v", x1, ok)
	}

	// Entirely outside is rejected.
	if _, _, _, _, ok = clipLineToRect(20, 20, 30, 30, 0, 0, 10, 10); ok {
		t.Fatalf("outside segment accepted")
	}
}

func TestRender(t *testing.T) {
	gr := newGrapher(t)

	fb := newTestCanvas(t)
	if err := gr.Render(fb, 0, 0, 240, 160); !errors.Is(err, ErrNoFunction) {
		t.Fatalf("empty render err = %v, want ErrNoFunction", err)
	}

	if err := gr.SetEquation("Y1", "x"); err != nil {
		t.Fatalf("SetEquation: %v", err)
	}
	if err := gr.Render(fb, 0, 0, 240, 160); err != nil {
		t.Fatalf("Render: %v", err)
	}
}
