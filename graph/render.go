package graph

// Framebuffer rendering for the plot view: grid, axes, curves, legend, and
// intersection markers.

import (
	"fmt"
	"image/color"
	"math"

	"tical/screen"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG     = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorPanel  = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorGrid   = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorAxis   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorBox    = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorMarker = color.RGBA{R: 0xFF, G: 0x5A, B: 0x5A, A: 0xFF}

	curveColors = []color.RGBA{
		{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF},
		{R: 0x7F, G: 0xFF, B: 0x7F, A: 0xFF},
		{R: 0xFF, G: 0x7F, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0x9A, B: 0x4A, A: 0xFF},
		{R: 0x9A, G: 0x8C, B: 0xFF, A: 0xFF},
	}
)

var plotFont = &proggy.TinySZ8pt7b

const (
	fontHeight = 10
	fontOffset = 7
)

func fontWidth() int16 {
	_, w := tinyfont.LineWidth(plotFont, "0")
	return int16(w)
}

func drawString(c *screen.Canvas, x, y int16, s string, fg color.RGBA) {
	tinyfont.WriteLine(c, plotFont, x, y+fontOffset, s, fg)
}

// Render draws the full plot view into the given rectangle of the canvas.
// It fails with ErrNoFunction when no equation slot is configured.
func (gr *Grapher) Render(c *screen.Canvas, x, y, w, h int16) error {
	labels := gr.Labels()
	if len(labels) == 0 {
		return ErrNoFunction
	}

	c.FillRect(x, y, w, h, colorBG)

	fw := fontWidth()
	leftMargin := 7 * fw
	bottomMargin := int16(fontHeight + 1)

	plotX := x + leftMargin
	plotY := y + 1
	plotW := w - leftMargin - 1
	plotH := h - bottomMargin - 2
	if plotW <= 2 || plotH <= 2 {
		return nil
	}

	c.FillRect(plotX, plotY, plotW, plotH, colorPanel)
	gr.drawGrid(c, plotX, plotY, plotW, plotH, leftMargin)
	gr.drawAxes(c, plotX, plotY, plotW, plotH)

	xs := gr.xSamples()
	for i, label := range labels {
		ys := gr.series(gr.slots[label], xs)
		drawSeries(c, plotX, plotY, plotW, plotH, gr.window, xs, ys, curveColors[i%len(curveColors)])
	}

	gr.drawMarkers(c, plotX, plotY, plotW, plotH)
	gr.drawLegend(c, plotX, plotY, labels)
	return nil
}

func (gr *Grapher) drawGrid(c *screen.Canvas, plotX, plotY, plotW, plotH, leftMargin int16) {
	w := gr.window
	fw := fontWidth()

	xPxPerUnit := float64(plotW-1) / (w.XMax - w.XMin)
	yPxPerUnit := float64(plotH-1) / (w.YMax - w.YMin)
	if xPxPerUnit <= 0 || yPxPerUnit <= 0 {
		return
	}

	stepX := niceStep(40 / xPxPerUnit)
	stepY := niceStep(28 / yPxPerUnit)

	xStart := math.Ceil(w.XMin/stepX) * stepX
	for gx := xStart; gx <= w.XMax; gx += stepX {
		ix := int16((gx - w.XMin) / (w.XMax - w.XMin) * float64(plotW-1))
		for py := int16(0); py < plotH; py++ {
			c.SetPixel(plotX+ix, plotY+py, colorGrid)
		}
		label := fmtAxis(gx)
		lx := plotX + ix - int16(len(label))*fw/2
		if lx < 0 {
			lx = 0
		}
		drawString(c, lx, plotY+plotH+1, label, colorDim)
	}

	yStart := math.Ceil(w.YMin/stepY) * stepY
	for gy := yStart; gy <= w.YMax; gy += stepY {
		iy := int16((w.YMax - gy) / (w.YMax - w.YMin) * float64(plotH-1))
		for px := int16(0); px < plotW; px++ {
			c.SetPixel(plotX+px, plotY+iy, colorGrid)
		}
		label := fmtAxis(gy)
		lx := plotX - int16(len(label))*fw - 2
		minX := plotX - leftMargin + 1
		if lx < minX {
			lx = minX
		}
		if lx < 0 {
			lx = 0
		}
		drawString(c, lx, plotY+iy-fontHeight/2, label, colorDim)
	}
}

func (gr *Grapher) drawAxes(c *screen.Canvas, px0, py0, pw, ph int16) {
	w := gr.window
	if w.XMin <= 0 && w.XMax >= 0 {
		x := int16((0 - w.XMin) / (w.XMax - w.XMin) * float64(pw-1))
		for y := int16(0); y < ph; y++ {
			c.SetPixel(px0+x, py0+y, colorAxis)
		}
	}
	if w.YMin <= 0 && w.YMax >= 0 {
		y := int16((w.YMax - 0) / (w.YMax - w.YMin) * float64(ph-1))
		for x := int16(0); x < pw; x++ {
			c.SetPixel(px0+x, py0+y, colorAxis)
		}
	}
}

// drawSeries draws one sampled curve, breaking the polyline at NaN gaps and
// clipping segments to the plot rectangle.
func drawSeries(c *screen.Canvas, px0, py0, pw, ph int16, w Window, xs, ys []float64, col color.RGBA) {
	prevOK := false
	var prevX, prevY float64
	xMax := float64(pw - 1)
	yMax := float64(ph - 1)
	for i := range xs {
		x := xs[i]
		y := ys[i]
		if math.IsNaN(y) || math.IsInf(y, 0) {
			prevOK = false
			continue
		}

		curX := (x - w.XMin) / (w.XMax - w.XMin) * float64(pw-1)
		curY := (w.YMax - y) / (w.YMax - w.YMin) * float64(ph-1)
		if prevOK {
			cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, 0, 0, xMax, yMax)
			if ok {
				c.DrawLine(
					px0+roundInt16(cx0),
					py0+roundInt16(cy0),
					px0+roundInt16(cx1),
					py0+roundInt16(cy1),
					col,
				)
			}
		} else if curX >= 0 && curX <= xMax && curY >= 0 && curY <= yMax {
			c.SetPixel(px0+roundInt16(curX), py0+roundInt16(curY), col)
		}
		prevOK = true
		prevX = curX
		prevY = curY
	}
}

// drawMarkers marks pairwise intersections with a cross and coordinates.
func (gr *Grapher) drawMarkers(c *screen.Canvas, px0, py0, pw, ph int16) {
	points := gr.Intersections()
	if len(points) == 0 {
		return
	}
	w := gr.window
	for _, p := range points {
		if p.X < w.XMin || p.X > w.XMax || p.Y < w.YMin || p.Y > w.YMax {
			continue
		}
		ix := px0 + roundInt16((p.X-w.XMin)/(w.XMax-w.XMin)*float64(pw-1))
		iy := py0 + roundInt16((w.YMax-p.Y)/(w.YMax-w.YMin)*float64(ph-1))
		c.DrawLine(ix-2, iy, ix+2, iy, colorMarker)
		c.DrawLine(ix, iy-2, ix, iy+2, colorMarker)
		drawString(c, ix+4, iy-fontHeight/2, fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y), colorMarker)
	}
}

func (gr *Grapher) drawLegend(c *screen.Canvas, px0, py0 int16, labels []string) {
	fw := fontWidth()
	maxLabel := 0
	srcs := make([]string, len(labels))
	for i, l := range labels {
		srcs[i] = l + "=" + gr.slots[l].Source()
		if n := len(srcs[i]); n > maxLabel {
			maxLabel = n
		}
	}
	if maxLabel > 24 {
		maxLabel = 24
	}

	swatchW := 3 * fw
	boxW := swatchW + int16(maxLabel+2)*fw + 4
	boxH := int16(len(labels))*fontHeight + 2

	x := px0 + 1
	y := py0 + 1
	c.FillRect(x, y, boxW, boxH, colorBox)
	c.FillRect(x, y, boxW, 1, colorAxis)
	c.FillRect(x, y+boxH-1, boxW, 1, colorAxis)
	c.FillRect(x, y, 1, boxH, colorAxis)
	c.FillRect(x+boxW-1, y, 1, boxH, colorAxis)

	for i, src := range srcs {
		cy := y + 1 + int16(i)*fontHeight
		c.FillRect(x+2, cy+fontHeight/2-1, swatchW, 3, curveColors[i%len(curveColors)])
		if len(src) > maxLabel {
			src = src[:maxLabel]
		}
		drawString(c, x+2+swatchW+fw, cy, src, colorFG)
	}
}

func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	frac := raw / pow
	switch {
	case frac <= 1:
		return 1 * pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
