package screen

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Canvas adapts a Framebuffer to drivers.Displayer so tinyfont can draw text
// into it, and adds the rectangle/line primitives the UI needs.
type Canvas struct {
	fb *Framebuffer
}

// NewCanvas wraps fb.
func NewCanvas(fb *Framebuffer) *Canvas {
	return &Canvas{fb: fb}
}

func (c *Canvas) Size() (x, y int16) {
	if c.fb == nil {
		return 0, 0
	}
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if c.fb == nil {
		return
	}
	buf := c.fb.Buffer()

	w := c.fb.Width()
	h := c.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565(col.R, col.G, col.B)
	off := iy*c.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display is a no-op: the window presents the framebuffer on its own tick.
func (c *Canvas) Display() error { return nil }

func (c *Canvas) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// FillRect fills a clipped axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, width, height int16, col color.RGBA) {
	if c.fb == nil {
		return
	}
	buf := c.fb.Buffer()

	w := c.fb.Width()
	h := c.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := rgb565(col.R, col.G, col.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := c.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// DrawLine draws a Bresenham line between two points.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int16, col color.RGBA) {
	dx := absInt(int(x1) - int(x0))
	dy := -absInt(int(y1) - int(y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
