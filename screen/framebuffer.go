package screen

import "sync"

// Framebuffer is a 16bpp RGB565 pixel buffer. The mutex only guards the
// snapshot taken by the window's draw callback; all drawing happens on the
// single UI goroutine.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer allocates a cleared buffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 2
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *Framebuffer) Width() int       { return f.width }
func (f *Framebuffer) Height() int      { return f.height }
func (f *Framebuffer) StrideBytes() int { return f.stride }
func (f *Framebuffer) Buffer() []byte   { return f.buf }

// ClearRGB fills the whole buffer with one color.
func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Snapshot copies the current contents into dst for presentation.
func (f *Framebuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
