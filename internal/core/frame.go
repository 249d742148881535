package core

// Frame stores an RGBA framebuffer in row-major order, four bytes per pixel.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Index returns the byte offset of pixel (x, y).
func (f *Frame) Index(x, y int) int { return (y*f.W + x) * 4 }

// At returns the RGBA bytes of pixel (x, y).
func (f *Frame) At(x, y int) [4]uint8 {
	i := f.Index(x, y)
	return [4]uint8{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
}

// Resize reallocates the buffer when the dimensions change. The contents are
// cleared either way.
func (f *Frame) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w != f.W || h != f.H {
		f.W, f.H = w, h
		f.Pix = make([]byte, 4*w*h)
		return
	}
	f.Clear()
}

// Clear fills the frame with zeros.
func (f *Frame) Clear() {
	for i := range f.Pix {
		f.Pix[i] = 0
	}
}
