package render

import "math"

// Framebuffer holds the color and depth buffers the rasterizer writes
// into. Pixels are packed 32-bit values (see PackRGBA); Depth holds one
// float64 per pixel. Both always have exactly Width*Height entries.
type Framebuffer struct {
	Pixels []uint32
	Depth  []float64
	Width  int
	Height int
}

// ClearFlags selects which buffers Clear resets, mirroring the
// COLOR_BIT/DEPTH_BIT mask the scene driver passes each frame.
type ClearFlags uint32

const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
)

// NewFramebuffer allocates a framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("render: framebuffer dimensions must be positive")
	}
	return &Framebuffer{
		Pixels: make([]uint32, width*height),
		Depth:  make([]float64, width*height),
		Width:  width,
		Height: height,
	}
}

// Resize reallocates both buffers; previous contents are not preserved.
func (fb *Framebuffer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("render: framebuffer dimensions must be positive")
	}
	fb.Width = width
	fb.Height = height
	fb.Pixels = make([]uint32, width*height)
	fb.Depth = make([]float64, width*height)
}

// Clear resets the selected buffers: ClearColor fills every pixel with
// the packed clearColor (a correct whole-word fill, not the byte-wise
// memset the original rasterizer performs — see DESIGN.md), ClearDepth
// fills every depth cell with +Inf.
func (fb *Framebuffer) Clear(flags ClearFlags, clearColor uint32) {
	if flags&ClearColor != 0 {
		for i := range fb.Pixels {
			fb.Pixels[i] = clearColor
		}
	}
	if flags&ClearDepth != 0 {
		inf := math.Inf(1)
		for i := range fb.Depth {
			fb.Depth[i] = inf
		}
	}
}

// At returns the packed pixel value at (x, y) without bounds checking;
// callers in the rasterizer core have already clamped their bounding box.
func (fb *Framebuffer) At(x, y int) uint32 {
	return fb.Pixels[y*fb.Width+x]
}
