package render

import (
	"math"

	"github.com/aurorasoft/pgr/pkg/math3d"
)

// WrapMode determines how texture coordinates outside [0,1] are handled.
type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
)

// String implements fmt.Stringer, backing the HUD's texture-wrap label.
func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "Clamp"
	case WrapRepeat:
		return "Repeat"
	default:
		return ""
	}
}

// Texture is a single-channel 8-bit grayscale image, row-major with the
// origin at the top-left. The rasterizer holds one bound texture at a
// time and owns a copy of it.
type Texture struct {
	Data   []uint8
	Width  int
	Height int
}

// NewTexture allocates a zeroed texture of the given size. Both
// dimensions must be positive; a zero-size texture is a programming
// error per the pipeline's total-operation contract.
func NewTexture(width, height int) *Texture {
	if width <= 0 || height <= 0 {
		panic("render: texture dimensions must be positive")
	}
	return &Texture{Data: make([]uint8, width*height), Width: width, Height: height}
}

// Clone returns a texture with independently owned pixel storage.
func (t *Texture) Clone() *Texture {
	out := &Texture{Data: make([]uint8, len(t.Data)), Width: t.Width, Height: t.Height}
	copy(out.Data, t.Data)
	return out
}

// NewCheckerTexture builds a size x size procedural checkerboard (the
// scene binds a 32x32 one as its default texture): an XOR pattern over
// bit 3 of i and j, giving 8x8-pixel squares.
func NewCheckerTexture(size int) *Texture {
	tex := NewTexture(size, size)
	for j := range size {
		for i := range size {
			c := uint8(0)
			if ((i & 0x08) == 0) != ((j & 0x08) == 0) {
				c = 0xff
			}
			tex.Data[j*size+i] = c
		}
	}
	return tex
}

// wrapCoord applies the wrap mode to an interpolated texture coordinate.
func wrapCoord(t float64, mode WrapMode) float64 {
	switch mode {
	case WrapRepeat:
		return t - math.Floor(t)
	default: // WrapClamp
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
}

// Sample returns the grayscale intensity at (u, v) after applying wrapU
// and wrapV, replicated across r, g, and b. Sampling is nearest-neighbor;
// the pipeline has no mipmapping or bilinear filtering.
func (t *Texture) Sample(u, v float64, wrapU, wrapV WrapMode) math3d.Vec3 {
	u = wrapCoord(u, wrapU)
	v = wrapCoord(v, wrapV)

	x := int(math.Floor(u * float64(t.Width-1)))
	y := int(math.Floor(v * float64(t.Height-1)))
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)

	g := float64(t.Data[y*t.Width+x]) / 255
	return math3d.V3(g, g, g)
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
