// Package render implements the CPU rasterization pipeline: near-plane
// clipping, the incremental edge-function triangle walk, perspective-
// correct attribute interpolation, and flat/Gouraud/Phong shading.
package render

import (
	"math"

	"github.com/aurorasoft/pgr/pkg/math3d"
)

// channel clamps a [0,1] color component to an 8-bit channel value,
// rounding to the nearest integer.
func channel(c float64) uint32 {
	v := math.Round(c * 255)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint32(v)
}

// PackRGBA packs a linear color into a 32-bit pixel whose little-endian
// in-memory byte order is (R, G, B, A=0): PackRGBA = b<<16 | g<<8 | r.
func PackRGBA(c math3d.Vec3) uint32 {
	r := channel(c.X)
	g := channel(c.Y)
	b := channel(c.Z)
	return b<<16 | g<<8 | r
}

// UnpackRGBA is the inverse of PackRGBA.
func UnpackRGBA(p uint32) math3d.Vec3 {
	r := float64(p&0xff) / 255
	g := float64((p>>8)&0xff) / 255
	b := float64((p>>16)&0xff) / 255
	return math3d.V3(r, g, b)
}
