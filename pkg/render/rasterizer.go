package render

import (
	"math"

	"github.com/aurorasoft/pgr/pkg/math3d"
	"github.com/aurorasoft/pgr/pkg/mesh"
)

// Rasterizer owns the framebuffer, the currently bound texture, and the
// clipping/culling settings; it is the sole mutator of both buffers.
type Rasterizer struct {
	fb      *Framebuffer
	texture *Texture

	ClearColor      math3d.Vec3
	BackFaceCulling bool

	// zNear is stored negated: the view-space z of the near plane, a
	// negative value in a right-handed view space.
	zNear float64
}

// NewRasterizer allocates a rasterizer of the given size. zNear is given
// as a positive distance and stored negated per the data model.
func NewRasterizer(width, height int, zNear float64) *Rasterizer {
	return &Rasterizer{
		fb:              NewFramebuffer(width, height),
		BackFaceCulling: true,
		zNear:           -zNear,
	}
}

// Width returns the framebuffer width.
func (r *Rasterizer) Width() int { return r.fb.Width }

// Height returns the framebuffer height.
func (r *Rasterizer) Height() int { return r.fb.Height }

// Framebuffer exposes the underlying pixel/depth buffers for presentation.
func (r *Rasterizer) Framebuffer() *Framebuffer { return r.fb }

// Resize reallocates the framebuffer. Previous contents are undefined.
func (r *Rasterizer) Resize(width, height int) {
	r.fb.Resize(width, height)
}

// Clear resets the selected buffers.
func (r *Rasterizer) Clear(flags ClearFlags) {
	r.fb.Clear(flags, PackRGBA(r.ClearColor))
}

// SetTexture binds a copy of tex as the rasterizer's current texture.
func (r *Rasterizer) SetTexture(tex *Texture) {
	if tex.Width <= 0 || tex.Height <= 0 {
		panic("render: cannot bind a zero-size texture")
	}
	r.texture = tex.Clone()
}

// screenVertex is a vertex after projection and the viewport transform:
// raster-space (X, Y), NDC depth Z, and the retained clip-space W used
// for perspective-correct interpolation of the remaining attributes.
type screenVertex struct {
	X, Y, Z, W    float64
	Color         math3d.Vec3
	WorldPosition math3d.Vec3
	WorldNormal   math3d.Vec3
	UV            math3d.Vec2
}

// vertexShade runs the per-vertex stage: for Flat/Gouraud it evaluates the
// full Phong equation in world space and overwrites Color; for Phong it
// passes Color through and leaves the reflection computation to the
// fragment stage. In every mode the final clip-space position is
// mvp*position.
func (r *Rasterizer) vertexShade(v mesh.Vertex, u *Uniforms) screenVertex {
	worldPos := u.ModelMatrix.MulVec3(v.Position.Vec3())
	worldNormal := u.ModelMatrix.MulVec3Dir(v.Normal)

	color := v.ShadedColor
	if u.Shading != Phong {
		color = phongReflection(u, worldPos, worldNormal, v.ShadedColor)
	}

	clip := u.MVPMatrix.MulVec4(v.Position)
	w := clip.W
	if w == 0 {
		w = 1
	}
	ndcX, ndcY, ndcZ := clip.X/w, clip.Y/w, clip.Z/w

	return screenVertex{
		X:             (ndcX*0.5 + 0.5) * float64(r.fb.Width),
		Y:             (-ndcY*0.5 + 0.5) * float64(r.fb.Height),
		Z:             ndcZ,
		W:             w,
		Color:         color,
		WorldPosition: worldPos,
		WorldNormal:   worldNormal,
		UV:            v.TexCoords,
	}
}

// DrawTriangleMesh clips m against the near plane, projects and shades its
// vertices, and rasterizes every resulting triangle. m.VertexCount() must
// be a multiple of 3.
func (r *Rasterizer) DrawTriangleMesh(m *mesh.Mesh, u *Uniforms) {
	if m.VertexCount()%3 != 0 {
		panic("render: triangle mesh vertex count must be a multiple of 3")
	}
	if m.VertexCount() == 0 {
		return
	}

	modelView := u.ViewMatrix.Mul(u.ModelMatrix)
	clipped := clipMeshNear(m, modelView, r.zNear)
	defer clipped.Release()

	sv := make([]screenVertex, len(clipped.Vertices))
	for i, v := range clipped.Vertices {
		sv[i] = r.vertexShade(v, u)
	}

	for i := 0; i+2 < len(sv); i += 3 {
		r.rasterizeTriangle(sv[i], sv[i+1], sv[i+2], m.IsTexturable, u)
	}
}

// DrawLineMesh draws every consecutive vertex pair in m as a screen-space
// line: no clipping, no depth test, solid-colored by the second vertex's
// ShadedColor. m.VertexCount() must be a multiple of 2.
func (r *Rasterizer) DrawLineMesh(m *mesh.Mesh, u *Uniforms) {
	if m.VertexCount()%2 != 0 {
		panic("render: line mesh vertex count must be a multiple of 2")
	}

	for i := 0; i+1 < len(m.Vertices); i += 2 {
		a := r.projectLine(m.Vertices[i], u)
		b := r.projectLine(m.Vertices[i+1], u)
		r.drawLine(a.X, a.Y, b.X, b.Y, PackRGBA(b.Color))
	}
}

func (r *Rasterizer) projectLine(v mesh.Vertex, u *Uniforms) screenVertex {
	clip := u.MVPMatrix.MulVec4(v.Position)
	w := clip.W
	if w == 0 {
		w = 1
	}
	return screenVertex{
		X:     (clip.X/w*0.5 + 0.5) * float64(r.fb.Width),
		Y:     (-clip.Y/w*0.5 + 0.5) * float64(r.fb.Height),
		Color: v.ShadedColor,
	}
}

// drawLine walks the line's dominant axis one pixel at a time, computing
// the minor coordinate from the slope/intercept form of the line.
func (r *Rasterizer) drawLine(x0, y0, x1, y1 float64, color uint32) {
	dx := x1 - x0
	dy := y1 - y0

	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			r.plot(int(x0), int(y0), color)
			return
		}
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		slope := dy / dx
		if x0 > x1 {
			slope = -slope
		}
		for x := int(math.Round(x0)); x <= int(math.Round(x1)); x++ {
			y := y0 + slope*(float64(x)-x0)
			r.plot(x, int(math.Round(y)), color)
		}
	} else {
		if y0 > y1 {
			y0, y1 = y1, y0
			x0, x1 = x1, x0
		}
		slope := dx / dy
		for y := int(math.Round(y0)); y <= int(math.Round(y1)); y++ {
			x := x0 + slope*(float64(y)-y0)
			r.plot(int(math.Round(x)), y, color)
		}
	}
}

func (r *Rasterizer) plot(x, y int, color uint32) {
	if x < 0 || x >= r.fb.Width || y < 0 || y >= r.fb.Height {
		return
	}
	r.fb.Pixels[y*r.fb.Width+x] = color
}

func edgeFunc(ax, ay, bx, by, px, py float64) float64 {
	return (ax-bx)*(py-ay) - (ay-by)*(px-ax)
}

// rasterizeTriangle implements the incremental edge-function traversal:
// area & culling, bounding box, per-pixel edge evaluation, barycentric
// weights, perspective-correct attribute interpolation, depth test, and
// fragment shading.
func (r *Rasterizer) rasterizeTriangle(v0, v1, v2 screenVertex, texturable bool, u *Uniforms) {
	area := edgeFunc(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area == 0 {
		return
	}
	if r.BackFaceCulling && area < 0 {
		return
	}

	minX := clampInt(int(math.Floor(min3(v0.X, v1.X, v2.X))), 0, r.fb.Width-1)
	maxX := clampInt(int(math.Ceil(max3(v0.X, v1.X, v2.X))), 0, r.fb.Width-1)
	minY := clampInt(int(math.Floor(min3(v0.Y, v1.Y, v2.Y))), 0, r.fb.Height-1)
	maxY := clampInt(int(math.Ceil(max3(v0.Y, v1.Y, v2.Y))), 0, r.fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Edge i runs from vert[i] to vert[(i+1)%3].
	ax := [3]float64{v0.X, v1.X, v2.X}
	ay := [3]float64{v0.Y, v1.Y, v2.Y}
	bx := [3]float64{v1.X, v2.X, v0.X}
	by := [3]float64{v1.Y, v2.Y, v0.Y}

	var diffX, diffY, eRow [3]float64
	for i := range 3 {
		diffX[i] = ax[i] - bx[i]
		diffY[i] = ay[i] - by[i]
		eRow[i] = diffX[i]*(float64(minY)-ay[i]) - diffY[i]*(float64(minX)-ax[i])
	}

	invW := [3]float64{1 / v0.W, 1 / v1.W, 1 / v2.W}

	for y := minY; y <= maxY; y++ {
		e := eRow
		for x := minX; x <= maxX; x++ {
			e0, e1, e2 := e[0], e[1], e[2]
			inside := (e0 >= 0 && e1 >= 0 && e2 >= 0) ||
				(!r.BackFaceCulling && e0 <= 0 && e1 <= 0 && e2 <= 0)

			if inside {
				w0 := e1 / area
				w1 := e2 / area
				w2 := e0 / area

				depth := w0*v0.Z + w1*v1.Z + w2*v2.Z
				idx := y*r.fb.Width + x
				if depth < 1.0 && depth < r.fb.Depth[idx] {
					r.fb.Depth[idx] = depth
					denom := w0*invW[0] + w1*invW[1] + w2*invW[2]
					color := r.shadeFragment(w0, w1, w2, invW, denom, v0, v1, v2, texturable, u)
					r.fb.Pixels[idx] = PackRGBA(color)
				}
			}

			e[0] -= diffY[0]
			e[1] -= diffY[1]
			e[2] -= diffY[2]
		}
		eRow[0] += diffX[0]
		eRow[1] += diffX[1]
		eRow[2] += diffX[2]
	}
}

// shadeFragment produces the final color for one accepted pixel, branching
// on the active shading mode per the fragment-shader contract.
func (r *Rasterizer) shadeFragment(w0, w1, w2 float64, invW [3]float64, denom float64, v0, v1, v2 screenVertex, texturable bool, u *Uniforms) math3d.Vec3 {
	switch u.Shading {
	case Flat:
		return v0.Color
	case Gouraud:
		return interpVec3(w0, w1, w2, invW, denom, v0.Color, v1.Color, v2.Color)
	default: // Phong
		worldPos := interpVec3(w0, w1, w2, invW, denom, v0.WorldPosition, v1.WorldPosition, v2.WorldPosition)
		worldNormal := interpVec3(w0, w1, w2, invW, denom, v0.WorldNormal, v1.WorldNormal, v2.WorldNormal).Normalize()

		albedo := interpVec3(w0, w1, w2, invW, denom, v0.Color, v1.Color, v2.Color)
		if u.TexturingOn && texturable && r.texture != nil {
			uv := interpVec2(w0, w1, w2, invW, denom, v0.UV, v1.UV, v2.UV)
			albedo = r.texture.Sample(uv.X, uv.Y, u.TexCoordWrap, u.TexCoordWrap)
		}

		return phongReflection(u, worldPos, worldNormal, albedo)
	}
}

func interpVec3(w0, w1, w2 float64, invW [3]float64, denom float64, a0, a1, a2 math3d.Vec3) math3d.Vec3 {
	x := (w0*a0.X*invW[0] + w1*a1.X*invW[1] + w2*a2.X*invW[2]) / denom
	y := (w0*a0.Y*invW[0] + w1*a1.Y*invW[1] + w2*a2.Y*invW[2]) / denom
	z := (w0*a0.Z*invW[0] + w1*a1.Z*invW[1] + w2*a2.Z*invW[2]) / denom
	return math3d.V3(x, y, z)
}

func interpVec2(w0, w1, w2 float64, invW [3]float64, denom float64, a0, a1, a2 math3d.Vec2) math3d.Vec2 {
	x := (w0*a0.X*invW[0] + w1*a1.X*invW[1] + w2*a2.X*invW[2]) / denom
	y := (w0*a0.Y*invW[0] + w1*a1.Y*invW[1] + w2*a2.Y*invW[2]) / denom
	return math3d.V2(x, y)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
