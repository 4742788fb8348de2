package mesh

import (
	"math"

	"github.com/aurorasoft/pgr/pkg/math3d"
)

func vertex(pos math3d.Vec4, uv math3d.Vec2, normal, color math3d.Vec3) Vertex {
	return Vertex{Position: pos, TexCoords: uv, Normal: normal, ShadedColor: color}
}

// MakeTriangle returns a single CCW triangle. The build order intentionally
// differs from the vertex declaration order (v1, v2, v0), matching the
// original bundled mesh table.
func MakeTriangle() *Mesh {
	v0 := vertex(math3d.V4(0, 0, -1, 1), math3d.Vec2{}, math3d.Vec3{}, math3d.Vec3{})
	v1 := vertex(math3d.V4(-1, 0, 1, 1), math3d.Vec2{}, math3d.Vec3{}, math3d.Vec3{})
	v2 := vertex(math3d.V4(0, 0, 1, 1), math3d.Vec2{}, math3d.Vec3{}, math3d.Vec3{})

	m := &Mesh{IsTexturable: false}
	m.Vertices = []Vertex{v1, v2, v0}
	return m
}

// MakeCubeCentered builds a 36-vertex axis-aligned cube of the given edge
// length, centered at the origin. Texture coordinates deliberately range
// up to 1.5 on each face to exercise wrap and clamp sampling, and every
// vertex carries a preset ShadedColor even though the mesh is texturable
// (ShadedColor is the albedo for Flat and Gouraud shading, and for Phong
// shading when texturing is off).
func MakeCubeCentered(edgeSize float64) *Mesh {
	s := edgeSize
	h := s / 2

	type cv struct {
		pos    math3d.Vec4
		uv     math3d.Vec2
		normal math3d.Vec3
		color  math3d.Vec3
	}

	raw := []cv{
		// Front
		{math3d.V4(-h, -h, h, 1), math3d.V2(1.5, 0), math3d.V3(0, 0, 1), math3d.V3(0.5, 0, 0)},
		{math3d.V4(h, -h, h, 1), math3d.V2(0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 0.5, 0)},
		{math3d.V4(h, h, h, 1), math3d.V2(0, 1.5), math3d.V3(0, 0, 1), math3d.V3(0, 0, 0.5)},
		{math3d.V4(h, h, h, 1), math3d.V2(0, 1.5), math3d.V3(0, 0, 1), math3d.V3(0, 0, 0.5)},
		{math3d.V4(-h, h, h, 1), math3d.V2(1.5, 1.5), math3d.V3(0, 0, 1), math3d.V3(0, 0.5, 0)},
		{math3d.V4(-h, -h, h, 1), math3d.V2(1.5, 0), math3d.V3(0, 0, 1), math3d.V3(0.5, 0, 0)},

		// Top
		{math3d.V4(-h, h, h, 1), math3d.V2(0, 0), math3d.V3(0, 1, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(h, h, h, 1), math3d.V2(1.5, 0), math3d.V3(0, 1, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(h, h, -h, 1), math3d.V2(1.5, 1.5), math3d.V3(0, 1, 0), math3d.V3(0, 0, 0.5)},
		{math3d.V4(h, h, -h, 1), math3d.V2(1.5, 1.5), math3d.V3(0, 1, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(-h, h, -h, 1), math3d.V2(0, 1.5), math3d.V3(0, 1, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(-h, h, h, 1), math3d.V2(0, 0), math3d.V3(0, 1, 0), math3d.V3(0, 0, 0.5)},

		// Back
		{math3d.V4(h, -h, -h, 1), math3d.V2(1.5, 0), math3d.V3(0, 0, -1), math3d.V3(0, 0, 0.5)},
		{math3d.V4(-h, -h, -h, 1), math3d.V2(0, 0), math3d.V3(0, 0, -1), math3d.V3(0, 0.5, 0)},
		{math3d.V4(-h, h, -h, 1), math3d.V2(0, 1.5), math3d.V3(0, 0, -1), math3d.V3(0, 0, 0.5)},
		{math3d.V4(-h, h, -h, 1), math3d.V2(0, 1.5), math3d.V3(0, 0, -1), math3d.V3(0, 0, 0.5)},
		{math3d.V4(h, h, -h, 1), math3d.V2(1.5, 1.5), math3d.V3(0, 0, -1), math3d.V3(0, 0.5, 0)},
		{math3d.V4(h, -h, -h, 1), math3d.V2(1.5, 0), math3d.V3(0, 0, -1), math3d.V3(0, 0, 0.5)},

		// Bottom
		{math3d.V4(-h, -h, -h, 1), math3d.V2(0, 1.5), math3d.V3(0, -1, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(h, -h, -h, 1), math3d.V2(1.5, 1.5), math3d.V3(0, -1, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(h, -h, h, 1), math3d.V2(1.5, 0), math3d.V3(0, -1, 0), math3d.V3(0, 0, 0.5)},
		{math3d.V4(h, -h, h, 1), math3d.V2(1.5, 0), math3d.V3(0, -1, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(-h, -h, h, 1), math3d.V2(0, 0), math3d.V3(0, -1, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(-h, -h, -h, 1), math3d.V2(0, 1.5), math3d.V3(0, -1, 0), math3d.V3(0, 0, 0.5)},

		// Right
		{math3d.V4(h, -h, h, 1), math3d.V2(0, 0), math3d.V3(1, 0, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(h, -h, -h, 1), math3d.V2(1.5, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(h, h, -h, 1), math3d.V2(1.5, 1.5), math3d.V3(1, 0, 0), math3d.V3(0, 0, 0.5)},
		{math3d.V4(h, h, -h, 1), math3d.V2(1.5, 1.5), math3d.V3(1, 0, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(h, h, h, 1), math3d.V2(0, 1.5), math3d.V3(1, 0, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(h, -h, h, 1), math3d.V2(0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, 0.5)},

		// Left
		{math3d.V4(-h, -h, -h, 1), math3d.V2(0, 0), math3d.V3(-1, 0, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(-h, -h, h, 1), math3d.V2(1.5, 0), math3d.V3(-1, 0, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(-h, h, h, 1), math3d.V2(1.5, 1.5), math3d.V3(-1, 0, 0), math3d.V3(0, 0, 0.5)},
		{math3d.V4(-h, h, h, 1), math3d.V2(1.5, 1.5), math3d.V3(-1, 0, 0), math3d.V3(0.5, 0, 0)},
		{math3d.V4(-h, h, -h, 1), math3d.V2(0, 1.5), math3d.V3(-1, 0, 0), math3d.V3(0, 0.5, 0)},
		{math3d.V4(-h, -h, -h, 1), math3d.V2(0, 0), math3d.V3(-1, 0, 0), math3d.V3(0, 0, 0.5)},
	}

	m := &Mesh{IsTexturable: true, Vertices: make([]Vertex, len(raw))}
	for i, c := range raw {
		m.Vertices[i] = vertex(c.pos, c.uv, c.normal, c.color)
	}
	return m
}

func sphericalToCartesian(r, phi, theta float64) math3d.Vec4 {
	return math3d.V4(
		r*math.Sin(theta)*math.Sin(phi),
		r*math.Cos(phi),
		r*math.Cos(theta)*math.Sin(phi),
		1,
	)
}

// MakeUVSphere builds a unit UV-sphere centered at the origin with the
// given number of stacks and slices (both equal to subdivisions). The
// first and last stacks emit one triangle per slice (a degenerate-free
// pole fan); every other stack emits two. Total triangle count is
// 2*subdivisions^2 - 2*subdivisions.
func MakeUVSphere(subdivisions int, color math3d.Vec3) *Mesh {
	stacks := subdivisions
	slices := subdivisions
	const r = 1.0
	center := math3d.Zero3()

	m := &Mesh{IsTexturable: false}
	m.Vertices = make([]Vertex, 0, 3*(slices*2+(stacks-2)*slices*2))

	mkv := func(pos math3d.Vec4) Vertex {
		n := pos.Vec3().Sub(center).Normalize()
		return vertex(pos, math3d.Vec2{}, n, color)
	}

	for p := range stacks {
		phi1 := float64(p) / float64(stacks) * math.Pi
		phi2 := float64(p+1) / float64(stacks) * math.Pi

		for t := range slices {
			theta1 := float64(t) / float64(slices) * 2 * math.Pi
			theta2 := float64(t+1) / float64(slices) * 2 * math.Pi

			v1 := mkv(sphericalToCartesian(r, phi1, theta1))
			v2 := mkv(sphericalToCartesian(r, phi2, theta1))
			v3 := mkv(sphericalToCartesian(r, phi2, theta2))
			v4 := mkv(sphericalToCartesian(r, phi1, theta2))

			switch {
			case p == 0:
				m.AddTriangle(v1, v2, v3)
			case p+1 == stacks:
				m.AddTriangle(v2, v4, v1)
			default:
				m.AddTriangle(v1, v2, v3)
				m.AddTriangle(v3, v4, v1)
			}
		}
	}

	return m
}

// MakePlaneMesh builds 60 parallel line segments along x, spanning
// [-2.5, 2.5] in x in the z=0 plane, colored blue. The y step is
// span/numberOfLines applied per line index starting at y = -2.5, so
// the last line sits one step short of y = +2.5 — a quirk of the
// original layout preserved here rather than "fixed".
func MakePlaneMesh() *Mesh {
	const numberOfLines = 60
	const span = 5.0
	blue := math3d.V3(0, 0, 1)

	m := &Mesh{IsTexturable: false}
	m.Vertices = make([]Vertex, 0, numberOfLines*2)

	for i := range numberOfLines {
		y := -(span / 2) + float64(i)*(span/numberOfLines)
		start := vertex(math3d.V4(span/2, y, 0, 1), math3d.Vec2{}, math3d.Vec3{}, blue)
		end := vertex(math3d.V4(-span/2, y, 0, 1), math3d.Vec2{}, math3d.Vec3{}, blue)
		m.AddLine(start, end)
	}

	return m
}

// MakeWorldAxesMesh emits three line segments from the origin to each
// unit basis axis. The z-axis color assignment bug from the original
// mesh builder is preserved: the intended z.ShadedColor write instead
// re-overwrites x's color, so x ends up green and z stays black.
func MakeWorldAxesMesh() *Mesh {
	const axisLength = 3.0

	center := vertex(math3d.V4(0, 0, 0, 1), math3d.Vec2{}, math3d.Vec3{}, math3d.Vec3{})
	x := vertex(math3d.V4(axisLength, 0, 0, 1), math3d.Vec2{}, math3d.Vec3{}, math3d.V3(1, 0, 0))
	y := vertex(math3d.V4(0, axisLength, 0, 1), math3d.Vec2{}, math3d.Vec3{}, math3d.V3(0, 1, 0))
	z := vertex(math3d.V4(0, 0, axisLength, 1), math3d.Vec2{}, math3d.Vec3{}, math3d.Vec3{})
	x.ShadedColor = math3d.V3(0, 1, 0)

	m := &Mesh{IsTexturable: false}
	m.Vertices = []Vertex{center, x, center, y, center, z}
	return m
}

// MakeNormalMesh returns a line mesh of length 2*len(original.Vertices)
// visualizing each vertex's normal as a yellow segment of the given
// length starting at the vertex position.
func MakeNormalMesh(original *Mesh, normalLength float64) *Mesh {
	m := &Mesh{IsTexturable: false}
	m.Vertices = make([]Vertex, 0, 2*len(original.Vertices))
	yellow := math3d.V3(1, 1, 0)

	for _, v := range original.Vertices {
		start := vertex(v.Position, math3d.Vec2{}, math3d.Vec3{}, yellow)
		endPos := v.Position.Add(math3d.V4FromV3(v.Normal.Normalize(), 0).Scale(normalLength))
		end := vertex(endPos, math3d.Vec2{}, math3d.Vec3{}, yellow)
		m.AddLine(start, end)
	}

	return m
}
