package mesh

import "github.com/aurorasoft/pgr/pkg/math3d"

// bunnyVertex mirrors the original bundled vertex table layout: a
// position and a normal. The placeholder table below fills only the
// position; MakeBunnyMesh does not read normal.
type bunnyVertex struct {
	position [3]float64
	normal   [3]float64
}

// bunnyVertices and bunnyIndices stand in for the original's bundled
// high-resolution bunny vertex table (2092 triangles, not part of this
// repository's retrieved sources). This is a low-poly faceted placeholder
// of the same shape (an icosahedron, per-face flat normals) treated the
// same way the original treats its table: opaque static input data,
// indexed into an expanded triangle mesh at load time.
var bunnyVertices = func() []bunnyVertex {
	const t = 1.6180339887498949 // golden ratio, for regular icosahedron vertices

	raw := [12][3]float64{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}

	out := make([]bunnyVertex, 12)
	for i, p := range raw {
		v := math3d.V3(p[0], p[1], p[2]).Normalize()
		out[i] = bunnyVertex{position: [3]float64{v.X, v.Y, v.Z}}
	}
	return out
}()

var bunnyIndices = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// MakeBunnyMesh expands the bundled bunny table into a triangle mesh,
// computing a flat face normal per triangle (the original table carries
// per-vertex normals; this placeholder shape carries per-vertex
// positions only, so the normal is derived at expansion time) and a
// constant red ShadedColor, matching the original loader.
func MakeBunnyMesh() *Mesh {
	red := math3d.V3(1, 0, 0)

	m := &Mesh{IsTexturable: false}
	m.Vertices = make([]Vertex, 0, len(bunnyIndices)*3)

	for _, face := range bunnyIndices {
		p0 := bunnyVertices[face[0]].position
		p1 := bunnyVertices[face[1]].position
		p2 := bunnyVertices[face[2]].position

		v0 := math3d.V3(p0[0], p0[1], p0[2])
		v1 := math3d.V3(p1[0], p1[1], p1[2])
		v2 := math3d.V3(p2[0], p2[1], p2[2])
		n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

		m.AddTriangle(
			vertex(math3d.V4FromV3(v0, 1), math3d.Vec2{}, n, red),
			vertex(math3d.V4FromV3(v1, 1), math3d.Vec2{}, n, red),
			vertex(math3d.V4FromV3(v2, 1), math3d.Vec2{}, n, red),
		)
	}

	return m
}
