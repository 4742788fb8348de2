// Package mesh builds the expanded triangle and line meshes consumed by
// the rasterizer: cubes, UV-spheres, planes, axes, normal-visualization
// lines, and the bundled bunny.
package mesh

import "github.com/aurorasoft/pgr/pkg/math3d"

// Vertex bundles per-vertex geometry with the three interpolants written
// by the vertex shader and consumed by rasterization: ShadedColor,
// WorldPosition, and WorldNormal. Meshes that are never shaded per-vertex
// (lines, axes, the plane) set ShadedColor once at build time and leave
// the other two interpolants zero.
type Vertex struct {
	Position      math3d.Vec4
	TexCoords     math3d.Vec2
	Normal        math3d.Vec3
	ShadedColor   math3d.Vec3
	WorldPosition math3d.Vec3
	WorldNormal   math3d.Vec3
}

// Mesh is an expanded vertex list: three consecutive vertices form one
// triangle for a triangle mesh, two consecutive vertices form one line
// segment for a line mesh. There is no index buffer. A Mesh owns its
// vertex storage.
type Mesh struct {
	Vertices     []Vertex
	IsTexturable bool
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns len(Vertices)/3. The caller is responsible for
// only calling this on triangle meshes.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// LineCount returns len(Vertices)/2. The caller is responsible for only
// calling this on line meshes.
func (m *Mesh) LineCount() int {
	return len(m.Vertices) / 2
}

// Clone returns a mesh with independently owned vertex storage; mutating
// the clone never affects the original.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices:     make([]Vertex, len(m.Vertices)),
		IsTexturable: m.IsTexturable,
	}
	copy(out.Vertices, m.Vertices)
	return out
}

// Release drops the mesh's vertex storage. Meshes are ordinary Go values
// managed by the garbage collector, but the pipeline still calls Release
// where a Mesh is discarded (clip temporaries, sphere mesh rebuilds) so
// ownership transfers stay explicit; a released mesh has no vertices.
func (m *Mesh) Release() {
	m.Vertices = nil
}

// AddTriangle appends one CCW triangle to the mesh.
func (m *Mesh) AddTriangle(v0, v1, v2 Vertex) {
	m.Vertices = append(m.Vertices, v0, v1, v2)
}

// AddLine appends one line segment to the mesh.
func (m *Mesh) AddLine(v0, v1 Vertex) {
	m.Vertices = append(m.Vertices, v0, v1)
}
