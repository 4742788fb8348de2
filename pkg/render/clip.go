package render

import (
	"github.com/aurorasoft/pgr/pkg/math3d"
	"github.com/aurorasoft/pgr/pkg/mesh"
)

// lerpVertex interpolates every attribute of a and b by t, resetting
// Position.W to 1 as required after clipping against the near plane.
func lerpVertex(a, b mesh.Vertex, t float64) mesh.Vertex {
	pos := a.Position.Vec3().Lerp(b.Position.Vec3(), t)
	return mesh.Vertex{
		Position:      math3d.V4FromV3(pos, 1),
		TexCoords:     a.TexCoords.Lerp(b.TexCoords, t),
		Normal:        a.Normal.Lerp(b.Normal, t),
		ShadedColor:   a.ShadedColor.Lerp(b.ShadedColor, t),
		WorldPosition: a.WorldPosition.Lerp(b.WorldPosition, t),
		WorldNormal:   a.WorldNormal.Lerp(b.WorldNormal, t),
	}
}

// clipTriangleNear clips one triangle, already transformed into view
// space, against the plane z = zNear (zNear < 0). It returns zero, one,
// or two triangles, in all cases preserving CCW winding.
//
// The single-inside-vertex case below identifies "which vertex is
// inside" by finding the lone false entry in outside[]; this is the
// same selection the original rasterizer makes via a pairwise bitwise
// AND of OUTSIDE flags (codes[1]&codes[2] => vertex 0 is inside), just
// expressed as a loop instead of three hardcoded branches.
func clipTriangleNear(tri [3]mesh.Vertex, zNear float64) [][3]mesh.Vertex {
	var outside [3]bool
	outCount := 0
	for i, v := range tri {
		outside[i] = v.Position.Z > zNear
		if outside[i] {
			outCount++
		}
	}

	switch outCount {
	case 0:
		return [][3]mesh.Vertex{tri}
	case 3:
		return nil
	case 2:
		in := 0
		for i, o := range outside {
			if !o {
				in = i
				break
			}
		}
		a := tri[(in+1)%3]
		b := tri[(in+2)%3]
		n := tri[in]

		tA := (a.Position.Z - zNear) / (a.Position.Z - n.Position.Z)
		tB := (b.Position.Z - zNear) / (b.Position.Z - n.Position.Z)

		return [][3]mesh.Vertex{{n, lerpVertex(a, n, tA), lerpVertex(b, n, tB)}}
	default: // 1
		out := 0
		for i, o := range outside {
			if o {
				out = i
				break
			}
		}
		a := tri[(out+2)%3] // predecessor, inside
		c := tri[out]       // outside
		b := tri[(out+1)%3] // successor, inside

		tA := (c.Position.Z - zNear) / (c.Position.Z - a.Position.Z)
		tB := (c.Position.Z - zNear) / (c.Position.Z - b.Position.Z)
		cA := lerpVertex(c, a, tA)
		cB := lerpVertex(c, b, tB)

		return [][3]mesh.Vertex{{a, cA, b}, {b, cA, cB}}
	}
}

// clipMeshNear transforms m's vertices by modelView, clips every triangle
// against the near plane, then transforms the surviving vertices back by
// the inverse of modelView so the rest of the pipeline can uniformly
// reapply the MVP matrix. The returned mesh may have up to 2x the input
// triangle count.
func clipMeshNear(m *mesh.Mesh, modelView math3d.Mat4, zNear float64) *mesh.Mesh {
	inv := modelView.Inverse()
	out := &mesh.Mesh{IsTexturable: m.IsTexturable}
	out.Vertices = make([]mesh.Vertex, 0, 2*len(m.Vertices))

	for i := 0; i+2 < len(m.Vertices); i += 3 {
		var tri [3]mesh.Vertex
		for j := range 3 {
			v := m.Vertices[i+j]
			v.Position = math3d.V4FromV3(modelView.MulVec3(v.Position.Vec3()), 1)
			tri[j] = v
		}

		for _, clipped := range clipTriangleNear(tri, zNear) {
			for _, v := range clipped {
				v.Position = math3d.V4FromV3(inv.MulVec3(v.Position.Vec3()), 1)
				out.Vertices = append(out.Vertices, v)
			}
		}
	}

	return out
}
