package render

import (
	"math"
	"testing"

	"github.com/aurorasoft/pgr/pkg/math3d"
	"github.com/aurorasoft/pgr/pkg/mesh"
)

const clipEpsilon = 1e-5

func clipVertex(x, y, z float64) mesh.Vertex {
	return mesh.Vertex{
		Position:    math3d.V4(x, y, z, 1),
		Normal:      math3d.V3(0, 0, 1),
		ShadedColor: math3d.V3(1, 1, 1),
	}
}

// triNormal returns the face normal implied by vertex order, used to
// check that a clip result preserves winding: a CCW triangle's normal
// should never flip to point the opposite way after clipping.
func triNormal(tri [3]mesh.Vertex) math3d.Vec3 {
	a, b, c := tri[0].Position.Vec3(), tri[1].Position.Vec3(), tri[2].Position.Vec3()
	return b.Sub(a).Cross(c.Sub(a))
}

func TestClipTriangleNearAllInsideReturnsUnchanged(t *testing.T) {
	tri := [3]mesh.Vertex{
		clipVertex(-1, -1, -2),
		clipVertex(1, -1, -2),
		clipVertex(0, 1, -2),
	}

	got := clipTriangleNear(tri, -1)

	if len(got) != 1 {
		t.Fatalf("expected 1 triangle for an all-inside triangle, got %d", len(got))
	}
	if got[0] != tri {
		t.Fatalf("all-inside triangle should be returned unmodified: got %+v want %+v", got[0], tri)
	}
}

func TestClipTriangleNearAllOutsideReturnsNothing(t *testing.T) {
	tri := [3]mesh.Vertex{
		clipVertex(-1, -1, 0),
		clipVertex(1, -1, 0),
		clipVertex(0, 1, 0),
	}

	got := clipTriangleNear(tri, -1)

	if len(got) != 0 {
		t.Fatalf("expected no triangles for an all-outside triangle, got %d", len(got))
	}
}

func TestClipTriangleNearOneOutsideSplitsIntoTwo(t *testing.T) {
	// Two vertices inside (z=-2 <= zNear=-1), one outside (z=0 > zNear).
	tri := [3]mesh.Vertex{
		clipVertex(-1, -1, -2),
		clipVertex(1, -1, -2),
		clipVertex(0, 1, 0),
	}

	got := clipTriangleNear(tri, -1)

	if len(got) != 2 {
		t.Fatalf("expected 2 triangles from the one-outside-vertex split, got %d", len(got))
	}

	wantNormal := triNormal(tri)
	for i, out := range got {
		if n := triNormal(out); n.Dot(wantNormal) <= 0 {
			t.Fatalf("triangle %d has flipped winding: normal %v, want same sign as %v", i, n, wantNormal)
		}
		for _, v := range out {
			if v.Position.Z > -1+clipEpsilon {
				t.Fatalf("clipped vertex %v lies in front of the near plane z=-1", v.Position)
			}
		}
	}
}

func TestClipTriangleNearTwoOutsideSplitsIntoOne(t *testing.T) {
	// One vertex inside (z=-2 <= zNear=-1), two outside (z=0 > zNear).
	tri := [3]mesh.Vertex{
		clipVertex(0, 1, -2),
		clipVertex(1, -1, 0),
		clipVertex(-1, -1, 0),
	}

	got := clipTriangleNear(tri, -1)

	if len(got) != 1 {
		t.Fatalf("expected 1 triangle from the two-outside-vertex split, got %d", len(got))
	}

	wantNormal := triNormal(tri)
	if n := triNormal(got[0]); n.Dot(wantNormal) <= 0 {
		t.Fatalf("clipped triangle has flipped winding: normal %v, want same sign as %v", n, wantNormal)
	}

	for _, v := range got[0] {
		if v.Position.Z > -1+clipEpsilon {
			t.Fatalf("clipped vertex %v lies in front of the near plane z=-1", v.Position)
		}
	}
}

func TestClipTriangleNearNewVerticesLieOnPlane(t *testing.T) {
	const zNear = -1.0
	tri := [3]mesh.Vertex{
		clipVertex(-1, -1, -2),
		clipVertex(1, -1, -2),
		clipVertex(0, 1, 1),
	}

	got := clipTriangleNear(tri, zNear)
	if len(got) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(got))
	}

	found := false
	for _, out := range got {
		for _, v := range out {
			if math.Abs(v.Position.Z-zNear) < clipEpsilon {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected at least one interpolated vertex exactly on z=%v, got %+v", zNear, got)
	}
}
