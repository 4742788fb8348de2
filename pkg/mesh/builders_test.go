package mesh

import (
	"math"
	"testing"

	"github.com/aurorasoft/pgr/pkg/math3d"
)

func TestMakeCubeCentered(t *testing.T) {
	m := MakeCubeCentered(2.0)

	if got := m.VertexCount(); got != 36 {
		t.Fatalf("VertexCount() = %d, want 36", got)
	}
	if !m.IsTexturable {
		t.Error("cube mesh should be texturable")
	}

	for tri := range m.TriangleCount() {
		v0, v1, v2 := m.Vertices[tri*3], m.Vertices[tri*3+1], m.Vertices[tri*3+2]
		if v0.Normal != v1.Normal || v1.Normal != v2.Normal {
			t.Errorf("triangle %d has mismatched face normals: %v %v %v", tri, v0.Normal, v1.Normal, v2.Normal)
		}

		n := v0.Normal
		axesAtUnit := 0
		for _, c := range []float64{n.X, n.Y, n.Z} {
			if math.Abs(math.Abs(c)-1) < 1e-9 {
				axesAtUnit++
			} else if math.Abs(c) > 1e-9 {
				t.Errorf("triangle %d normal %v has a non-zero, non-unit component", tri, n)
			}
		}
		if axesAtUnit != 1 {
			t.Errorf("triangle %d normal %v should be +-1 on exactly one axis", tri, n)
		}
	}
}

func TestMakeUVSphereTriangleCount(t *testing.T) {
	for _, n := range []int{4, 8, 20} {
		m := MakeUVSphere(n, math3d.V3(1, 1, 1))
		want := 2*n*n - 2*n
		if got := m.TriangleCount(); got != want {
			t.Errorf("subdivisions=%d: TriangleCount() = %d, want %d", n, got, want)
		}
		for _, v := range m.Vertices {
			if l := v.Position.Vec3().Len(); math.Abs(l-1) > 1e-9 {
				t.Errorf("subdivisions=%d: vertex position %v has length %f, want 1", n, v.Position, l)
			}
		}
	}
}

func TestMakeWorldAxesColorBug(t *testing.T) {
	m := MakeWorldAxesMesh()
	if m.VertexCount() != 6 {
		t.Fatalf("VertexCount() = %d, want 6", m.VertexCount())
	}

	x := m.Vertices[1]
	z := m.Vertices[5]

	if x.ShadedColor != math3d.V3(0, 1, 0) {
		t.Errorf("x-axis vertex color = %v, want green (the preserved overwrite bug)", x.ShadedColor)
	}
	if z.ShadedColor != (math3d.Vec3{}) {
		t.Errorf("z-axis vertex color = %v, want zero (the preserved never-assigned bug)", z.ShadedColor)
	}
}

func TestMakePlaneMesh(t *testing.T) {
	m := MakePlaneMesh()
	if m.LineCount() != 60 {
		t.Fatalf("LineCount() = %d, want 60", m.LineCount())
	}
	for _, v := range m.Vertices {
		if v.ShadedColor != math3d.V3(0, 0, 1) {
			t.Errorf("plane vertex color = %v, want blue", v.ShadedColor)
		}
	}
}

func TestMeshClone(t *testing.T) {
	m := MakeTriangle()
	clone := m.Clone()

	if m.VertexCount() != clone.VertexCount() {
		t.Fatalf("clone has different vertex count")
	}
	for i := range m.Vertices {
		if m.Vertices[i] != clone.Vertices[i] {
			t.Fatalf("clone vertex %d differs from original", i)
		}
	}

	clone.Vertices[0].ShadedColor = math3d.V3(9, 9, 9)
	if m.Vertices[0].ShadedColor == math3d.V3(9, 9, 9) {
		t.Fatal("mutating the clone affected the original's storage")
	}
}

func TestMakeNormalMesh(t *testing.T) {
	src := MakeCubeCentered(2.0)
	lines := MakeNormalMesh(src, 1.0)

	if lines.LineCount() != src.VertexCount() {
		t.Fatalf("LineCount() = %d, want %d", lines.LineCount(), src.VertexCount())
	}
}

func TestMakeNormalMeshNormalizesNonUnitNormal(t *testing.T) {
	src := &Mesh{Vertices: []Vertex{
		vertex(math3d.V4(1, 2, 3, 1), math3d.Vec2{}, math3d.V3(0, 5, 0), math3d.Vec3{}),
	}}

	lines := MakeNormalMesh(src, 2.0)
	if lines.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", lines.LineCount())
	}

	start, end := lines.Vertices[0], lines.Vertices[1]
	if start.Position != src.Vertices[0].Position {
		t.Fatalf("line start = %v, want %v", start.Position, src.Vertices[0].Position)
	}

	want := src.Vertices[0].Position.Add(math3d.V4FromV3(math3d.V3(0, 1, 0), 0).Scale(2.0))
	if end.Position != want {
		t.Fatalf("line end = %v, want %v (normal scaled after normalizing, not before)", end.Position, want)
	}
}

func TestMakeBunnyMesh(t *testing.T) {
	m := MakeBunnyMesh()
	if m.VertexCount()%3 != 0 {
		t.Fatalf("bunny mesh vertex count %d is not a multiple of 3", m.VertexCount())
	}
	for _, v := range m.Vertices {
		if v.ShadedColor != math3d.V3(1, 0, 0) {
			t.Errorf("bunny vertex color = %v, want red", v.ShadedColor)
		}
	}
}
