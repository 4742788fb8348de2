package render

import (
	"math"
	"testing"

	"github.com/aurorasoft/pgr/pkg/math3d"
	"github.com/aurorasoft/pgr/pkg/mesh"
)

func baseUniforms() *Uniforms {
	view := math3d.LookAt(math3d.V3(0, 0, 5), math3d.Zero3(), math3d.V3(0, 1, 0))
	proj := math3d.PerspectiveDeg(60, 1, 0.1, 100)
	return &Uniforms{
		ModelMatrix:         math3d.Identity(),
		ViewMatrix:          view,
		MVPMatrix:           proj.Mul(view),
		WorldCameraPosition: math3d.V3(0, 0, 5),
		WorldLightPosition:  math3d.V3(2, 2, 2),
		Shading:             Flat,
		TexturingOn:         false,
		Shininess:           16,
		TexCoordWrap:        WrapRepeat,
	}
}

func solidTriangle(color math3d.Vec3) *mesh.Mesh {
	m := &mesh.Mesh{}
	m.AddTriangle(
		mesh.Vertex{Position: math3d.V4(-1, -1, 0, 1), Normal: math3d.V3(0, 0, 1), ShadedColor: color},
		mesh.Vertex{Position: math3d.V4(1, -1, 0, 1), Normal: math3d.V3(0, 0, 1), ShadedColor: color},
		mesh.Vertex{Position: math3d.V4(0, 1, 0, 1), Normal: math3d.V3(0, 0, 1), ShadedColor: color},
	)
	return m
}

func TestDrawTriangleMeshFillsInterior(t *testing.T) {
	r := NewRasterizer(64, 64, 0.1)
	r.Clear(ClearColor | ClearDepth)
	u := baseUniforms()

	r.DrawTriangleMesh(solidTriangle(math3d.V3(1, 1, 1)), u)

	if r.fb.Pixels[32*64+32] == 0 {
		t.Fatalf("expected a lit pixel at the triangle's center, got background")
	}
}

func TestDepthTestOccludesFartherTriangle(t *testing.T) {
	r := NewRasterizer(32, 32, 0.1)
	r.Clear(ClearColor | ClearDepth)
	u := baseUniforms()

	near := solidTriangle(math3d.V3(1, 0, 0))
	near.Vertices[0].Position = math3d.V4(-1, -1, 1, 1)
	near.Vertices[1].Position = math3d.V4(1, -1, 1, 1)
	near.Vertices[2].Position = math3d.V4(0, 1, 1, 1)

	far := solidTriangle(math3d.V3(0, 0, 1))

	r.DrawTriangleMesh(near, u)
	r.DrawTriangleMesh(far, u)

	got := UnpackRGBA(r.fb.Pixels[16*32+16])
	if got.X < 0.5 {
		t.Fatalf("nearer (red) triangle should win the depth test, got %v", got)
	}
}

func TestDepthTestDoesNotOccludeNearerTriangle(t *testing.T) {
	r := NewRasterizer(32, 32, 0.1)
	r.Clear(ClearColor | ClearDepth)
	u := baseUniforms()

	far := solidTriangle(math3d.V3(0, 0, 1))

	near := solidTriangle(math3d.V3(1, 0, 0))
	near.Vertices[0].Position = math3d.V4(-1, -1, 1, 1)
	near.Vertices[1].Position = math3d.V4(1, -1, 1, 1)
	near.Vertices[2].Position = math3d.V4(0, 1, 1, 1)

	r.DrawTriangleMesh(far, u)
	r.DrawTriangleMesh(near, u)

	got := UnpackRGBA(r.fb.Pixels[16*32+16])
	if got.X < 0.5 {
		t.Fatalf("nearer (red) triangle drawn second should still win, got %v", got)
	}
}

func TestBackFaceCullingSkipsReversedWinding(t *testing.T) {
	r := NewRasterizer(32, 32, 0.1)
	r.BackFaceCulling = true
	r.Clear(ClearColor | ClearDepth)
	u := baseUniforms()

	m := &mesh.Mesh{}
	m.AddTriangle(
		mesh.Vertex{Position: math3d.V4(0, 1, 0, 1), Normal: math3d.V3(0, 0, 1), ShadedColor: math3d.V3(1, 1, 1)},
		mesh.Vertex{Position: math3d.V4(1, -1, 0, 1), Normal: math3d.V3(0, 0, 1), ShadedColor: math3d.V3(1, 1, 1)},
		mesh.Vertex{Position: math3d.V4(-1, -1, 0, 1), Normal: math3d.V3(0, 0, 1), ShadedColor: math3d.V3(1, 1, 1)},
	)

	r.DrawTriangleMesh(m, u)

	if r.fb.Pixels[16*32+16] != 0 {
		t.Fatalf("back-facing triangle should have been culled")
	}
}

func TestTextureWrapModes(t *testing.T) {
	tex := NewCheckerTexture(16)

	clampHigh := tex.Sample(1.5, 0.5, WrapClamp, WrapClamp)
	edgeHigh := tex.Sample(1.0, 0.5, WrapClamp, WrapClamp)
	if clampHigh != edgeHigh {
		t.Fatalf("Clamp should pin u>1 to the edge sample, got %v want %v", clampHigh, edgeHigh)
	}

	repeatHigh := tex.Sample(1.25, 0.5, WrapRepeat, WrapRepeat)
	wrapped := tex.Sample(0.25, 0.5, WrapRepeat, WrapRepeat)
	if repeatHigh != wrapped {
		t.Fatalf("Repeat should wrap u=1.25 to u=0.25, got %v want %v", repeatHigh, wrapped)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	c := math3d.V3(0.2, 0.6, 0.9)
	got := UnpackRGBA(PackRGBA(c))
	if math.Abs(got.X-c.X) > 1.0/255 || math.Abs(got.Y-c.Y) > 1.0/255 || math.Abs(got.Z-c.Z) > 1.0/255 {
		t.Fatalf("pack/unpack round trip drifted: got %v want %v", got, c)
	}
}

func TestClearFillsWholeWord(t *testing.T) {
	r := NewRasterizer(4, 4, 0.1)
	r.ClearColor = math3d.V3(1, 0, 0)
	r.Clear(ClearColor)

	want := PackRGBA(math3d.V3(1, 0, 0))
	for i, p := range r.fb.Pixels {
		if p != want {
			t.Fatalf("pixel %d = %#x, want %#x", i, p, want)
		}
	}
}

func TestDrawLineMeshUsesSecondVertexColor(t *testing.T) {
	r := NewRasterizer(32, 32, 0.1)
	r.Clear(ClearColor | ClearDepth)
	u := baseUniforms()

	m := &mesh.Mesh{}
	m.AddLine(
		mesh.Vertex{Position: math3d.V4(-1, 0, 0, 1), ShadedColor: math3d.V3(1, 0, 0)},
		mesh.Vertex{Position: math3d.V4(1, 0, 0, 1), ShadedColor: math3d.V3(0, 1, 0)},
	)

	r.DrawLineMesh(m, u)

	found := false
	for _, p := range r.fb.Pixels {
		if p == PackRGBA(math3d.V3(0, 1, 0)) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected the line to be colored with the second vertex's color")
	}
}
