package render

import "github.com/aurorasoft/pgr/pkg/math3d"

// ShadingMode selects where the Phong reflection equation is evaluated.
type ShadingMode int

const (
	Flat ShadingMode = iota
	Gouraud
	Phong
)

// String implements fmt.Stringer, backing the HUD's shading-mode label.
func (s ShadingMode) String() string {
	switch s {
	case Flat:
		return "Flat"
	case Gouraud:
		return "Gouraud"
	case Phong:
		return "Phong"
	default:
		return ""
	}
}

// Uniforms is the parameter record every draw call reads. The scene
// builds one per frame, rewrites its per-object fields (model and MVP
// matrices, SunMesh) before each draw, and passes it explicitly to
// DrawTriangleMesh/DrawLineMesh; there is no process-wide instance.
type Uniforms struct {
	ModelMatrix  math3d.Mat4
	ViewMatrix   math3d.Mat4
	MVPMatrix    math3d.Mat4

	WorldCameraPosition math3d.Vec3
	WorldLightDirection math3d.Vec3
	WorldLightPosition  math3d.Vec3
	DirectionalLightOn  bool
	SunMesh             bool

	Shading      ShadingMode
	TexturingOn  bool
	Shininess    int
	TexCoordWrap WrapMode
}
