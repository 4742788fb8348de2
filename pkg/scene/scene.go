// Package scene drives the per-frame state: camera update, the
// scene/solar-system object table, and uniform composition ahead of each
// draw call.
package scene

import (
	"math"

	"github.com/aurorasoft/pgr/pkg/camera"
	"github.com/aurorasoft/pgr/pkg/math3d"
	"github.com/aurorasoft/pgr/pkg/mesh"
	"github.com/aurorasoft/pgr/pkg/render"
)

const (
	zNear = 0.1
	zFar  = 500.0
)

var (
	sceneCameraPos = math3d.V3(-4.8, 2.56, 6.51)
	solarCameraPos = math3d.V3(-22, 15, 33)
)

// Input carries one frame's raw pointer/wheel deltas into Update.
type Input struct {
	MouseRelX, MouseRelY float64
	MouseWheel           float64
}

// Settings are the user-toggleable knobs the presenter's key bindings
// write; Scene reads them once per Update.
type Settings struct {
	Shading             render.ShadingMode
	SolarSystem         bool
	TexCoordWrap        render.WrapMode
	TexturingOn         bool
	Shininess           int
	SphereSubdivisions  int
	BackFaceCulling     bool
	Width, Height       int
}

// Object is one solar-system body: its physical parameters plus the
// orbit phase the scene advances every frame.
type Object struct {
	Color              math3d.Vec3
	Diameter           float64
	DistanceFromSun    float64
	OrbitalPeriod      float64
	CurrentSunRotation float64
	Mesh               *mesh.Mesh
}

// Scene owns every mesh, the rasterizer, the orbit camera, and the solar
// system's object table; it is the sole driver of a frame's draw calls.
type Scene struct {
	Settings Settings

	Camera     *camera.OrbitCamera
	Rasterizer *render.Rasterizer

	cubeMesh   *mesh.Mesh
	sphereMesh *mesh.Mesh
	bunnyMesh  *mesh.Mesh

	previousSolarSystem        bool
	previousSphereSubdivisions int

	Objects []Object

	time float64
}

// New builds a scene ready to render at width x height, with the defaults
// the original renderer initializes at startup.
func New(width, height int) *Scene {
	s := &Scene{
		Settings: Settings{
			Shading:            render.Flat,
			SolarSystem:        false,
			TexCoordWrap:       render.WrapRepeat,
			TexturingOn:        true,
			Shininess:          16,
			SphereSubdivisions: 20,
			BackFaceCulling:    true,
			Width:              width,
			Height:             height,
		},
		previousSphereSubdivisions: 20,
	}

	s.Rasterizer = render.NewRasterizer(width, height, zNear)
	s.Rasterizer.SetTexture(render.NewCheckerTexture(32))
	s.Rasterizer.BackFaceCulling = true

	s.Camera = camera.NewOrbitCamera(sceneCameraPos, math3d.Zero3(), math3d.V3(0, 1, 0))
	s.Camera.SetProjection(float64(width)/float64(height), 45, zNear, zFar)

	s.cubeMesh = mesh.MakeCubeCentered(2.0)
	s.sphereMesh = mesh.MakeUVSphere(20, math3d.V3(0, 0, 1))
	s.bunnyMesh = mesh.MakeBunnyMesh()

	s.Objects = newSolarSystem()

	return s
}

func newSolarSystem() []Object {
	type body struct {
		color                       math3d.Vec3
		diameter, dist, period float64
	}
	table := []body{
		{math3d.V3(252.0/255, 224.0/255, 32.0/255), 4.2, 0, 0},       // sun
		{math3d.V3(250.0/255, 251.0/255, 186.0/255), 0.8, 4, 0.241},  // mercury
		{math3d.V3(234.0/255, 201.0/255, 134.0/255), 1.2, 6, 0.615},  // venus
		{math3d.V3(51.0/255, 62.0/255, 91.0/255), 1.3, 8, 1.0},       // earth
		{math3d.V3(116.0/255, 18.0/255, 3.0/255), 0.7, 10, 1.88},     // mars
		{math3d.V3(125.0/255, 58.0/255, 26.0/255), 2.3, 13, 11.9},    // jupiter
		{math3d.V3(251.0/255, 238.0/255, 186.0/255), 2.1, 17, 29.4},  // saturn
		{math3d.V3(110.0/255, 207.0/255, 250.0/255), 1.8, 20, 83.7},  // uranus
		{math3d.V3(99.0/255, 138.0/255, 241.0/255), 1.6, 23, 163.7},  // neptune
	}

	objects := make([]Object, len(table))
	for i, b := range table {
		objects[i] = Object{
			Color:           b.color,
			Diameter:        b.diameter,
			DistanceFromSun: b.dist,
			OrbitalPeriod:   b.period,
			Mesh:            mesh.MakeUVSphere(20, b.color),
		}
	}
	return objects
}

// Update advances the camera, handles the scene/solar-system toggle
// (swapping camera preset and clear color), rebuilds the sphere mesh on
// a subdivision change, resizes the rasterizer on a size change, clears
// both buffers, and draws the frame's objects.
func (s *Scene) Update(dt float64, in Input) {
	s.Camera.Update(dt, in.MouseRelX, in.MouseRelY, in.MouseWheel)

	directionalLightOn := !s.Settings.SolarSystem
	if s.Settings.SolarSystem && !s.previousSolarSystem {
		s.previousSolarSystem = true
		s.Camera.SetView(solarCameraPos, math3d.Zero3(), math3d.V3(0, 1, 0))
	} else if !s.Settings.SolarSystem && s.previousSolarSystem {
		s.previousSolarSystem = false
		s.Camera.SetView(sceneCameraPos, math3d.Zero3(), math3d.V3(0, 1, 0))
	}

	clearColor := math3d.V3(0.05, 0.05, 0.05)
	if s.Settings.SolarSystem {
		clearColor = math3d.Zero3()
	}
	s.Rasterizer.ClearColor = clearColor

	if s.Settings.SphereSubdivisions != s.previousSphereSubdivisions {
		s.sphereMesh.Release()
		s.sphereMesh = mesh.MakeUVSphere(s.Settings.SphereSubdivisions, math3d.V3(0, 0, 1))
		s.previousSphereSubdivisions = s.Settings.SphereSubdivisions
	}

	if s.Settings.Width != s.Rasterizer.Width() || s.Settings.Height != s.Rasterizer.Height() {
		s.Camera.SetProjection(float64(s.Settings.Width)/float64(s.Settings.Height), 45, zNear, zFar)
		s.Rasterizer.Resize(s.Settings.Width, s.Settings.Height)
	}

	s.Rasterizer.BackFaceCulling = s.Settings.BackFaceCulling

	uniforms := &render.Uniforms{
		ViewMatrix:          s.Camera.ViewMatrix,
		WorldCameraPosition: s.Camera.Position,
		WorldLightDirection: math3d.V3(0, 0, -1).Normalize(),
		WorldLightPosition:  math3d.Zero3(),
		DirectionalLightOn:  directionalLightOn,
		Shading:             s.Settings.Shading,
		TexturingOn:         s.Settings.TexturingOn,
		Shininess:           s.Settings.Shininess,
		TexCoordWrap:        s.Settings.TexCoordWrap,
	}

	s.Rasterizer.Clear(render.ClearColor | render.ClearDepth)
	s.renderObjects(dt, uniforms)
}

func (s *Scene) renderObjects(dt float64, u *render.Uniforms) {
	viewProj := s.Camera.ProjectionMatrix

	if s.Settings.SolarSystem {
		for i := range s.Objects {
			obj := &s.Objects[i]
			u.SunMesh = i == 0

			if obj.OrbitalPeriod != 0 {
				obj.CurrentSunRotation += 1.5 * dt / obj.OrbitalPeriod
			}

			model := orbitModel(obj.Diameter, obj.DistanceFromSun, obj.CurrentSunRotation)
			u.ModelMatrix = model
			u.MVPMatrix = viewProj.Mul(s.Camera.ViewMatrix).Mul(model)
			s.Rasterizer.DrawTriangleMesh(obj.Mesh, u)
		}
		u.SunMesh = false
		return
	}

	cubeModel := math3d.Translate(math3d.V3(0, 0, -4))
	u.ModelMatrix = cubeModel
	u.MVPMatrix = viewProj.Mul(s.Camera.ViewMatrix).Mul(cubeModel)
	s.Rasterizer.DrawTriangleMesh(s.cubeMesh, u)

	sphereModel := math3d.Translate(math3d.V3(5, 0, 0)).
		Mul(math3d.ScaleUniform(2)).
		Mul(math3d.Rotate(math3d.V3(0, 1, 0), 1.8*s.time))
	u.ModelMatrix = sphereModel
	u.MVPMatrix = viewProj.Mul(s.Camera.ViewMatrix).Mul(sphereModel)
	s.Rasterizer.DrawTriangleMesh(s.sphereMesh, u)

	bunnyAxis := math3d.V3(math.Cos(s.time), math.Cos(s.time), math.Sin(s.time)).Normalize()
	bunnyModel := math3d.ScaleUniform(1.4).
		Mul(math3d.Rotate(bunnyAxis, 0.2*s.time))
	u.ModelMatrix = bunnyModel
	u.MVPMatrix = viewProj.Mul(s.Camera.ViewMatrix).Mul(bunnyModel)
	s.Rasterizer.DrawTriangleMesh(s.bunnyMesh, u)

	s.time += dt
}

func orbitModel(diameter, distanceFromSun, rotation float64) math3d.Mat4 {
	s := diameter / 2
	scaleMat := math3d.ScaleUniform(s)
	translMat := math3d.Translate(math3d.V3(1, 0, 0).Scale(distanceFromSun))
	rotateMat := math3d.Rotate(math3d.V3(0, 1, 0), rotation)
	return rotateMat.Mul(translMat).Mul(scaleMat)
}
