// Package camera implements the target-locked orbit camera: it always
// looks at its target and only ever moves around it, driven by mouse
// delta and scroll input each frame.
package camera

import (
	"math"

	"github.com/aurorasoft/pgr/pkg/math3d"
)

// OrbitCamera rotates around Target at a variable distance, smoothing
// raw input deltas into velocity before applying them.
type OrbitCamera struct {
	Up       math3d.Vec3
	Position math3d.Vec3
	Target   math3d.Vec3

	ViewMatrix       math3d.Mat4
	ProjectionMatrix math3d.Mat4

	Yaw        float64
	Pitch      float64
	ZoomAmount float64
}

// NewOrbitCamera builds a camera already looking at target from position.
func NewOrbitCamera(position, target, up math3d.Vec3) *OrbitCamera {
	c := &OrbitCamera{}
	c.SetView(position, target, up)
	return c
}

// SetView places the camera and recomputes the view matrix immediately,
// without touching the smoothed yaw/pitch/zoom state.
func (c *OrbitCamera) SetView(position, target, up math3d.Vec3) {
	c.Position = position
	c.Target = target
	c.Up = up
	c.ViewMatrix = math3d.LookAt(position, target, up)
}

// SetProjection builds the perspective matrix. fovYDeg is in degrees.
func (c *OrbitCamera) SetProjection(aspectRatio, fovYDeg, near, far float64) {
	c.ProjectionMatrix = math3d.PerspectiveDeg(fovYDeg, aspectRatio, near, far)
}

// Update advances the camera by one frame of mouse/scroll input: relX and
// relY are the raw mouse delta since the last frame, scroll is the wheel
// delta. Both the rotation and the zoom are smoothed by blending the
// previous frame's velocity with the new sample (an exponential-ish
// moving average, not a physical damping model), then the position is
// reconstructed target-relative so the camera always stays locked on
// Target at a consistent radius.
func (c *OrbitCamera) Update(dt float64, relX, relY, scroll float64) {
	speed := 0.03 * dt
	c.Yaw = 0.89*c.Yaw + -relX*speed
	c.Pitch = 0.89*c.Pitch + -relY*speed

	camForward := c.Target.Sub(c.Position).Normalize()
	camRight := camForward.Cross(math3d.V3(0, 1, 0)).Normalize()

	// Clamp pitch before it carries the camera past the poles.
	if camForward.Negate().Normalize().Dot(math3d.V3(0, 1, 0)) > 0.98 {
		c.Pitch = math.Max(0, c.Pitch)
	} else if camForward.Negate().Normalize().Dot(math3d.V3(0, -1, 0)) > 0.98 {
		c.Pitch = math.Min(0, c.Pitch)
	}

	dist := c.Position.Sub(c.Target).Len()
	toCamera := c.Position.Sub(c.Target).Normalize()

	toCamera = math3d.Rotate(math3d.V3(0, 1, 0), c.Yaw).MulVec3Dir(toCamera)
	toCamera = math3d.Rotate(camRight, c.Pitch).MulVec3Dir(toCamera)
	c.Position = c.Target.Add(toCamera.Scale(dist))

	camForward = c.Target.Sub(c.Position)
	camRight = camForward.Cross(math3d.V3(0, 1, 0)).Normalize()
	camUp := camRight.Cross(camForward).Normalize()

	forward := c.Target.Sub(c.Position)
	c.ZoomAmount = 0.89*c.ZoomAmount + scroll*0.01
	switch {
	case c.ZoomAmount > 0 && forward.Len() > 0:
		c.Position = c.Position.Add(forward.Scale(c.ZoomAmount))
	case c.ZoomAmount < 0 && forward.Len() < 90:
		c.Position = c.Position.Add(forward.Scale(c.ZoomAmount))
	default:
		c.ZoomAmount = 0
	}

	c.Up = camUp
	c.ViewMatrix = math3d.LookAt(c.Position, c.Target, camUp)
}

// ViewProjectionMatrix returns projection*view.
func (c *OrbitCamera) ViewProjectionMatrix() math3d.Mat4 {
	return c.ProjectionMatrix.Mul(c.ViewMatrix)
}
