package camera

import (
	"math"
	"testing"

	"github.com/aurorasoft/pgr/pkg/math3d"
)

func TestNewOrbitCameraLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera(math3d.V3(0, 0, 5), math3d.Zero3(), math3d.V3(0, 1, 0))
	want := math3d.LookAt(math3d.V3(0, 0, 5), math3d.Zero3(), math3d.V3(0, 1, 0))
	if c.ViewMatrix != want {
		t.Fatalf("initial view matrix mismatch")
	}
}

func TestUpdateKeepsConstantRadius(t *testing.T) {
	c := NewOrbitCamera(math3d.V3(0, 0, 5), math3d.Zero3(), math3d.V3(0, 1, 0))
	initialDist := c.Position.Sub(c.Target).Len()

	for range 30 {
		c.Update(16, 5, 0, 0)
	}

	gotDist := c.Position.Sub(c.Target).Len()
	if math.Abs(gotDist-initialDist) > 1e-6 {
		t.Fatalf("orbit radius drifted: got %v want %v", gotDist, initialDist)
	}
}

func TestUpdateClampsPitchNearThePoles(t *testing.T) {
	c := NewOrbitCamera(math3d.V3(0, 0, 5), math3d.Zero3(), math3d.V3(0, 1, 0))

	// Drive a large negative relY repeatedly to push the camera toward
	// the north pole; pitch must clamp rather than flip the camera
	// through the up vector.
	for range 200 {
		c.Update(16, 0, -500, 0)
	}

	camForward := c.Target.Sub(c.Position).Normalize()
	if camForward.Negate().Normalize().Dot(math3d.V3(0, 1, 0)) > 0.98 && c.Pitch < 0 {
		t.Fatalf("pitch should have clamped to non-negative near the north pole, got %v", c.Pitch)
	}
}

func TestZoomResetsOutsideItsOperatingRange(t *testing.T) {
	// Starting beyond the zoom-out operating range (forward.Len() >= 90):
	// a zoom-out sample (negative scroll) must reset rather than apply.
	c := NewOrbitCamera(math3d.V3(0, 0, 100), math3d.Zero3(), math3d.V3(0, 1, 0))
	c.Update(16, 0, 0, -1000)
	if c.ZoomAmount != 0 {
		t.Fatalf("zoom-out beyond the operating range should reset to 0, got %v", c.ZoomAmount)
	}
}
