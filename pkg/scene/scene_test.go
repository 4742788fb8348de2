package scene

import "testing"

func TestNewScenePopulatesNinePlanetaryBodies(t *testing.T) {
	s := New(80, 60)
	if len(s.Objects) != 9 {
		t.Fatalf("expected 9 solar-system bodies (sun + 8 planets), got %d", len(s.Objects))
	}
	if s.Objects[0].OrbitalPeriod != 0 {
		t.Fatalf("the sun (index 0) must have orbital period 0, got %v", s.Objects[0].OrbitalPeriod)
	}
	if s.Objects[1].OrbitalPeriod == 0 {
		t.Fatalf("mercury (index 1) must have a nonzero orbital period")
	}
}

func TestUpdateAdvancesOrbitOnlyForNonzeroPeriod(t *testing.T) {
	s := New(80, 60)
	s.Settings.SolarSystem = true
	before := s.Objects[0].CurrentSunRotation

	s.Update(1.0/60, Input{})

	if s.Objects[0].CurrentSunRotation != before {
		t.Fatalf("the sun's rotation phase must not advance (orbital period 0)")
	}
	if s.Objects[1].CurrentSunRotation == 0 {
		t.Fatalf("mercury's rotation phase should have advanced")
	}
}

func TestUpdateSwapsClearColorOnSolarSystemToggle(t *testing.T) {
	s := New(80, 60)
	s.Update(1.0/60, Input{})
	sceneColor := s.Rasterizer.ClearColor

	s.Settings.SolarSystem = true
	s.Update(1.0/60, Input{})
	solarColor := s.Rasterizer.ClearColor

	if sceneColor == solarColor {
		t.Fatalf("clear color should differ between scene and solar-system modes")
	}
}

func TestUpdateResizesRasterizerOnDimensionChange(t *testing.T) {
	s := New(80, 60)
	s.Settings.Width, s.Settings.Height = 160, 120
	s.Update(1.0/60, Input{})

	if s.Rasterizer.Width() != 160 || s.Rasterizer.Height() != 120 {
		t.Fatalf("rasterizer should resize to match settings, got %dx%d", s.Rasterizer.Width(), s.Rasterizer.Height())
	}
}
