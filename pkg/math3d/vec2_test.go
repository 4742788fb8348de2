package math3d

import "testing"

func TestVec2Lerp(t *testing.T) {
	a := V2(0, 0)
	b := V2(1, 1)

	tests := []struct {
		t    float64
		want Vec2
	}{
		{0, V2(0, 0)},
		{0.5, V2(0.5, 0.5)},
		{1, V2(1, 1)},
	}

	for _, tc := range tests {
		got := a.Lerp(b, tc.t)
		if got != tc.want {
			t.Errorf("Lerp(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestVec2Floor(t *testing.T) {
	got := V2(1.7, -1.2).Floor()
	want := V2(1, -2)
	if got != want {
		t.Errorf("Floor() = %v, want %v", got, want)
	}
}

func TestPerspectiveDeg(t *testing.T) {
	byDeg := PerspectiveDeg(90, 1, 0.1, 100)
	byRad := Perspective(1.5707963267948966, 1, 0.1, 100)
	if byDeg != byRad {
		t.Errorf("PerspectiveDeg(90) = %v, want %v", byDeg, byRad)
	}
}
