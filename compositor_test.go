package main

import (
	"math"
	"testing"
)

func TestComputeFrameState(t *testing.T) {
	cam := NewOrbitCamera()
	sc := NewScene()

	state := ComputeFrameState(cam, sc, 2.5)

	if !state.OccluderVisible {
		t.Fatal("occluder not visible from the default camera")
	}
	if state.Elapsed != 2.5 {
		t.Errorf("elapsed = %v, want 2.5", state.Elapsed)
	}

	// the occluder sits at the camera target
	if math.Abs(state.OccluderScreen.X-0.5) > 1e-9 ||
		math.Abs(state.OccluderScreen.Y-0.5) > 1e-9 {
		t.Errorf("occluder projects to %v, want (0.5, 0.5)", state.OccluderScreen)
	}

	if state.OccluderScreenRadius <= 0 {
		t.Errorf("occluder screen radius = %v, want > 0", state.OccluderScreenRadius)
	}
}

func TestComputeFrameStateUnprojectable(t *testing.T) {
	cam := NewOrbitCamera()
	sc := NewScene()
	sc.OccluderPos = cam.Eye()

	state := ComputeFrameState(cam, sc, 0)
	if state.OccluderVisible {
		t.Error("occluder at the eye reported visible")
	}
	if state.OccluderScreenRadius != 0 {
		t.Errorf("radius = %v, want 0", state.OccluderScreenRadius)
	}
}

func TestLensUniformsFor(t *testing.T) {
	state := FrameState{
		OccluderScreen:       FPt(0.4, 0.6),
		OccluderScreenRadius: 0.1,
		OccluderVisible:      true,
	}

	u := LensUniformsFor(state, 0.15, 1.15)

	if u.Center != state.OccluderScreen {
		t.Errorf("center = %v, want %v", u.Center, state.OccluderScreen)
	}
	if u.Strength != 0.15 {
		t.Errorf("strength = %v, want 0.15", u.Strength)
	}
	if want := 0.1 * 1.15; math.Abs(u.ShadowRadius-want) > 1e-12 {
		t.Errorf("shadow radius = %v, want %v", u.ShadowRadius, want)
	}
}

func TestLensUniformsForUnprojectable(t *testing.T) {
	u := LensUniformsFor(FrameState{OccluderVisible: false}, 0.15, 1.15)

	if u.Strength != 0 || u.ShadowRadius != 0 {
		t.Errorf("degenerate uniforms carry distortion: %+v", u)
	}

	// no screen pixel may land in the shadow of the parked center
	for _, pixel := range []FPoint{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}} {
		if _, inShadow := LensDisplace(pixel, u); inShadow {
			t.Errorf("pixel %v shadowed by parked lens center", pixel)
		}
	}
}

func TestLensUniformsForIdentityWhenUnprojectable(t *testing.T) {
	u := LensUniformsFor(FrameState{OccluderVisible: false}, 0.3, 1.15)

	pixel := FPt(0.25, 0.75)
	sample, inShadow := LensDisplace(pixel, u)
	if inShadow {
		t.Fatal("unexpected shadow")
	}
	if sample != pixel {
		t.Errorf("sample = %v, want identity %v", sample, pixel)
	}
}

func TestValidBufferSize(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{900, 900, true},
		{1, 1, true},
		{0, 900, false},
		{900, 0, false},
		{-1, 900, false},
		{900, -1, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := ValidBufferSize(tt.w, tt.h); got != tt.want {
			t.Errorf("ValidBufferSize(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
