package main

import (
	"math"
	"testing"
)

func TestDiskShadeAlphaZeroOutsideBand(t *testing.T) {
	tests := []struct {
		name string
		dist float64
	}{
		{"center", 0},
		{"inner hole", 0.1},
		{"just below fade in", 0.249},
		{"fade in start", 0.25},
		{"outer edge", 1.0},
		{"past outer edge", 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// probe several directions at the same radius
			for _, theta := range []float64{0, 1.1, 2.7, -2.0} {
				local := FPt(tt.dist, 0).Rotate(theta)
				res := DiskShade(local, 3.0, DefaultDiskPalette)
				if res.Alpha != 0 {
					t.Errorf("dist %v theta %v: alpha = %v, want exactly 0",
						tt.dist, theta, res.Alpha)
				}
			}
		})
	}
}

func TestDiskShadeOpaqueMidBand(t *testing.T) {
	res := DiskShade(FPt(0.5, 0), 3.0, DefaultDiskPalette)
	if res.Alpha != 1 {
		t.Errorf("alpha at dist 0.5 = %v, want 1", res.Alpha)
	}
}

func TestDiskShadeMidBandNearWarm(t *testing.T) {
	pal := DefaultDiskPalette

	// sample a few times and angles so turbulence modulation is covered
	for _, elapsed := range []float64{0, 1.5, 7.25} {
		for _, theta := range []float64{0, 2.1, -1.3} {
			local := FPt(0.5, 0).Rotate(theta)
			res := DiskShade(local, elapsed, pal)

			// undo the brightness modulation before comparing hues
			brightness := math.Max(res.R, math.Max(res.G, res.B))
			if brightness <= 0 {
				t.Fatalf("elapsed %v theta %v: non-positive brightness", elapsed, theta)
			}

			base := [3]float64{res.R, res.G, res.B}
			scale := pal.Warm[0] / brightness

			dWarm := paletteDistance(base, pal.Warm, scale)
			dHot := paletteDistance(base, pal.Hot, scale)
			dCool := paletteDistance(base, pal.Cool, scale)

			if dWarm >= dHot || dWarm >= dCool {
				t.Errorf("elapsed %v theta %v: color %v closer to hot (%v) or cool (%v) than warm (%v)",
					elapsed, theta, base, dHot, dCool, dWarm)
			}
		}
	}
}

func paletteDistance(c, stop [3]float64, scale float64) float64 {
	var sum float64
	for i := range c {
		d := c[i]*scale - stop[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func TestDiskShadeContinuity(t *testing.T) {
	const eps = 1e-5
	const maxDelta = 1e-3

	points := []FPoint{
		{0.25, 0}, // fade in start
		{0.35, 0}, // fade in end
		{0.6, 0.2},
		{0.95, 0}, // fade out start
		{1.0, 0},  // outer edge
		{-0.7, 0}, // angle wrap neighborhood
	}

	for _, p := range points {
		base := DiskShade(p, 5.0, DefaultDiskPalette)

		for _, d := range []FPoint{{eps, 0}, {-eps, 0}, {0, eps}, {0, -eps}} {
			got := DiskShade(p.Add(d), 5.0, DefaultDiskPalette)

			if math.Abs(got.Alpha-base.Alpha) > maxDelta ||
				math.Abs(got.R-base.R) > maxDelta ||
				math.Abs(got.G-base.G) > maxDelta ||
				math.Abs(got.B-base.B) > maxDelta {
				t.Errorf("discontinuity at %v + %v: base %+v got %+v", p, d, base, got)
			}
		}
	}
}

func TestDiskShadeContinuousAcrossAngleWrap(t *testing.T) {
	const eps = 1e-7

	above := DiskShade(FPt(-0.6, eps), 2.0, DefaultDiskPalette)
	below := DiskShade(FPt(-0.6, -eps), 2.0, DefaultDiskPalette)

	if math.Abs(above.R-below.R) > 1e-4 ||
		math.Abs(above.G-below.G) > 1e-4 ||
		math.Abs(above.B-below.B) > 1e-4 ||
		math.Abs(above.Alpha-below.Alpha) > 1e-4 {
		t.Errorf("seam across negative x axis: %+v vs %+v", above, below)
	}
}

func TestLensDisplaceShadow(t *testing.T) {
	u := LensUniforms{
		Center:       FPt(0.5, 0.5),
		Strength:     0.15,
		ShadowRadius: 0.2,
	}

	tests := []struct {
		name     string
		pixel    FPoint
		inShadow bool
	}{
		{"dead center", FPt(0.5, 0.5), true},
		{"inside radius", FPt(0.6, 0.5), true},
		{"just inside", FPt(0.5+0.199, 0.5), true},
		{"on the boundary", FPt(0.7, 0.5), false},
		{"outside", FPt(0.9, 0.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, inShadow := LensDisplace(tt.pixel, u)
			if inShadow != tt.inShadow {
				t.Errorf("inShadow = %v, want %v", inShadow, tt.inShadow)
			}
		})
	}
}

func TestLensDisplaceZeroShadowRadiusCenterPixel(t *testing.T) {
	u := LensUniforms{Center: FPt(0.5, 0.5), Strength: 0.15}

	// the pixel exactly on the center must not divide by zero
	_, inShadow := LensDisplace(FPt(0.5, 0.5), u)
	if !inShadow {
		t.Error("pixel on center with zero shadow radius: want inShadow")
	}
}

func TestLensDisplaceMagnitude(t *testing.T) {
	u := LensUniforms{
		Center:       FPt(0.5, 0.5),
		Strength:     0.15,
		ShadowRadius: 0.15,
	}

	pixel := FPt(0.5, 1.0) // dist 0.5 from center

	sample, inShadow := LensDisplace(pixel, u)
	if inShadow {
		t.Fatal("unexpected shadow")
	}

	// 0.15 / (0.5 + 0.075)
	const want = 0.26087

	got := sample.Sub(pixel).Length()
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("offset magnitude = %v, want %v", got, want)
	}

	// displacement points at the occluder center
	move := sample.Sub(pixel)
	toCenter := u.Center.Sub(pixel)
	cross := move.X*toCenter.Y - move.Y*toCenter.X
	if math.Abs(cross) > 1e-9 || move.X*toCenter.X+move.Y*toCenter.Y < 0 {
		t.Errorf("displacement %v not directed along %v", move, toCenter)
	}
}

func TestLensDisplaceMagnitudeDecreasesWithDistance(t *testing.T) {
	u := LensUniforms{
		Center:       FPt(0.5, 0.5),
		Strength:     0.15,
		ShadowRadius: 0.1,
	}

	prev := math.Inf(1)
	for _, d := range []float64{0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45} {
		sample, inShadow := LensDisplace(FPt(0.5+d, 0.5), u)
		if inShadow {
			t.Fatalf("dist %v: unexpected shadow", d)
		}

		mag := sample.Sub(FPt(0.5+d, 0.5)).Length()
		if mag >= prev {
			t.Errorf("dist %v: magnitude %v did not decrease from %v", d, mag, prev)
		}
		prev = mag
	}
}

func TestLensDisplaceClampsToBuffer(t *testing.T) {
	// strength large enough to fling the sample far past the center
	u := LensUniforms{
		Center:       FPt(0, 0),
		Strength:     5,
		ShadowRadius: 0.1,
	}

	sample, inShadow := LensDisplace(FPt(0.3, 0.4), u)
	if inShadow {
		t.Fatal("unexpected shadow")
	}

	if sample.X < 0 || sample.X > 1 || sample.Y < 0 || sample.Y > 1 {
		t.Errorf("sample %v escaped [0,1]^2", sample)
	}
}

func TestValueNoiseRange(t *testing.T) {
	for x := -3.0; x < 3.0; x += 0.37 {
		for y := -3.0; y < 3.0; y += 0.41 {
			n := valueNoise(x, y)
			if n < 0 || n > 1 {
				t.Fatalf("valueNoise(%v, %v) = %v, out of [0,1]", x, y, n)
			}
		}
	}
}
