package main

import (
	"math"
)

// CPU reference for the math inside assets/disk_shader.go and
// assets/lens_shader.go. The Kage fragments mirror these functions;
// keep both sides in sync when tuning constants.

// =================================
// disk shading
// =================================

type ShadingResult struct {
	R, G, B float64
	Alpha   float64
}

const (
	diskFadeInStart  = 0.25
	diskFadeInEnd    = 0.35
	diskFadeOutStart = 0.95
	diskFadeOutEnd   = 1.0

	diskRampMidStart = 0.3
	diskRampMidEnd   = 0.6
	diskRampOutEnd   = 1.0

	diskEdgeDarkenStart = 0.8
	diskNoiseScale      = 3.0
	diskSwirlSpeed      = 0.1
	diskFlowSpeed       = 0.15
)

func hash21(x, y float64) float64 {
	return Fract(math.Sin(x*127.1+y*311.7) * 43758.5453)
}

// valueNoise is lattice value noise, continuous everywhere.
func valueNoise(x, y float64) float64 {
	ix := math.Floor(x)
	iy := math.Floor(y)
	fx := x - ix
	fy := y - iy

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	a := hash21(ix, iy)
	b := hash21(ix+1, iy)
	c := hash21(ix, iy+1)
	d := hash21(ix+1, iy+1)

	return Lerp(Lerp(a, b, ux), Lerp(c, d, ux), uy)
}

// DiskShade maps a disk-local coordinate (components in [-1,1], outer
// visible edge at radius 1) and an elapsed time in seconds to a
// premultiplication-free color and coverage alpha.
//
// Alpha is exactly 0 below diskFadeInStart and above diskFadeOutEnd.
func DiskShade(local FPoint, elapsed float64, pal DiskPalette) ShadingResult {
	dist := local.Length()

	// The turbulence swirls with time. Sampling in rotated cartesian
	// space instead of (dist, angle) space keeps the noise continuous
	// across the angle wrap.
	swirl := local.Rotate(elapsed * diskSwirlSpeed)
	noise := valueNoise(
		swirl.X*diskNoiseScale+elapsed*diskFlowSpeed,
		swirl.Y*diskNoiseScale,
	)

	mid := SmoothStep(diskRampMidStart, diskRampMidEnd, dist)
	outer := SmoothStep(diskRampMidEnd, diskRampOutEnd, dist)

	r := Lerp(pal.Hot[0], pal.Warm[0], mid)
	g := Lerp(pal.Hot[1], pal.Warm[1], mid)
	b := Lerp(pal.Hot[2], pal.Warm[2], mid)

	r = Lerp(r, pal.Cool[0], outer)
	g = Lerp(g, pal.Cool[1], outer)
	b = Lerp(b, pal.Cool[2], outer)

	brightness := (0.7 + noise*0.3) *
		(1 - 0.5*SmoothStep(diskEdgeDarkenStart, diskFadeOutEnd, dist))

	alpha := SmoothStep(diskFadeInStart, diskFadeInEnd, dist) *
		(1 - SmoothStep(diskFadeOutStart, diskFadeOutEnd, dist))

	return ShadingResult{
		R:     r * brightness,
		G:     g * brightness,
		B:     b * brightness,
		Alpha: alpha,
	}
}

// =================================
// lensing displacement
// =================================

type LensUniforms struct {
	// occluder center in normalized [0,1]^2 screen space
	Center FPoint

	Strength     float64
	ShadowRadius float64
}

// guards the division when ShadowRadius is 0 and the pixel sits
// exactly on the occluder center
const lensEpsilon = 1e-4

// LensDisplace maps a normalized screen coordinate to the coordinate the
// color buffer should be sampled at. When the pixel falls inside the
// shadow radius it reports inShadow=true and the caller outputs opaque
// black without sampling.
//
// Sample coordinates are clamped to [0,1] so offsets past the buffer
// edge stick to the edge instead of wrapping.
func LensDisplace(pixel FPoint, u LensUniforms) (sample FPoint, inShadow bool) {
	toCenter := u.Center.Sub(pixel)
	dist := toCenter.Length()

	if dist < math.Max(u.ShadowRadius, lensEpsilon) {
		return FPoint{}, true
	}

	offsetMag := u.Strength / (dist + u.ShadowRadius*0.5)

	sample = pixel.Add(toCenter.Scale(offsetMag / dist))
	sample.X = Clamp(sample.X, 0, 1)
	sample.Y = Clamp(sample.Y, 0, 1)

	return sample, false
}
