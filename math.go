package main

import (
	"math"

	"golang.org/x/exp/constraints"
)

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Add(q FPoint) FPoint {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p FPoint) Sub(q FPoint) FPoint {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p FPoint) Scale(s float64) FPoint {
	p.X *= s
	p.Y *= s
	return p
}

func (p FPoint) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p FPoint) Rotate(theta float64) FPoint {
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	return FPoint{
		X: cos*p.X - sin*p.Y,
		Y: sin*p.X + cos*p.Y,
	}
}

// =================================
// Vec3
// =================================

type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// =================================
// Ray
// =================================

type Ray struct {
	Origin Vec3
	Dir    Vec3
}

func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// =================================
// misc
// =================================

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// SmoothStep is the usual cubic hermite between edge0 and edge1.
// Returns exactly 0 below edge0 and exactly 1 above edge1.
func SmoothStep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func Fract(x float64) float64 {
	return x - math.Floor(x)
}
