package main

import (
	"math"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// OrbitCamera circles the scene origin. Mouse drag orbits with damping,
// the wheel zooms. Screen coordinates everywhere are normalized to
// [0,1]^2 with (0,0) at the top left.
type OrbitCamera struct {
	Target   Vec3
	Yaw      float64
	Pitch    float64
	Distance float64

	FovY        float64 // vertical fov in radians
	AspectRatio float64

	MinDistance float64
	MaxDistance float64

	yawVel   float64
	pitchVel float64

	dragging   bool
	prevCursor FPoint
}

const cameraNearPlane = 0.1

func NewOrbitCamera() *OrbitCamera {
	c := new(OrbitCamera)

	c.Yaw = math.Pi * 0.25
	c.Pitch = 0.32
	c.Distance = 18

	c.FovY = 50 * math.Pi / 180
	c.AspectRatio = 1

	c.MinDistance = 8
	c.MaxDistance = 60

	return c
}

func (c *OrbitCamera) Eye() Vec3 {
	cp := math.Cos(c.Pitch)

	offset := V3(
		cp*math.Cos(c.Yaw),
		math.Sin(c.Pitch),
		cp*math.Sin(c.Yaw),
	).Scale(c.Distance)

	return c.Target.Add(offset)
}

// axes returns the right handed camera basis, forward pointing at the target.
func (c *OrbitCamera) axes() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Eye()).Normalize()

	worldUp := V3(0, 1, 0)
	right = forward.Cross(worldUp).Normalize()
	if right.Length() == 0 {
		// looking straight down the Y axis
		right = V3(1, 0, 0)
	}
	up = right.Cross(forward)

	return right, up, forward
}

// ProjectToScreen maps a world point to normalized screen space.
// ok is false when the point sits behind the near plane.
func (c *OrbitCamera) ProjectToScreen(p Vec3) (pt FPoint, ok bool) {
	right, up, forward := c.axes()

	d := p.Sub(c.Eye())
	x := d.Dot(right)
	y := d.Dot(up)
	z := d.Dot(forward)

	if z < cameraNearPlane {
		return FPoint{}, false
	}

	f := 1 / math.Tan(c.FovY*0.5)

	return FPt(
		0.5+0.5*(x*f/c.AspectRatio)/z,
		0.5-0.5*(y*f)/z,
	), true
}

// ProjectedRadius returns the apparent radius of a sphere at p, as a
// fraction of the viewport height. 0 when the center is not projectable.
func (c *OrbitCamera) ProjectedRadius(p Vec3, r float64) float64 {
	_, _, forward := c.axes()

	z := p.Sub(c.Eye()).Dot(forward)
	if z < cameraNearPlane {
		return 0
	}

	f := 1 / math.Tan(c.FovY*0.5)

	return 0.5 * f * r / z
}

// RayThrough is the inverse of ProjectToScreen: the view ray through
// normalized screen coordinate (s, t).
func (c *OrbitCamera) RayThrough(s, t float64) Ray {
	right, up, forward := c.axes()

	halfTan := math.Tan(c.FovY * 0.5)

	dir := forward.
		Add(right.Scale((2*s - 1) * c.AspectRatio * halfTan)).
		Add(up.Scale((1 - 2*t) * halfTan)).
		Normalize()

	return Ray{Origin: c.Eye(), Dir: dir}
}

// =====================
// input
// =====================

const (
	cameraDragSensitivity = 0.008
	cameraDamping         = 0.82
	cameraZoomStep        = 1.1
	cameraMaxPitch        = math.Pi*0.5 - 0.05
)

func (c *OrbitCamera) Update() {
	cursor := CursorFPt()

	if eb.IsMouseButtonPressed(eb.MouseButtonLeft) {
		if c.dragging {
			delta := cursor.Sub(c.prevCursor)
			c.yawVel += delta.X * cameraDragSensitivity
			c.pitchVel += delta.Y * cameraDragSensitivity
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.prevCursor = cursor

	c.Yaw += c.yawVel
	c.Pitch += c.pitchVel

	c.yawVel *= cameraDamping
	c.pitchVel *= cameraDamping

	c.Pitch = Clamp(c.Pitch, -cameraMaxPitch, cameraMaxPitch)

	_, wheelY := eb.Wheel()
	if wheelY > 0 {
		c.Distance /= cameraZoomStep
	} else if wheelY < 0 {
		c.Distance *= cameraZoomStep
	}
	c.Distance = Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}
