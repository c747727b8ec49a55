package main

import (
	"math"
	"math/rand"
)

// =====================
// entities
// =====================

type EntityKind int

const (
	EntityStarfield EntityKind = iota
	EntityDisk
	EntityOccluder
)

type Entity struct {
	Kind    EntityKind
	Name    string
	WorldAt Vec3
}

// DrawPass selects which slice of the scene a render pass draws.
// Pass 1 (scene capture) draws PassCapture, pass 3 (overlay) draws
// PassOverlay. The occluder never appears in PassCapture.
type DrawPass int

const (
	PassCapture DrawPass = iota
	PassOverlay
)

// =====================
// scene
// =====================

type Star struct {
	Dir        Vec3
	Brightness float64
	Size       float64
}

const (
	DefaultDiskInnerRadius = 2.5
	DefaultDiskOuterRadius = 6.0
	DefaultDiskSegments    = 128

	DefaultOccluderRadius = 2.0

	starCount    = 1400
	starDistance = 300.0
	starSeed     = 0x5eed
)

type Scene struct {
	Entities []Entity

	Stars []Star

	DiskInnerRadius float64
	DiskOuterRadius float64
	DiskSegments    int

	OccluderPos    Vec3
	OccluderRadius float64
}

func NewScene() *Scene {
	s := new(Scene)

	s.DiskInnerRadius = DefaultDiskInnerRadius
	s.DiskOuterRadius = DefaultDiskOuterRadius
	s.DiskSegments = DefaultDiskSegments

	s.OccluderPos = V3(0, 0, 0)
	s.OccluderRadius = DefaultOccluderRadius

	s.Stars = GenerateStars(starCount, starSeed)

	s.Entities = []Entity{
		{Kind: EntityStarfield, Name: "starfield"},
		{Kind: EntityDisk, Name: "accretion disk"},
		{Kind: EntityOccluder, Name: "occluder", WorldAt: s.OccluderPos},
	}

	return s
}

// PassEntities returns indices into s.Entities for the given pass.
// Selection is by explicit list instead of a mutable visible flag so
// the passes stay decoupled.
func (s *Scene) PassEntities(pass DrawPass) []int {
	var indices []int

	for i, e := range s.Entities {
		switch pass {
		case PassCapture:
			if e.Kind != EntityOccluder {
				indices = append(indices, i)
			}
		case PassOverlay:
			if e.Kind == EntityOccluder {
				indices = append(indices, i)
			}
		}
	}

	return indices
}

// GenerateStars places count stars on a far sphere. Deterministic for a
// given seed so frames and tests are reproducible.
func GenerateStars(count int, seed int64) []Star {
	rng := rand.New(rand.NewSource(seed))

	stars := make([]Star, count)

	for i := range stars {
		z := rng.Float64()*2 - 1
		phi := rng.Float64() * 2 * math.Pi
		xy := math.Sqrt(1 - z*z)

		b := rng.Float64()

		stars[i] = Star{
			Dir: V3(
				xy*math.Cos(phi),
				z,
				xy*math.Sin(phi),
			),
			Brightness: 0.25 + 0.75*b*b,
			Size:       0.8 + 1.4*rng.Float64(),
		}
	}

	return stars
}

// =====================
// disk mesh
// =====================

// DiskVertex is a ring mesh vertex: world position plus disk-local
// coordinates in [0,1]^2 (0.5,0.5 at the disk center, outer visible
// edge at radius 0.5 from it).
type DiskVertex struct {
	Pos  Vec3
	U, V float64
}

// AppendDiskMesh appends the annulus triangulation to verts/indices.
// The ring lies in the XZ plane around the origin.
func (s *Scene) AppendDiskMesh(verts []DiskVertex, indices []uint16) ([]DiskVertex, []uint16) {
	segments := s.DiskSegments
	base := uint16(len(verts))

	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * f64(i) / f64(segments)
		cos := math.Cos(theta)
		sin := math.Sin(theta)

		inner := V3(cos*s.DiskInnerRadius, 0, sin*s.DiskInnerRadius)
		outer := V3(cos*s.DiskOuterRadius, 0, sin*s.DiskOuterRadius)

		verts = append(verts,
			DiskVertex{
				Pos: inner,
				U:   0.5 + 0.5*inner.X/s.DiskOuterRadius,
				V:   0.5 + 0.5*inner.Z/s.DiskOuterRadius,
			},
			DiskVertex{
				Pos: outer,
				U:   0.5 + 0.5*outer.X/s.DiskOuterRadius,
				V:   0.5 + 0.5*outer.Z/s.DiskOuterRadius,
			},
		)
	}

	for i := 0; i < segments; i++ {
		i0 := base + uint16(i*2)
		i1 := i0 + 1
		i2 := i0 + 2
		i3 := i0 + 3

		indices = append(indices,
			i0, i1, i2,
			i1, i3, i2,
		)
	}

	return verts, indices
}
