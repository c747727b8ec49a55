//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Center vec2
var Strength float
var ShadowRadius float

// Mirrors LensDisplace in kernel.go. Samples the pass-1 color buffer
// (Images[0]) with the sampling coordinate clamped to the buffer edge.
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()

	pos := (srcPos - origin) / size

	toCenter := Center - pos
	dist := length(toCenter)

	if dist < max(ShadowRadius, 0.0001) {
		return vec4(0, 0, 0, 1)
	}

	offsetMag := Strength / (dist + ShadowRadius*0.5)

	sample := pos + toCenter*(offsetMag/dist)
	sample = clamp(sample, vec2(0, 0), vec2(1, 1))

	at := origin + sample*size
	at = clamp(at, origin+vec2(0.5, 0.5), origin+size-vec2(0.5, 0.5))

	return imageSrc0At(at)
}
