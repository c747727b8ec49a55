//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float
var ColorHot vec3
var ColorWarm vec3
var ColorCool vec3

func hash21(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453)
}

func valueNoise(p vec2) float {
	i := floor(p)
	f := fract(p)
	u := f * f * (3.0 - 2.0*f)

	a := hash21(i)
	b := hash21(i + vec2(1, 0))
	c := hash21(i + vec2(0, 1))
	d := hash21(i + vec2(1, 1))

	return mix(mix(a, b, u.x), mix(c, d, u.x), u.y)
}

func rotateV(v vec2, theta float) vec2 {
	c := cos(theta)
	s := sin(theta)
	return vec2(v.x*c-v.y*s, v.x*s+v.y*c)
}

// Disk-local coordinates arrive through the vertex colors: color.xy is
// the [0,1]^2 ring UV, outer visible edge at radius 1 after centering.
// Mirrors DiskShade in kernel.go.
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	local := color.xy*2 - 1
	dist := length(local)

	swirl := rotateV(local, Time*0.1)
	noise := valueNoise(swirl*3 + vec2(Time*0.15, 0))

	mid := smoothstep(0.3, 0.6, dist)
	outer := smoothstep(0.6, 1.0, dist)

	base := mix(ColorHot, ColorWarm, mid)
	base = mix(base, ColorCool, outer)

	brightness := (0.7 + noise*0.3) * (1.0 - 0.5*smoothstep(0.8, 1.0, dist))

	alpha := smoothstep(0.25, 0.35, dist) * (1.0 - smoothstep(0.95, 1.0, dist))

	return vec4(base*brightness*alpha, alpha)
}
