package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

func DrawFilledCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, antialias)
}
