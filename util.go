package main

import (
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/exp/constraints"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func ImageSize(img image.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func RectWH(w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{},
		Max: image.Point{w, h},
	}
}
