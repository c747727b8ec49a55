package main

import (
	"image"
	"image/color"
	"math"
)

// Software rendition of the exact pass sequence the Compositor runs on
// the GPU, over a plain image.RGBA. Drives the -still flag (headless
// render, no window) and makes the pipeline testable without a display.

type StillOptions struct {
	Width, Height int

	Elapsed float64

	Strength    float64
	ShadowScale float64

	Palette DiskPalette
}

// RenderStill executes scene capture, lens composite and occluder
// overlay on the CPU and returns the final frame.
func RenderStill(cam *OrbitCamera, sc *Scene, opt StillOptions) *image.RGBA {
	state := ComputeFrameState(cam, sc, opt.Elapsed)
	lens := LensUniformsFor(state, opt.Strength, opt.ShadowScale)

	// pass 1: scene capture into the color buffer, occluder excluded
	buffer := image.NewRGBA(RectWH(opt.Width, opt.Height))
	fillOpaqueBlack(buffer)

	for _, i := range sc.PassEntities(PassCapture) {
		switch sc.Entities[i].Kind {
		case EntityStarfield:
			softDrawStarfield(buffer, cam, sc)
		case EntityDisk:
			softDrawDisk(buffer, cam, sc, opt.Elapsed, opt.Palette)
		}
	}

	// pass 2: lens composite
	out := image.NewRGBA(RectWH(opt.Width, opt.Height))
	softLensPass(out, buffer, lens)

	// pass 3: undistorted occluder overlay
	for _, i := range sc.PassEntities(PassOverlay) {
		if sc.Entities[i].Kind == EntityOccluder {
			softDrawOccluder(out, cam, sc)
		}
	}

	return out
}

func fillOpaqueBlack(img *image.RGBA) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 255
	}
}

func softDrawStarfield(buffer *image.RGBA, cam *OrbitCamera, sc *Scene) {
	w := buffer.Bounds().Dx()
	h := buffer.Bounds().Dy()

	for _, star := range sc.Stars {
		pt, ok := cam.ProjectToScreen(star.Dir.Scale(starDistance))
		if !ok {
			continue
		}

		x := int(pt.X * f64(w))
		y := int(pt.Y * f64(h))
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}

		v := uint8(Clamp(star.Brightness*255, 0, 255))
		i := buffer.PixOffset(x, y)
		buffer.Pix[i] = max(buffer.Pix[i], v)
		buffer.Pix[i+1] = max(buffer.Pix[i+1], v)
		buffer.Pix[i+2] = max(buffer.Pix[i+2], v)
	}
}

// softDrawDisk intersects each view ray with the disk plane and shades
// the annulus with DiskShade, alpha blended over the backdrop.
func softDrawDisk(buffer *image.RGBA, cam *OrbitCamera, sc *Scene, elapsed float64, pal DiskPalette) {
	w := buffer.Bounds().Dx()
	h := buffer.Bounds().Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ray := cam.RayThrough(
				(f64(x)+0.5)/f64(w),
				(f64(y)+0.5)/f64(h),
			)

			if math.Abs(ray.Dir.Y) < 1e-9 {
				continue
			}

			t := -ray.Origin.Y / ray.Dir.Y
			if t < cameraNearPlane {
				continue
			}

			p := ray.At(t)
			r := math.Hypot(p.X, p.Z)
			if r < sc.DiskInnerRadius || r > sc.DiskOuterRadius {
				continue
			}

			local := FPt(p.X/sc.DiskOuterRadius, p.Z/sc.DiskOuterRadius)
			res := DiskShade(local, elapsed, pal)
			if res.Alpha <= 0 {
				continue
			}

			i := buffer.PixOffset(x, y)
			blendOver(buffer.Pix[i:i+4], res)
		}
	}
}

func blendOver(dst []byte, res ShadingResult) {
	a := Clamp(res.Alpha, 0, 1)

	dst[0] = uint8(Clamp(res.R*a*255+f64(dst[0])*(1-a), 0, 255))
	dst[1] = uint8(Clamp(res.G*a*255+f64(dst[1])*(1-a), 0, 255))
	dst[2] = uint8(Clamp(res.B*a*255+f64(dst[2])*(1-a), 0, 255))
	dst[3] = 255
}

func softLensPass(out, buffer *image.RGBA, lens LensUniforms) {
	w := out.Bounds().Dx()
	h := out.Bounds().Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := out.PixOffset(x, y)

			pixel := FPt(
				(f64(x)+0.5)/f64(w),
				(f64(y)+0.5)/f64(h),
			)

			sample, inShadow := LensDisplace(pixel, lens)
			if inShadow {
				out.Pix[i] = 0
				out.Pix[i+1] = 0
				out.Pix[i+2] = 0
				out.Pix[i+3] = 255
				continue
			}

			sx := Clamp(int(sample.X*f64(w)), 0, w-1)
			sy := Clamp(int(sample.Y*f64(h)), 0, h-1)

			j := buffer.PixOffset(sx, sy)
			copy(out.Pix[i:i+4], buffer.Pix[j:j+4])
		}
	}
}

// softDrawOccluder overlays the sphere silhouette by ray-sphere
// intersection, matching the undistorted circle pass 3 draws on the GPU.
func softDrawOccluder(out *image.RGBA, cam *OrbitCamera, sc *Scene) {
	w := out.Bounds().Dx()
	h := out.Bounds().Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ray := cam.RayThrough(
				(f64(x)+0.5)/f64(w),
				(f64(y)+0.5)/f64(h),
			)

			oc := ray.Origin.Sub(sc.OccluderPos)
			b := oc.Dot(ray.Dir)
			c0 := oc.Dot(oc) - sc.OccluderRadius*sc.OccluderRadius

			disc := b*b - c0
			if disc < 0 {
				continue
			}

			t := -b - math.Sqrt(disc)
			if t < cameraNearPlane {
				continue
			}

			out.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
}
