package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// FrameState is the per-frame uniform state, recomputed at the top of
// every frame from the camera and scene. Plain values, no globals, so a
// fixed-step harness can drive the same code the display loop runs.
type FrameState struct {
	Elapsed float64

	OccluderScreen FPoint // normalized [0,1]^2

	// apparent occluder radius as a fraction of the viewport height
	OccluderScreenRadius float64

	// false when the occluder sits behind the near plane
	OccluderVisible bool
}

func ComputeFrameState(cam *OrbitCamera, sc *Scene, elapsed float64) FrameState {
	pt, ok := cam.ProjectToScreen(sc.OccluderPos)

	return FrameState{
		Elapsed:              elapsed,
		OccluderScreen:       pt,
		OccluderScreenRadius: cam.ProjectedRadius(sc.OccluderPos, sc.OccluderRadius),
		OccluderVisible:      ok,
	}
}

// LensUniformsFor derives this frame's lens uniforms. With the occluder
// unprojectable the lens pass degenerates to a plain copy: zero
// strength and a center no pixel can reach.
func LensUniformsFor(state FrameState, strength, shadowScale float64) LensUniforms {
	if !state.OccluderVisible {
		return LensUniforms{Center: FPt(-10, -10)}
	}

	return LensUniforms{
		Center:       state.OccluderScreen,
		Strength:     strength,
		ShadowRadius: state.OccluderScreenRadius * shadowScale,
	}
}

// Compositor runs the three passes of a frame:
//
//	pass 1: starfield + disk into the offscreen color buffer
//	pass 2: full-screen lens shader sampling that buffer, to the screen
//	pass 3: the occluder silhouette alone, undistorted, on top
//
// Only the occluder ever reaches the screen without passing through the
// lens sample, and everything else passes through it exactly once.
type Compositor struct {
	width  int
	height int

	offscreen *eb.Image

	diskShader *eb.Shader
	lensShader *eb.Shader

	Strength    float64
	ShadowScale float64
	Palette     DiskPalette

	lens LensUniforms

	// scratch buffers reused across frames
	diskVerts   []DiskVertex
	diskIndices []uint16

	projected []FPoint
	projOK    []bool

	verts   []eb.Vertex
	indices []uint16
}

func NewCompositor(width, height int, strength, shadowScale float64, pal DiskPalette) (*Compositor, error) {
	disk, lens, err := CompileShaders()
	if err != nil {
		return nil, err
	}

	c := new(Compositor)
	c.diskShader = disk
	c.lensShader = lens

	c.Strength = strength
	c.ShadowScale = shadowScale
	c.Palette = pal

	c.width = width
	c.height = height
	c.offscreen = newColorBuffer(width, height)

	return c, nil
}

func newColorBuffer(width, height int) *eb.Image {
	return eb.NewImageWithOptions(
		RectWH(width, height),
		&eb.NewImageOptions{Unmanaged: true},
	)
}

func ValidBufferSize(width, height int) bool {
	return width > 0 && height > 0
}

// Resize reallocates the offscreen buffer. Invalid dimensions are
// recoverable: the previous buffer stays until a valid size shows up.
func (c *Compositor) Resize(width, height int) {
	if !ValidBufferSize(width, height) {
		ErrorLogger.Printf("ignoring resize to %dx%d", width, height)
		return
	}

	if width == c.width && height == c.height {
		return
	}

	c.offscreen.Dispose()
	c.offscreen = newColorBuffer(width, height)
	c.width = width
	c.height = height
}

func (c *Compositor) Size() (int, int) {
	return c.width, c.height
}

func (c *Compositor) Lens() LensUniforms {
	return c.lens
}

// SetShaders swaps in hot-reloaded shader programs.
func (c *Compositor) SetShaders(disk, lens *eb.Shader) {
	c.diskShader = disk
	c.lensShader = lens
}

// RenderFrame runs the full pass sequence and leaves the composited
// image on screen. Passes run strictly in order within the frame.
func (c *Compositor) RenderFrame(screen *eb.Image, cam *OrbitCamera, sc *Scene, elapsed float64) {
	state := ComputeFrameState(cam, sc, elapsed)
	c.lens = LensUniformsFor(state, c.Strength, c.ShadowScale)

	// pass 1: scene capture, occluder excluded
	c.offscreen.Fill(color.RGBA{0, 0, 0, 255})

	for _, i := range sc.PassEntities(PassCapture) {
		switch sc.Entities[i].Kind {
		case EntityStarfield:
			c.drawStarfield(c.offscreen, cam, sc)
		case EntityDisk:
			c.drawDisk(c.offscreen, cam, sc, elapsed)
		}
	}

	// pass 2: distortion composite to the screen
	c.drawLensPass(screen)

	// pass 3: undistorted occluder overlay
	for _, i := range sc.PassEntities(PassOverlay) {
		if sc.Entities[i].Kind == EntityOccluder {
			c.drawOccluder(screen, state)
		}
	}
}

// =====================
// pass 1 drawing
// =====================

func (c *Compositor) drawStarfield(dst *eb.Image, cam *OrbitCamera, sc *Scene) {
	c.verts = c.verts[:0]
	c.indices = c.indices[:0]

	srcPt := WhiteImage.Bounds().Min
	srcX := f32(srcPt.X) + 0.5
	srcY := f32(srcPt.Y) + 0.5

	w := f64(c.width)
	h := f64(c.height)

	for _, star := range sc.Stars {
		pt, ok := cam.ProjectToScreen(star.Dir.Scale(starDistance))
		if !ok {
			continue
		}
		if pt.X < -0.01 || pt.X > 1.01 || pt.Y < -0.01 || pt.Y > 1.01 {
			continue
		}

		cx := f32(pt.X * w)
		cy := f32(pt.Y * h)
		half := f32(star.Size * 0.5)
		b := f32(star.Brightness)

		base := uint16(len(c.verts))

		for _, corner := range [4][2]float32{
			{cx - half, cy - half},
			{cx + half, cy - half},
			{cx + half, cy + half},
			{cx - half, cy + half},
		} {
			c.verts = append(c.verts, eb.Vertex{
				DstX: corner[0], DstY: corner[1],
				SrcX: srcX, SrcY: srcY,
				ColorR: b, ColorG: b, ColorB: b, ColorA: b,
			})
		}

		c.indices = append(c.indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	if len(c.indices) == 0 {
		return
	}

	BeginBlend(eb.BlendLighter)
	DrawTriangles(dst, c.verts, c.indices, WhiteImage, nil)
	EndBlend()
}

func (c *Compositor) drawDisk(dst *eb.Image, cam *OrbitCamera, sc *Scene, elapsed float64) {
	if len(c.diskVerts) == 0 {
		c.diskVerts, c.diskIndices = sc.AppendDiskMesh(c.diskVerts[:0], c.diskIndices[:0])
	}

	c.projected = c.projected[:0]
	c.projOK = c.projOK[:0]

	for _, dv := range c.diskVerts {
		pt, ok := cam.ProjectToScreen(dv.Pos)
		c.projected = append(c.projected, pt)
		c.projOK = append(c.projOK, ok)
	}

	w := f64(c.width)
	h := f64(c.height)

	c.verts = c.verts[:0]
	for i, dv := range c.diskVerts {
		pt := c.projected[i]
		c.verts = append(c.verts, eb.Vertex{
			DstX: f32(pt.X * w), DstY: f32(pt.Y * h),
			// disk-local UV rides in the vertex color
			ColorR: f32(dv.U), ColorG: f32(dv.V), ColorB: 0, ColorA: 1,
		})
	}

	c.indices = c.indices[:0]
	for i := 0; i+2 < len(c.diskIndices); i += 3 {
		i0 := c.diskIndices[i]
		i1 := c.diskIndices[i+1]
		i2 := c.diskIndices[i+2]
		if !c.projOK[i0] || !c.projOK[i1] || !c.projOK[i2] {
			continue
		}
		c.indices = append(c.indices, i0, i1, i2)
	}

	if len(c.indices) == 0 {
		return
	}

	op := &DrawTrianglesShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":      elapsed,
		"ColorHot":  c.Palette.Hot,
		"ColorWarm": c.Palette.Warm,
		"ColorCool": c.Palette.Cool,
	}

	DrawTrianglesShader(dst, c.verts, c.indices, c.diskShader, op)
}

// =====================
// pass 2 and 3
// =====================

func (c *Compositor) drawLensPass(screen *eb.Image) {
	op := &DrawRectShaderOptions{}
	op.Images[0] = c.offscreen
	op.Uniforms = map[string]any{
		"Center":       [2]float64{c.lens.Center.X, c.lens.Center.Y},
		"Strength":     c.lens.Strength,
		"ShadowRadius": c.lens.ShadowRadius,
	}

	DrawRectShader(screen, c.width, c.height, c.lensShader, op)
}

func (c *Compositor) drawOccluder(screen *eb.Image, state FrameState) {
	if !state.OccluderVisible {
		return
	}

	cx := state.OccluderScreen.X * f64(c.width)
	cy := state.OccluderScreen.Y * f64(c.height)
	r := state.OccluderScreenRadius * f64(c.height)

	DrawFilledCircle(screen, cx, cy, r, color.NRGBA{0, 0, 0, 255}, true)
}
