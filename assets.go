package main

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed assets/disk_shader.go
	diskShaderSrc []byte

	//go:embed assets/lens_shader.go
	lensShaderSrc []byte
)

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(RectWH(3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

// CompileShaders builds the two pipeline shaders from embedded sources.
// A compile failure is fatal for rendering, so the error names the
// stage that failed.
func CompileShaders() (disk, lens *eb.Shader, err error) {
	disk, err = eb.NewShader(diskShaderSrc)
	if err != nil {
		return nil, nil, fmt.Errorf("compile disk shader: %w", err)
	}

	lens, err = eb.NewShader(lensShaderSrc)
	if err != nil {
		return nil, nil, fmt.Errorf("compile lens shader: %w", err)
	}

	return disk, lens, nil
}

// CompileShadersFromDisk recompiles from the working tree, for F5 hot
// reloading during shader work.
func CompileShadersFromDisk() (disk, lens *eb.Shader, err error) {
	diskSrc, err := os.ReadFile("assets/disk_shader.go")
	if err != nil {
		return nil, nil, fmt.Errorf("read disk shader: %w", err)
	}
	lensSrc, err := os.ReadFile("assets/lens_shader.go")
	if err != nil {
		return nil, nil, fmt.Errorf("read lens shader: %w", err)
	}

	disk, err = eb.NewShader(diskSrc)
	if err != nil {
		return nil, nil, fmt.Errorf("compile disk shader: %w", err)
	}
	lens, err = eb.NewShader(lensSrc)
	if err != nil {
		return nil, nil, fmt.Errorf("compile lens shader: %w", err)
	}

	return disk, lens, nil
}
