package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// TakeScreenshot writes the composited frame to a timestamped PNG in
// the working directory and returns the file name.
func TakeScreenshot(img *eb.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	entries, err := os.ReadDir("./")
	if err != nil {
		return "", err
	}

	var filename = fmt.Sprintf("pic-%s.png", timeStr)

	nameCounter := 1
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry.Name() == filename {
			nameCounter += 1
			filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
			// do it again!
			i = 0
		}
	}

	w, h := ImageSize(img)

	pix := make([]byte, 4*w*h)
	img.ReadPixels(pix)

	rgba := &image.RGBA{
		Pix:    pix,
		Stride: 4 * w,
		Rect:   RectWH(w, h),
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, rgba); err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, buffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return filename, nil
}
