package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadShadersKey eb.Key = eb.KeyF5

	ShowDebugConsoleKey = eb.KeyF1

	ScreenshotKey eb.Key = eb.KeyP
)
