package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"net/http"
	_ "net/http/pprof"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	ScreenWidth  float64 = 900
	ScreenHeight float64 = 900
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagHotReload bool
var FlagPProf bool
var FlagStill string
var FlagStrength float64
var FlagShadowScale float64
var FlagPalette string

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "enable shader hot reloading (F5)")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.StringVar(&FlagStill, "still", "", "render one frame to a png and exit, no window")
	flag.Float64Var(&FlagStrength, "strength", 0.15, "lensing strength")
	flag.Float64Var(&FlagShadowScale, "shadow-scale", 1.15, "shadow radius as a multiple of the occluder's apparent radius")
	flag.StringVar(&FlagPalette, "palette", "", "disk colors \"hot,warm,cool\" as css colors")
}

type App struct {
	Camera     *OrbitCamera
	Scene      *Scene
	Compositor *Compositor

	ShowDebugConsole bool

	screenshotQueued bool
}

func NewApp(pal DiskPalette) *App {
	a := new(App)

	a.Camera = NewOrbitCamera()
	a.Scene = NewScene()

	compositor, err := NewCompositor(
		int(ScreenWidth), int(ScreenHeight),
		FlagStrength, FlagShadowScale,
		pal,
	)
	if err != nil {
		ErrorLogger.Fatalf("failed to create compositor : %v", err)
	}
	a.Compositor = compositor

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update window title
	// ==========================
	eb.SetWindowTitle("Black Hole FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	lens := a.Compositor.Lens()
	DebugPrintf("lens center", "%.3f %.3f", lens.Center.X, lens.Center.Y)
	DebugPrintf("shadow radius", "%.4f", lens.ShadowRadius)

	// ==========================
	// shader hot reloading
	// ==========================
	if FlagHotReload && ebi.IsKeyJustPressed(ReloadShadersKey) {
		if disk, lensShader, err := CompileShadersFromDisk(); err == nil {
			a.Compositor.SetShaders(disk, lensShader)
			InfoLogger.Print("reloaded shaders")
		} else {
			ErrorLogger.Printf("shader reload failed : %v", err)
		}
	}

	if ebi.IsKeyJustPressed(ScreenshotKey) {
		a.screenshotQueued = true
	}

	if ebi.IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	a.Camera.Update()

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	elapsed := GlobalTimerNow().Seconds()

	a.Compositor.RenderFrame(dst, a.Camera, a.Scene, elapsed)

	if a.screenshotQueued {
		a.screenshotQueued = false

		if name, err := TakeScreenshot(dst); err == nil {
			InfoLogger.Printf("saved %s", name)
			ClipboardWriteText(name)
		} else {
			ErrorLogger.Printf("screenshot failed : %v", err)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	if outsideHeight > 0 {
		a.Camera.AspectRatio = f64(outsideWidth) / f64(outsideHeight)
	}
	a.Compositor.Resize(outsideWidth, outsideHeight)

	return outsideWidth, outsideHeight
}

func renderStillToFile(path string, pal DiskPalette) {
	cam := NewOrbitCamera()
	sc := NewScene()

	img := RenderStill(cam, sc, StillOptions{
		Width:       int(ScreenWidth),
		Height:      int(ScreenHeight),
		Elapsed:     10,
		Strength:    FlagStrength,
		ShadowScale: FlagShadowScale,
		Palette:     pal,
	})

	f, err := os.Create(path)
	if err != nil {
		ErrorLogger.Fatalf("failed to create %s : %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		ErrorLogger.Fatalf("failed to encode %s : %v", path, err)
	}

	InfoLogger.Printf("rendered %s", path)
}

func main() {
	flag.Parse()

	pal := DefaultDiskPalette
	if FlagPalette != "" {
		var err error
		pal, err = ParseDiskPalette(FlagPalette)
		if err != nil {
			ErrorLogger.Fatalf("bad -palette : %v", err)
		}
	}

	if FlagStill != "" {
		renderStillToFile(FlagStill, pal)
		return
	}

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	app := NewApp(pal)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Black Hole")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
