// Demonstrates the primitive drawing helpers: filled and outlined
// rectangles, a line and a dotted column.
package main

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/kanva/core"
	"github.com/devblok/kanva/gfx"
)

func init() {
	runtime.LockOSThread()
}

func drawScene(ren *sdl.Renderer, w, h int32) {
	gfx.Clear(ren, sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	gfx.FillRect(ren,
		sdl.Rect{X: w / 4, Y: h / 4, W: w / 2, H: h / 2},
		sdl.Color{R: 0xFF, A: 0xFF})

	gfx.OutlineRect(ren,
		sdl.Rect{X: w / 6, Y: h / 6, W: w * 2 / 3, H: h * 2 / 3},
		sdl.Color{G: 0xFF, A: 0xFF})

	gfx.Line(ren, 0, h/2, w, h/2, sdl.Color{B: 0xFF, A: 0xFF})

	var dots []sdl.Point
	for y := int32(0); y < h; y += 4 {
		dots = append(dots, sdl.Point{X: w / 2, Y: y})
	}
	gfx.Points(ren, dots, sdl.Color{R: 0xFF, G: 0xFF, A: 0xFF})

	ren.Present()
}

func main() {
	configuration, err := core.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	display, err := gfx.NewDisplay(configuration.Display)
	if err != nil {
		log.Fatal(err)
	}
	defer display.Close()

	width := int32(configuration.Display.ScreenWidth)
	height := int32(configuration.Display.ScreenHeight)

	time := core.NewTime(configuration.Time)
	defer time.Stop()

	for running := true; running; {
		<-time.FpsTicker().C
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch et := event.(type) {
			case *sdl.KeyboardEvent:
				if et.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			case *sdl.QuitEvent:
				running = false
			}
		}
		drawScene(display.Renderer(), width, height)
	}
}
