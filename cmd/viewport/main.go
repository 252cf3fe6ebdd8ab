// Demonstrates viewport layout: the same texture is drawn into two
// quarter panes on top and a full-width pane across the bottom.
package main

import (
	"flag"
	"runtime"

	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/kanva/core"
	"github.com/devblok/kanva/gfx"
)

func init() {
	runtime.LockOSThread()
}

var imagePath = flag.String("image", "", "image drawn into every pane, built-in checker when empty")

// StaticResources holds the assets shipped with the binary.
var StaticResources = packr.NewBox("../../assets")

func loadDemoTexture(texture *gfx.Texture, ren *sdl.Renderer) error {
	if *imagePath != "" {
		return texture.LoadFromFile(ren, *imagePath)
	}
	return texture.LoadFromBytes(ren, StaticResources.Bytes("checker.bmp"))
}

func main() {
	flag.Parse()

	configuration, err := core.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	if err := img.Init(img.INIT_PNG); err != nil {
		log.Fatal(err)
	}
	defer img.Quit()

	display, err := gfx.NewDisplay(configuration.Display)
	if err != nil {
		log.Fatal(err)
	}
	defer display.Close()

	var texture gfx.Texture
	if err := loadDemoTexture(&texture, display.Renderer()); err != nil {
		log.WithField("image", *imagePath).Fatal(err)
	}
	defer texture.Free()

	layout := gfx.Layout{
		W: int32(configuration.Display.ScreenWidth),
		H: int32(configuration.Display.ScreenHeight),
	}

	time := core.NewTime(configuration.Time)
	defer time.Stop()
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-time.FpsTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.MouseButtonEvent:
					if et.Type == sdl.MOUSEBUTTONDOWN {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}

			ren := display.Renderer()
			gfx.ResetViewport(ren)
			gfx.Clear(ren, sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			for _, pane := range layout.Panes() {
				gfx.Viewport(ren, pane)
				texture.RenderTo(ren, sdl.Rect{W: pane.W, H: pane.H})
			}
			ren.Present()
		}
	}
}
