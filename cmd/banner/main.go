// Renders a line of text centered on screen through SDL_ttf.
package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/devblok/kanva/core"
	"github.com/devblok/kanva/gfx"
)

func init() {
	runtime.LockOSThread()
}

var (
	fontPath = flag.String("font", "", "path to a TTF font (required)")
	fontSize = flag.Int("size", 48, "font point size")
	message  = flag.String("message", "kanva", "text to render")
	envFile  = flag.String("env", "", "optional env file with KANVA_* settings")
)

func main() {
	flag.Parse()
	if *fontPath == "" {
		log.Fatal("a -font is required")
	}
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.WithField("env", *envFile).Fatal(err)
		}
	}

	configuration, err := core.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		log.Fatal(err)
	}
	defer ttf.Quit()

	display, err := gfx.NewDisplay(configuration.Display)
	if err != nil {
		log.Fatal(err)
	}
	defer display.Close()

	font, err := gfx.LoadFont(*fontPath, *fontSize)
	if err != nil {
		log.WithField("font", *fontPath).Fatal(err)
	}
	defer font.Close()

	banner, err := gfx.Text(display.Renderer(), font, *message,
		sdl.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xFF})
	if err != nil {
		log.Fatal(err)
	}
	defer banner.Free()

	screen := sdl.Rect{
		W: int32(configuration.Display.ScreenWidth),
		H: int32(configuration.Display.ScreenHeight),
	}
	dst := gfx.Anchor(screen,
		mgl32.Vec2{float32(banner.Width()), float32(banner.Height())},
		mgl32.Vec2{0.5, 0.5})

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

		ren := display.Renderer()
		gfx.Clear(ren, sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		banner.RenderTo(ren, dst)
		ren.Present()
	}
}
