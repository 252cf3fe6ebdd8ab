// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/kanva/core"
)

// NewDisplay creates the application window together with an
// accelerated renderer for it. SDL must already be initialised.
func NewDisplay(cfg core.DisplayConfiguration) (*Display, error) {
	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		ReleaseAll(Win(window))
		return nil, errors.New("sdl.CreateRenderer(): " + err.Error())
	}

	return &Display{
		window:   window,
		renderer: renderer,
	}, nil
}

// Display owns the window and the renderer drawing into it. It is the
// single top-level context object of a program; everything that needs
// the renderer borrows it through Renderer().
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// Window returns the owned window.
func (d *Display) Window() *sdl.Window {
	return d.window
}

// Renderer returns the owned renderer.
func (d *Display) Renderer() *sdl.Renderer {
	return d.renderer
}

// Close destroys the renderer and then the window. Idempotent.
func (d *Display) Close() {
	ReleaseAll(Ren(d.renderer), Win(d.window))
	d.renderer = nil
	d.window = nil
}
