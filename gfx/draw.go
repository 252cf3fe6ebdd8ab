// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "github.com/veandco/go-sdl2/sdl"

// Clear paints the whole render target with the given color.
func Clear(ren *sdl.Renderer, c sdl.Color) error {
	if err := ren.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return ren.Clear()
}

// FillRect draws a filled rectangle.
func FillRect(ren *sdl.Renderer, rect sdl.Rect, c sdl.Color) error {
	if err := ren.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return ren.FillRect(&rect)
}

// OutlineRect draws the outline of a rectangle.
func OutlineRect(ren *sdl.Renderer, rect sdl.Rect, c sdl.Color) error {
	if err := ren.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return ren.DrawRect(&rect)
}

// Line draws a line between two points.
func Line(ren *sdl.Renderer, x1, y1, x2, y2 int32, c sdl.Color) error {
	if err := ren.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return ren.DrawLine(x1, y1, x2, y2)
}

// Points draws every point in the list.
func Points(ren *sdl.Renderer, pts []sdl.Point, c sdl.Color) error {
	if err := ren.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return ren.DrawPoints(pts)
}
