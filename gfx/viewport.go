// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// Viewport confines subsequent draw calls to rect.
func Viewport(ren *sdl.Renderer, rect sdl.Rect) error {
	return ren.SetViewport(&rect)
}

// ResetViewport restores drawing to the full render target.
func ResetViewport(ren *sdl.Renderer) error {
	return ren.SetViewport(nil)
}

// Layout splits a screen of the given size into the classic
// three-pane arrangement: two quarter panes on top and one half-height
// pane across the bottom.
type Layout struct {
	W, H int32
}

// TopLeft returns the upper left quarter pane.
func (l Layout) TopLeft() sdl.Rect {
	return sdl.Rect{X: 0, Y: 0, W: l.W / 2, H: l.H / 2}
}

// TopRight returns the upper right quarter pane.
func (l Layout) TopRight() sdl.Rect {
	return sdl.Rect{X: l.W / 2, Y: 0, W: l.W / 2, H: l.H / 2}
}

// Bottom returns the full-width bottom pane.
func (l Layout) Bottom() sdl.Rect {
	return sdl.Rect{X: 0, Y: l.H / 2, W: l.W, H: l.H / 2}
}

// Panes returns all three panes in draw order.
func (l Layout) Panes() []sdl.Rect {
	return []sdl.Rect{l.TopLeft(), l.TopRight(), l.Bottom()}
}

// TileGrid covers bounds with tile-sized rectangles in row-major
// order. Rectangles on the right and bottom edges are clipped to the
// bounds, so the grid never draws outside of them.
func TileGrid(bounds sdl.Rect, tile int32) []sdl.Rect {
	if tile <= 0 || bounds.W <= 0 || bounds.H <= 0 {
		return nil
	}
	var grid []sdl.Rect
	for y := bounds.Y; y < bounds.Y+bounds.H; y += tile {
		for x := bounds.X; x < bounds.X+bounds.W; x += tile {
			r := sdl.Rect{X: x, Y: y, W: tile, H: tile}
			if over := x + tile - (bounds.X + bounds.W); over > 0 {
				r.W -= over
			}
			if over := y + tile - (bounds.Y + bounds.H); over > 0 {
				r.H -= over
			}
			grid = append(grid, r)
		}
	}
	return grid
}

// Anchor positions a box of the given size inside bounds by a
// normalised anchor point, (0,0) being the top left corner and (1,1)
// the bottom right. Anchor of (0.5,0.5) centers the box.
func Anchor(bounds sdl.Rect, size, anchor mgl32.Vec2) sdl.Rect {
	space := mgl32.Vec2{
		float32(bounds.W) - size.X(),
		float32(bounds.H) - size.Y(),
	}
	pos := mgl32.Vec2{
		float32(bounds.X) + space.X()*anchor.X(),
		float32(bounds.Y) + space.Y()*anchor.Y(),
	}
	return sdl.Rect{
		X: int32(pos.X()),
		Y: int32(pos.Y()),
		W: int32(size.X()),
		H: int32(size.Y()),
	}
}
