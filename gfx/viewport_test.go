// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/kanva/gfx"
)

func TestLayoutPanes(t *testing.T) {
	c := qt.New(t)

	layout := gfx.Layout{W: 640, H: 480}
	c.Assert(layout.TopLeft(), qt.Equals, sdl.Rect{X: 0, Y: 0, W: 320, H: 240})
	c.Assert(layout.TopRight(), qt.Equals, sdl.Rect{X: 320, Y: 0, W: 320, H: 240})
	c.Assert(layout.Bottom(), qt.Equals, sdl.Rect{X: 0, Y: 240, W: 640, H: 240})
	c.Assert(len(layout.Panes()), qt.Equals, 3)
}

func TestTileGridCoversBounds(t *testing.T) {
	c := qt.New(t)

	bounds := sdl.Rect{X: 0, Y: 0, W: 100, H: 90}
	grid := gfx.TileGrid(bounds, 40)

	// 3 columns (40+40+20) by 3 rows (40+40+10)
	c.Assert(len(grid), qt.Equals, 9)
	c.Assert(grid[0], qt.Equals, sdl.Rect{X: 0, Y: 0, W: 40, H: 40})
	c.Assert(grid[2], qt.Equals, sdl.Rect{X: 80, Y: 0, W: 20, H: 40})
	c.Assert(grid[8], qt.Equals, sdl.Rect{X: 80, Y: 80, W: 20, H: 10})

	var area int32
	for _, r := range grid {
		area += r.W * r.H
	}
	c.Assert(area, qt.Equals, bounds.W*bounds.H)
}

func TestTileGridOffsetOrigin(t *testing.T) {
	c := qt.New(t)

	grid := gfx.TileGrid(sdl.Rect{X: 10, Y: 20, W: 40, H: 40}, 40)
	c.Assert(grid, qt.DeepEquals, []sdl.Rect{{X: 10, Y: 20, W: 40, H: 40}})
}

func TestTileGridDegenerate(t *testing.T) {
	c := qt.New(t)

	c.Assert(gfx.TileGrid(sdl.Rect{W: 100, H: 100}, 0), qt.IsNil)
	c.Assert(gfx.TileGrid(sdl.Rect{W: 0, H: 100}, 40), qt.IsNil)
}

func TestAnchorCenter(t *testing.T) {
	c := qt.New(t)

	screen := sdl.Rect{W: 640, H: 480}
	dst := gfx.Anchor(screen, mgl32.Vec2{100, 40}, mgl32.Vec2{0.5, 0.5})
	c.Assert(dst, qt.Equals, sdl.Rect{X: 270, Y: 220, W: 100, H: 40})
}

func TestAnchorCorners(t *testing.T) {
	c := qt.New(t)

	screen := sdl.Rect{X: 10, Y: 10, W: 100, H: 100}
	topLeft := gfx.Anchor(screen, mgl32.Vec2{20, 20}, mgl32.Vec2{0, 0})
	c.Assert(topLeft, qt.Equals, sdl.Rect{X: 10, Y: 10, W: 20, H: 20})

	bottomRight := gfx.Anchor(screen, mgl32.Vec2{20, 20}, mgl32.Vec2{1, 1})
	c.Assert(bottomRight, qt.Equals, sdl.Rect{X: 90, Y: 90, W: 20, H: 20})
}
