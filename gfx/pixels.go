// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"errors"
	"image"
	"image/draw"

	"github.com/veandco/go-sdl2/sdl"
)

// Pixels transforms a given image into the right arrangement of pixels
// by drawing the decoded image onto a controlled RGBA canvas. A row
// pitch below the natural stride is ignored, since only whole rows can
// be uploaded.
func Pixels(src image.Image, rowPitch int) []uint8 {
	bounds := src.Bounds()
	if rowPitch < 4*bounds.Dx() {
		rowPitch = 4 * bounds.Dx()
	}
	canvas := &image.RGBA{
		Pix:    make([]uint8, rowPitch*bounds.Dy()),
		Stride: rowPitch,
		Rect:   bounds,
	}
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)
	return canvas.Pix
}

// SurfaceFromImage copies a decoded Go image into a new RGBA surface.
// The caller owns the returned surface.
func SurfaceFromImage(src image.Image) (*sdl.Surface, error) {
	bounds := src.Bounds()
	surf, err := sdl.CreateRGBSurfaceWithFormat(
		0, int32(bounds.Dx()), int32(bounds.Dy()), 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, errors.New("sdl.CreateRGBSurfaceWithFormat(): " + err.Error())
	}
	copy(surf.Pixels(), Pixels(src, int(surf.Pitch)))
	return surf, nil
}
