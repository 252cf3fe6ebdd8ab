// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// LoadFont opens a TTF font at the given point size.
// ttf.Init must have been called.
func LoadFont(path string, size int) (*ttf.Font, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, errors.New("ttf.OpenFont(): " + err.Error())
	}
	return font, nil
}

// Text rasterises message with the font and uploads the result as a
// texture. The intermediate surface is freed on every path; the font
// stays owned by the caller.
func Text(ren *sdl.Renderer, font *ttf.Font, message string, color sdl.Color) (*Texture, error) {
	surf, err := font.RenderUTF8Blended(message, color)
	if err != nil {
		return nil, errors.New("Font.RenderUTF8Blended(): " + err.Error())
	}
	defer surf.Free()

	var tex Texture
	if err := tex.LoadFromSurface(ren, surf); err != nil {
		return nil, err
	}
	return &tex, nil
}
