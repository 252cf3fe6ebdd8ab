// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"bytes"
	"errors"
	"image"

	// image formats accepted by LoadFromBytes
	_ "image/jpeg"
	_ "image/png"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	_ "golang.org/x/image/bmp"

	"github.com/devblok/kanva/pak"
)

// Texture owns one renderer-resident image together with its pixel
// dimensions. The zero value is an empty texture that holds nothing.
// A Texture has exactly one owner and must not be shared between
// goroutines; the renderer used to load it is borrowed, never owned.
type Texture struct {
	tex    *sdl.Texture
	width  int32
	height int32
}

// Width returns the pixel width of the loaded image, 0 when empty.
func (t *Texture) Width() int32 {
	return t.width
}

// Height returns the pixel height of the loaded image, 0 when empty.
func (t *Texture) Height() int32 {
	return t.height
}

// Empty reports whether the texture currently holds no resource.
func (t *Texture) Empty() bool {
	return t.tex == nil
}

// Handle exposes the underlying resource for ReleaseAll. The texture
// still owns it; use Free instead unless tearing everything down at
// once.
func (t *Texture) Handle() Handle {
	return Tex(t.tex)
}

// LoadFromFile decodes the image at path through ren and takes
// ownership of the resulting texture. Any previously held texture is
// released first, so a failed load always leaves the texture empty
// rather than holding stale state.
func (t *Texture) LoadFromFile(ren *sdl.Renderer, path string) error {
	t.Free()

	tex, err := img.LoadTexture(ren, path)
	if err != nil {
		return errors.New("img.LoadTexture(): " + err.Error())
	}
	return t.adopt(tex)
}

// LoadFromBytes decodes an in-memory encoded image (PNG, BMP, JPG)
// and uploads it through ren, same semantics as LoadFromFile.
func (t *Texture) LoadFromBytes(ren *sdl.Renderer, data []byte) error {
	t.Free()

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return errors.New("image.Decode(): " + err.Error())
	}
	return t.LoadFromImage(ren, decoded)
}

// LoadFromSurface uploads an already decoded surface through ren.
// The surface remains owned by the caller.
func (t *Texture) LoadFromSurface(ren *sdl.Renderer, surf *sdl.Surface) error {
	t.Free()

	tex, err := ren.CreateTextureFromSurface(surf)
	if err != nil {
		return errors.New("Renderer.CreateTextureFromSurface(): " + err.Error())
	}
	t.tex = tex
	t.width = surf.W
	t.height = surf.H
	return nil
}

// LoadFromImage uploads a decoded Go image through ren.
func (t *Texture) LoadFromImage(ren *sdl.Renderer, src image.Image) error {
	t.Free()

	surf, err := SurfaceFromImage(src)
	if err != nil {
		return err
	}
	defer surf.Free()
	return t.LoadFromSurface(ren, surf)
}

// LoadFromPack decodes the named image out of an asset archive.
func (t *Texture) LoadFromPack(ren *sdl.Renderer, archive *pak.Archive, name string) error {
	t.Free()

	data, err := archive.ReadAll(name)
	if err != nil {
		return err
	}
	return t.LoadFromBytes(ren, data)
}

func (t *Texture) adopt(tex *sdl.Texture) error {
	_, _, w, h, err := tex.Query()
	if err != nil {
		tex.Destroy()
		return errors.New("Texture.Query(): " + err.Error())
	}
	t.tex = tex
	t.width = w
	t.height = h
	return nil
}

// Render draws the full texture at (x, y) in its native size.
// Returns ErrEmpty when nothing is loaded.
func (t *Texture) Render(ren *sdl.Renderer, x, y int32) error {
	return t.RenderClip(ren, x, y, nil)
}

// RenderClip draws the clip sub-rectangle of the texture at (x, y),
// sized to the clip. A nil clip draws the whole texture.
func (t *Texture) RenderClip(ren *sdl.Renderer, x, y int32, clip *sdl.Rect) error {
	if t.tex == nil {
		return ErrEmpty
	}
	dst := sdl.Rect{X: x, Y: y, W: t.width, H: t.height}
	if clip != nil {
		dst.W = clip.W
		dst.H = clip.H
	}
	return ren.Copy(t.tex, clip, &dst)
}

// RenderTo draws the full texture stretched into dst.
func (t *Texture) RenderTo(ren *sdl.Renderer, dst sdl.Rect) error {
	if t.tex == nil {
		return ErrEmpty
	}
	return ren.Copy(t.tex, nil, &dst)
}

// SetColorModulation tints subsequent Render calls per channel
// without touching the stored pixels. No-op while empty.
func (t *Texture) SetColorModulation(r, g, b uint8) {
	if t.tex == nil {
		return
	}
	t.tex.SetColorMod(r, g, b)
}

// Free releases the held texture and resets dimensions to zero.
// Safe to call repeatedly and on an empty texture.
func (t *Texture) Free() {
	if t.tex == nil {
		return
	}
	t.tex.Destroy()
	t.tex = nil
	t.width = 0
	t.height = 0
}
