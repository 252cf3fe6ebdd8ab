// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/kanva/gfx"
	"github.com/devblok/kanva/pak"
)

// newTestRenderer builds a software renderer over an off-screen
// surface, so texture behaviour can be exercised without a window.
// Skips the test when SDL refuses to initialise entirely.
func newTestRenderer(t *testing.T) (*sdl.Renderer, func()) {
	t.Helper()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		os.Setenv("SDL_VIDEODRIVER", "dummy")
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			t.Skip("SDL unavailable: " + err.Error())
		}
	}

	surf, err := sdl.CreateRGBSurfaceWithFormat(0, 64, 64, 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		t.Fatal(err)
	}
	ren, err := sdl.CreateSoftwareRenderer(surf)
	if err != nil {
		surf.Free()
		t.Skip("software renderer unavailable: " + err.Error())
	}
	return ren, func() {
		gfx.ReleaseAll(gfx.Ren(ren), gfx.Surf(surf))
	}
}

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 0xFF})
		}
	}
	return img
}

func TestLoadFromBytesDimensions(t *testing.T) {
	ren, done := newTestRenderer(t)
	defer done()

	var texture gfx.Texture
	if err := texture.LoadFromBytes(ren, staticResources.Bytes("checker.bmp")); err != nil {
		t.Fatal(err)
	}
	defer texture.Free()

	if texture.Width() != 4 || texture.Height() != 4 {
		t.Errorf("expected 4x4, got %dx%d", texture.Width(), texture.Height())
	}
	if texture.Empty() {
		t.Error("texture should be loaded")
	}
	if err := texture.Render(ren, 10, 20); err != nil {
		t.Errorf("render after load failed: %v", err)
	}
}

func TestLoadFailureLeavesEmpty(t *testing.T) {
	ren, done := newTestRenderer(t)
	defer done()

	var texture gfx.Texture
	if err := texture.LoadFromFile(ren, "testdata/no-such-image.png"); err == nil {
		t.Fatal("expected an error for a missing asset")
	}
	if texture.Width() != 0 || texture.Height() != 0 {
		t.Error("failed load must leave dimensions at zero")
	}
	if !texture.Empty() {
		t.Error("failed load must leave the texture empty")
	}
	if err := texture.Render(ren, 0, 0); err != gfx.ErrEmpty {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	// and Free stays a no-op
	texture.Free()
}

func TestFreeIsIdempotent(t *testing.T) {
	ren, done := newTestRenderer(t)
	defer done()

	var texture gfx.Texture
	if err := texture.LoadFromBytes(ren, staticResources.Bytes("checker.bmp")); err != nil {
		t.Fatal(err)
	}

	texture.Free()
	texture.Free()
	if texture.Width() != 0 || texture.Height() != 0 || !texture.Empty() {
		t.Error("texture not empty after double free")
	}
}

func TestReloadReplacesTexture(t *testing.T) {
	ren, done := newTestRenderer(t)
	defer done()

	var texture gfx.Texture
	if err := texture.LoadFromBytes(ren, staticResources.Bytes("checker.bmp")); err != nil {
		t.Fatal(err)
	}
	defer texture.Free()

	if err := texture.LoadFromImage(ren, testImage(8, 2)); err != nil {
		t.Fatal(err)
	}
	if texture.Width() != 8 || texture.Height() != 2 {
		t.Errorf("expected 8x2 after reload, got %dx%d", texture.Width(), texture.Height())
	}
}

func TestLoadFromSurfaceDimensions(t *testing.T) {
	ren, done := newTestRenderer(t)
	defer done()

	surf, err := gfx.SurfaceFromImage(testImage(6, 3))
	if err != nil {
		t.Fatal(err)
	}
	defer surf.Free()

	var texture gfx.Texture
	if err := texture.LoadFromSurface(ren, surf); err != nil {
		t.Fatal(err)
	}
	defer texture.Free()

	if texture.Width() != 6 || texture.Height() != 3 {
		t.Errorf("expected 6x3, got %dx%d", texture.Width(), texture.Height())
	}
}

func TestLoadFromPack(t *testing.T) {
	ren, done := newTestRenderer(t)
	defer done()

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, testImage(5, 7)); err != nil {
		t.Fatal(err)
	}

	builder := pak.NewBuilder(pak.Header{Author: "test", Version: 1})
	if err := builder.Add("sprites/dot.png", encoded.Bytes()); err != nil {
		t.Fatal(err)
	}
	var archive bytes.Buffer
	if _, err := builder.WriteTo(&archive); err != nil {
		t.Fatal(err)
	}

	opened, err := pak.Open(bytes.NewReader(archive.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	var texture gfx.Texture
	if err := texture.LoadFromPack(ren, opened, "sprites/dot.png"); err != nil {
		t.Fatal(err)
	}
	defer texture.Free()

	if texture.Width() != 5 || texture.Height() != 7 {
		t.Errorf("expected 5x7, got %dx%d", texture.Width(), texture.Height())
	}

	if err := texture.LoadFromPack(ren, opened, "missing.png"); err != pak.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if !texture.Empty() {
		t.Error("failed pack load must leave the texture empty")
	}
}

func TestEmptyTextureOperations(t *testing.T) {
	var texture gfx.Texture

	// all of these must be safe without any resource held
	texture.SetColorModulation(255, 0, 0)
	texture.Free()

	if texture.Width() != 0 || texture.Height() != 0 {
		t.Error("empty texture must report zero dimensions")
	}
	if h := texture.Handle(); !h.Absent() {
		t.Error("empty texture handle must be absent")
	}
	if err := texture.RenderTo(nil, sdl.Rect{W: 10, H: 10}); err != gfx.ErrEmpty {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}
