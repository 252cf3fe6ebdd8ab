// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "github.com/veandco/go-sdl2/sdl"

// Kind identifies the SDL resource type a Handle carries.
type Kind int

// Resource kinds known to ReleaseAll.
const (
	KindWindow Kind = iota
	KindRenderer
	KindTexture
	KindSurface
)

// Handle pairs an SDL resource pointer with its kind so that mixed
// resource types can travel through one release call. A Handle built
// from a nil pointer is valid and means "nothing held".
type Handle struct {
	kind Kind
	ptr  interface{}
}

// Win wraps a window handle for ReleaseAll.
func Win(w *sdl.Window) Handle {
	if w == nil {
		return Handle{kind: KindWindow}
	}
	return Handle{kind: KindWindow, ptr: w}
}

// Ren wraps a renderer handle for ReleaseAll.
func Ren(r *sdl.Renderer) Handle {
	if r == nil {
		return Handle{kind: KindRenderer}
	}
	return Handle{kind: KindRenderer, ptr: r}
}

// Tex wraps a texture handle for ReleaseAll.
func Tex(t *sdl.Texture) Handle {
	if t == nil {
		return Handle{kind: KindTexture}
	}
	return Handle{kind: KindTexture, ptr: t}
}

// Surf wraps a surface handle for ReleaseAll.
func Surf(s *sdl.Surface) Handle {
	if s == nil {
		return Handle{kind: KindSurface}
	}
	return Handle{kind: KindSurface, ptr: s}
}

// Kind returns the resource kind of the handle.
func (h Handle) Kind() Kind {
	return h.kind
}

// Absent reports whether the handle holds no resource.
func (h Handle) Absent() bool {
	return h.ptr == nil
}

func (h Handle) destroy() {
	switch h.kind {
	case KindWindow:
		h.ptr.(*sdl.Window).Destroy()
	case KindRenderer:
		h.ptr.(*sdl.Renderer).Destroy()
	case KindTexture:
		h.ptr.(*sdl.Texture).Destroy()
	case KindSurface:
		h.ptr.(*sdl.Surface).Free()
	}
}

// ReleaseAll destroys every resource in the list, strictly left to
// right. Absent handles are skipped. A pointer appearing more than
// once is destroyed only the first time, since SDL does not tolerate
// a double destroy. Destruction order matters when resources depend
// on each other (a renderer must go before its window), so the caller
// lists them in a dependency-safe order.
func ReleaseAll(handles ...Handle) {
	releaseAll(handles, Handle.destroy)
}

func releaseAll(handles []Handle, destroy func(Handle)) {
	released := make(map[interface{}]struct{}, len(handles))
	for _, h := range handles {
		if h.Absent() {
			continue
		}
		if _, done := released[h.ptr]; done {
			continue
		}
		released[h.ptr] = struct{}{}
		destroy(h)
	}
}
