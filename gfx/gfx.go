// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx wraps the SDL2 rendering primitives with owned resource
// types. The renderer itself is never owned here, it is created and
// destroyed by the caller (usually through Display) and passed by
// reference into every operation that needs it.
package gfx

import "errors"

// package errors
var (
	// ErrEmpty is returned when a draw operation is attempted
	// on a texture that holds no resource.
	ErrEmpty = errors.New("gfx: no texture loaded")
)
