// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl implements the HSL (hue, saturation, lightness) cylindrical
// model over gamma-encoded sRGB, along with transformation functions for
// lightening, darkening, saturating, and spinning colors.
//
// HSL is a reshaping of the sRGB cube, not a perceptual space: equal
// lightness steps are not equal perceived steps. It is kept here because
// its transforms are cheap, intuitive, and exact over the full gamut.
package hsl

import (
	"fmt"
	"image/color"
	"math"

	"goki.dev/chroma"
)

// HSL is a color in the HSL cylinder over gamma-encoded sRGB.
// H is the hue in degrees in [0, 360), S the saturation in [0, 1],
// and L the lightness in [0, 1].
type HSL struct {
	H, S, L float64
}

// New returns a new HSL color for the given hue (0-360),
// saturation (0-1), and lightness (0-1).
func New(h, s, l float64) HSL {
	return HSL{h, s, l}
}

// FromRGB converts a gamma-encoded sRGB color to HSL. Achromatic colors
// (all components equal) get hue 0 and saturation 0.
func FromRGB(v chroma.RGB) HSL {
	mx := math.Max(v.R, math.Max(v.G, v.B))
	mn := math.Min(v.R, math.Min(v.G, v.B))
	l := (mx + mn) / 2
	if mx == mn {
		return HSL{L: l}
	}
	c := mx - mn
	s := c / (1 - math.Abs(2*l-1))
	var h float64
	switch mx {
	case v.R:
		h = (v.G - v.B) / c
	case v.G:
		h = (v.B-v.R)/c + 2
	default:
		h = (v.R-v.G)/c + 4
	}
	return HSL{H: chroma.NormHue(60 * h), S: s, L: l}
}

// RGB converts back to gamma-encoded sRGB, walking the six 60 degree
// hue sectors of the cylinder.
func (h HSL) RGB() chroma.RGB {
	c := (1 - math.Abs(2*h.L-1)) * h.S
	hp := chroma.NormHue(h.H) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := h.L - c/2
	return chroma.RGB{R: r + m, G: g + m, B: b + m}
}

// FromColor returns an HSL from the given standard [color.Color].
func FromColor(c color.Color) HSL {
	return FromRGB(chroma.FromColor(c))
}

// Model is the standard [color.Model] that converts colors to [HSL].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the [color.Color] interface.
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.RGB().RGBA()
}

// AsRGBA returns the color as a standard 8-bit [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	return h.RGB().AsRGBA()
}

// SetColor sets from a standard [color.Color].
func (h *HSL) SetColor(c color.Color) {
	*h = FromColor(c)
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}
