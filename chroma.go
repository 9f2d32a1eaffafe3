// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chroma provides color space conversions and perceptual color
// difference (ΔE) metrics with float64 precision.
//
// The root package defines the [RGB] value type that all of the space
// packages convert from and to, along with the shared hue-circle helpers.
// The conversions themselves live in subpackages, one per family of spaces:
//
//   - [goki.dev/chroma/cie]: sRGB companding, XYZ tristimulus values under
//     the D65 and D50 reference whites, Bradford chromatic adaptation,
//     CIE L*a*b* and its cylindrical LCH form.
//   - [goki.dev/chroma/oklab]: the OKLab perceptually uniform space and its
//     cylindrical OKLCH form, derived from XYZ under D65.
//   - [goki.dev/chroma/hsl]: the HSL cylinder over gamma-encoded sRGB.
//   - [goki.dev/chroma/deltae]: color difference metrics (weighted RGB
//     Euclidean, CIE76, CIE94, CIEDE2000).
//
// Spaces are distinct Go types, so a D65-relative XYZ value cannot be passed
// where a D50-adapted one is required without going through the explicit
// adaptation transform. Conversions between non-adjacent spaces are chained,
// e.g. RGB → XYZ → XYZD50 → LAB → LCH; the space packages provide composite
// functions for the common chains.
//
// All functions are pure: no shared state, no allocation beyond their fixed
// size results, and therefore safe for unrestricted concurrent use. Inputs
// are trusted; NaN propagates through rather than producing an error.
package chroma

import (
	"fmt"
	"image/color"
)

// RGB is a standard gamma-corrected sRGB color, with float64 components
// nominally in the 0-1 range. Values outside 0-1 are preserved as given
// (they arise from out-of-gamut conversion results and HDR sources); only
// the quantizing accessors [RGB.RGBA] and [RGB.AsRGBA] clamp.
type RGB struct {
	R, G, B float64
}

// FromColor returns an RGB from the given standard [color.Color],
// un-premultiplying the alpha. A fully transparent color yields the
// zero RGB.
func FromColor(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	fa := float64(a)
	return RGB{float64(r) / fa, float64(g) / fa, float64(b) / fa}
}

// Model is the standard [color.Model] that converts colors to [RGB].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if r, ok := c.(RGB); ok {
		return r
	}
	return FromColor(c)
}

// RGBA implements the [color.Color] interface: alpha-premultiplied
// 16 bits per channel, with full (opaque) alpha. Components are clamped
// to the 0-1 range for quantization.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R)*65535.0 + 0.5)
	g = uint32(clamp01(c.G)*65535.0 + 0.5)
	b = uint32(clamp01(c.B)*65535.0 + 0.5)
	a = 65535
	return
}

// AsRGBA returns the color as a standard 8-bit [color.RGBA],
// clamping each component to the 0-1 range.
func (c RGB) AsRGBA() color.RGBA {
	return color.RGBA{
		uint8(clamp01(c.R)*255.0 + 0.5),
		uint8(clamp01(c.G)*255.0 + 0.5),
		uint8(clamp01(c.B)*255.0 + 0.5),
		255,
	}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
