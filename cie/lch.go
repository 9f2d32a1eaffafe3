// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"goki.dev/chroma"
)

// LCH is the cylindrical form of [LAB]: the same L* lightness, with the
// a, b plane expressed as chroma C (distance from the neutral axis) and
// hue H in degrees in [0, 360).
type LCH struct {
	L, C, H float64
}

// LABToLCH converts rectangular L*a*b* to cylindrical LCH. Achromatic
// colors (C = 0) get hue 0 rather than an undefined angle, so converting
// pure grays always yields a well-defined value.
func LABToLCH(v LAB) LCH {
	c := math.Hypot(v.A, v.B)
	if c == 0 {
		return LCH{L: v.L}
	}
	h := chroma.NormHue(math.Atan2(v.B, v.A) * 180 / math.Pi)
	return LCH{L: v.L, C: c, H: h}
}

// LCHToLAB converts cylindrical LCH back to rectangular L*a*b*.
// Negative chroma is treated as 0.
func LCHToLAB(v LCH) LAB {
	c := v.C
	if c < 0 {
		c = 0
	}
	hr := v.H * math.Pi / 180
	return LAB{L: v.L, A: c * math.Cos(hr), B: c * math.Sin(hr)}
}

// SRGBToLCH converts a gamma-encoded sRGB color to LCH via [SRGBToLAB].
func SRGBToLCH(c chroma.RGB) LCH {
	return LABToLCH(SRGBToLAB(c))
}

// LCHToSRGB converts LCH to a gamma-encoded sRGB color via [LABToSRGB].
// Out-of-gamut results are preserved, not clipped.
func LCHToSRGB(v LCH) chroma.RGB {
	return LABToSRGB(LCHToLAB(v))
}
