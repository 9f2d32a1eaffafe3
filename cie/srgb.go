// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"goki.dev/chroma"
)

// SRGBToLinearComp converts a single gamma-encoded sRGB component in the
// 0-1 range to linear light, using the piecewise sRGB transfer function
// (linear below 0.04045, power 2.4 above).
func SRGBToLinearComp(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a single linear light component in the 0-1
// range to a gamma-encoded sRGB component, using the inverse piecewise
// sRGB transfer function (linear below 0.0031308, power 1/2.4 above).
func SRGBFromLinearComp(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear converts a gamma-encoded sRGB color to its linear light
// components.
func SRGBToLinear(c chroma.RGB) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(c.R)
	gl = SRGBToLinearComp(c.G)
	bl = SRGBToLinearComp(c.B)
	return
}

// SRGBFromLinear converts linear light components to a gamma-encoded
// sRGB color.
func SRGBFromLinear(rl, gl, bl float64) chroma.RGB {
	return chroma.RGB{
		R: SRGBFromLinearComp(rl),
		G: SRGBFromLinearComp(gl),
		B: SRGBFromLinearComp(bl),
	}
}
