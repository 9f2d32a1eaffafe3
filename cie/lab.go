// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"goki.dev/chroma"
)

// LAB is a color in the CIE L*a*b* space under the D50 reference white.
// L is the perceptual lightness in the 0-100 range; a runs green (negative)
// to red (positive) and b runs blue (negative) to yellow (positive), both
// unbounded but typically within about ±125 for colors inside the sRGB
// gamut.
type LAB struct {
	L, A, B float64
}

// labEpsilon and labKappa are the exact CIE rational constants for the
// L*a*b* compression curve; the curve and its derivative are continuous
// at the breakpoint only with these exact values (ε = (6/29)³, κ = (29/3)³).
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LABCompress is the CIE f(t) nonlinearity applied to white-normalized
// tristimulus components: cube root above ε = 216/24389, the linear
// segment (κ·t + 16) / 116 with κ = 24389/27 below.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress inverts [LABCompress]: cube above the breakpoint,
// the inverse linear segment below.
func LABUncompress(ft float64) float64 {
	if t := ft * ft * ft; t > labEpsilon {
		return t
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts D50-adapted XYZ to L*a*b*: the components are
// normalized by the D50 white, compressed through [LABCompress], and
// combined per L = 116·f(Y) − 16, a = 500·(f(X) − f(Y)),
// b = 200·(f(Y) − f(Z)).
func XYZToLAB(v XYZD50) LAB {
	fx := LABCompress(v.X / WhiteD50.X)
	fy := LABCompress(v.Y / WhiteD50.Y)
	fz := LABCompress(v.Z / WhiteD50.Z)
	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LABToXYZ converts L*a*b* back to D50-adapted XYZ. The Y component
// branches on L > 8 (which is exactly κ·ε), the X and Z components on
// their compressed values, matching [LABCompress] on every branch.
func LABToXYZ(v LAB) XYZD50 {
	fy := (v.L + 16) / 116
	fx := v.A/500 + fy
	fz := fy - v.B/200
	var y float64
	if v.L > 8 {
		y = fy * fy * fy
	} else {
		y = v.L / labKappa
	}
	return XYZD50{
		X: LABUncompress(fx) * WhiteD50.X,
		Y: y * WhiteD50.Y,
		Z: LABUncompress(fz) * WhiteD50.Z,
	}
}

// LToY converts the L* lightness component (0-100) to XYZ luminance Y
// on this package's Y-of-white = 1 scale.
func LToY(l float64) float64 {
	return LABUncompress((l + 16) / 116)
}

// YToL converts XYZ luminance Y (Y of white = 1) to L* lightness (0-100).
func YToL(y float64) float64 {
	return 116*LABCompress(y) - 16
}

// SRGBToLAB converts a gamma-encoded sRGB color to L*a*b*, going through
// XYZ under D65 and Bradford adaptation to D50.
func SRGBToLAB(c chroma.RGB) LAB {
	return XYZToLAB(XYZD65ToD50(SRGBToXYZ(c)))
}

// LABToSRGB converts L*a*b* to a gamma-encoded sRGB color, going through
// Bradford adaptation from D50 and XYZ under D65. Out-of-gamut results
// are preserved, not clipped.
func LABToSRGB(v LAB) chroma.RGB {
	return XYZToSRGB(XYZD50ToD65(LABToXYZ(v)))
}
