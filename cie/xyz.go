// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "goki.dev/chroma"

// XYZ is a color in the CIE XYZ tristimulus space relative to the D65
// reference white, scaled so that the Y (luminance) of white is 1.
// All components are non-negative for physical colors. XYZ is the
// interchange hub between sRGB, L*a*b* (after adaptation to D50),
// and OKLab.
type XYZ struct {
	X, Y, Z float64
}

// XYZD50 is a color in the CIE XYZ tristimulus space adapted to the D50
// reference white, scaled so that the Y (luminance) of white is 1.
// It is a distinct type from the D65-relative [XYZ] because tristimulus
// values under different whites cannot be compared or converted onward
// without chromatic adaptation ([XYZD65ToD50], [XYZD50ToD65]).
type XYZD50 struct {
	X, Y, Z float64
}

// SRGBLinToXYZ converts linear sRGB components to XYZ under D65,
// using the standard sRGB primaries matrix.
func SRGBLinToXYZ(rl, gl, bl float64) XYZ {
	return XYZ{
		X: 0.41239079926595934*rl + 0.357584339383878*gl + 0.1804807884018343*bl,
		Y: 0.21263900587151027*rl + 0.715168678767756*gl + 0.07219231536073371*bl,
		Z: 0.01933081871559182*rl + 0.11919477979462598*gl + 0.9505321522496607*bl,
	}
}

// XYZToSRGBLin converts XYZ under D65 to linear sRGB components, using
// the inverse of the standard sRGB primaries matrix. Components can fall
// outside 0-1 for colors outside the sRGB gamut.
func XYZToSRGBLin(v XYZ) (rl, gl, bl float64) {
	rl = 3.2409699419045226*v.X + -1.537383177570094*v.Y + -0.4986107602930034*v.Z
	gl = -0.9692436362808796*v.X + 1.8759675015077202*v.Y + 0.04155505740717559*v.Z
	bl = 0.05563007969699366*v.X + -0.20397695888897652*v.Y + 1.0569715142428786*v.Z
	return
}

// SRGBToXYZ converts a gamma-encoded sRGB color to XYZ under D65:
// the components are decoded to linear light and then multiplied
// through the sRGB primaries matrix.
func SRGBToXYZ(c chroma.RGB) XYZ {
	return SRGBLinToXYZ(SRGBToLinear(c))
}

// XYZToSRGB converts XYZ under D65 to a gamma-encoded sRGB color.
// Out-of-gamut results are preserved, not clipped.
func XYZToSRGB(v XYZ) chroma.RGB {
	return SRGBFromLinear(XYZToSRGBLin(v))
}

// XYZD65ToD50 chromatically adapts XYZ from the D65 white to the D50
// white, using the linear Bradford transform. [XYZD50ToD65] inverts it
// to within about 1e-7 per component.
func XYZD65ToD50(v XYZ) XYZD50 {
	return XYZD50{
		X: 1.0479298208405488*v.X + 0.022946793341019088*v.Y + -0.05019222954313557*v.Z,
		Y: 0.029627815688159344*v.X + 0.990434484573249*v.Y + -0.01707382502938514*v.Z,
		Z: -0.009243058152591178*v.X + 0.015055144896577895*v.Y + 0.7518742899580008*v.Z,
	}
}

// XYZD50ToD65 chromatically adapts XYZ from the D50 white back to the
// D65 white, using the inverse linear Bradford transform.
func XYZD50ToD65(v XYZD50) XYZ {
	return XYZ{
		X: 0.9554734527042182*v.X + -0.023098536874261423*v.Y + 0.0632593086610217*v.Z,
		Y: -0.028369706963208136*v.X + 1.0099954580058226*v.Y + 0.021041398966943008*v.Z,
		Z: 0.012314001688319899*v.X + -0.020507696433477912*v.Y + 1.3303659366080753*v.Z,
	}
}
