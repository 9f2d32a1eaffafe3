// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab implements Björn Ottosson's OKLab perceptual color space
// and its cylindrical OKLCH form, converting to and from CIE XYZ under
// the D65 illuminant.
//
// OKLab improves on CIE L*a*b* in hue uniformity and lightness prediction
// while staying cheap to compute: a linear map from XYZ to an LMS-like
// cone space, a cube root on each component, and a second linear map.
// All values are float64 and no clipping is performed, so out-of-gamut
// inputs round-trip exactly.
package oklab

import (
	"math"

	"goki.dev/chroma"
	"goki.dev/chroma/cie"
)

// LAB is a color in OKLab. L is the perceptual lightness in the 0-1
// range (unlike CIE L*a*b* which runs 0-100); a and b are the
// green-red and blue-yellow axes, typically within about ±0.4 for
// colors inside the sRGB gamut.
type LAB struct {
	L, A, B float64
}

// XYZToLAB converts D65-adapted XYZ (Y of white = 1) to OKLab:
// a linear map into the LMS cone space, a cube-root compression of each
// cone response, and a linear map into the Lab opponent axes.
func XYZToLAB(v cie.XYZ) LAB {
	l := 0.8190224432164319*v.X + 0.3619062562801221*v.Y - 0.12887378261216414*v.Z
	m := 0.0329836671980271*v.X + 0.9292868468965546*v.Y + 0.03614466816999844*v.Z
	s := 0.048177199566046255*v.X + 0.26423952494422764*v.Y + 0.6335478258136937*v.Z

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	return LAB{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// LABToXYZ converts OKLab back to D65-adapted XYZ, inverting each stage
// of [XYZToLAB]: the opponent axes back to compressed cone responses,
// a cube to undo the compression, and the inverse cone matrix.
func LABToXYZ(v LAB) cie.XYZ {
	l := 0.99999999845051981432*v.L + 0.39633779217376785678*v.A + 0.21580375806075880339*v.B
	m := 1.0000000088817607767*v.L - 0.1055613423236563494*v.A - 0.063854174771705903402*v.B
	s := 1.0000000546724109177*v.L - 0.089484182094965759684*v.A - 1.2914855378640917399*v.B

	l = l * l * l
	m = m * m * m
	s = s * s * s

	return cie.XYZ{
		X: 1.2268798733741557*l - 0.5578149965554813*m + 0.28139105017721583*s,
		Y: -0.04057576262431372*l + 1.1122868293970594*m - 0.07171106666151701*s,
		Z: -0.07637294974672142*l - 0.4214933239627914*m + 1.5869240244272418*s,
	}
}

// SRGBToLAB converts a gamma-encoded sRGB color to OKLab via D65 XYZ.
func SRGBToLAB(c chroma.RGB) LAB {
	return XYZToLAB(cie.SRGBToXYZ(c))
}

// LABToSRGB converts OKLab to a gamma-encoded sRGB color via D65 XYZ.
// Out-of-gamut results are preserved, not clipped.
func LABToSRGB(v LAB) chroma.RGB {
	return cie.XYZToSRGB(LABToXYZ(v))
}
