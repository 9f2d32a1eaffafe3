// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"goki.dev/chroma"
	"goki.dev/chroma/cie"
)

// pow25To7 is 25^7, the constant in the chroma rescaling terms of
// CIEDE2000 (equations 4 and 17 of Sharma, Wu, Dalal 2005).
const pow25To7 = 6103515625.0

// CIEDE2000 returns the CIEDE2000 ΔE00 between two L*a*b* colors with
// the parametric weights at their reference values kL = kC = kH = 1.
//
// The implementation follows the structure and hue conventions of
// Sharma, Wu, Dalal, "The CIEDE2000 Color-Difference Formula:
// Implementation Notes, Supplementary Test Data, and Mathematical
// Observations" (2005), and reproduces their test data within 1e-4.
// The metric is symmetric.
func CIEDE2000(x, y cie.LAB) float64 {
	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	cb := (c1 + c2) / 2
	cb7 := math.Pow(cb, 7)
	g := 0.5 * (1 - math.Sqrt(cb7/(cb7+pow25To7)))

	a1p := (1 + g) * x.A
	a2p := (1 + g) * y.A
	c1p := math.Hypot(a1p, x.B)
	c2p := math.Hypot(a2p, y.B)
	h1p := primeHue(a1p, x.B)
	h2p := primeHue(a2p, y.B)

	dlp := y.L - x.L
	dcp := c2p - c1p
	var dhp float64
	if c1p*c2p != 0 {
		dhp = chroma.HueMinDelta(h1p, h2p)
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	lbp := (x.L + y.L) / 2
	cbp := (c1p + c2p) / 2
	hbp := meanPrimeHue(h1p, h2p, c1p, c2p)

	t := 1 - 0.17*math.Cos(rad(hbp-30)) + 0.24*math.Cos(rad(2*hbp)) +
		0.32*math.Cos(rad(3*hbp+6)) - 0.20*math.Cos(rad(4*hbp-63))
	dTheta := 30 * math.Exp(-((hbp-275)/25)*((hbp-275)/25))
	cbp7 := math.Pow(cbp, 7)
	rc := 2 * math.Sqrt(cbp7/(cbp7+pow25To7))

	lb50 := (lbp - 50) * (lbp - 50)
	sl := 1 + 0.015*lb50/math.Sqrt(20+lb50)
	sc := 1 + 0.045*cbp
	sh := 1 + 0.015*cbp*t
	rt := -math.Sin(rad(2*dTheta)) * rc

	dl := dlp / sl
	dc := dcp / sc
	dh := dHp / sh
	return math.Sqrt(dl*dl + dc*dc + dh*dh + rt*dc*dh)
}

// primeHue returns the hue angle in degrees in [0, 360) of the
// chroma-scaled a', b plane, with the a' = b = 0 singularity pinned
// to 0 as the formula requires.
func primeHue(ap, b float64) float64 {
	if b == 0 && ap == 0 {
		return 0
	}
	return chroma.NormHue(math.Atan2(b, ap) * 180 / math.Pi)
}

// meanPrimeHue returns the circular mean hue h̄' of equation 14:
// the plain sum when either chroma is zero, otherwise the midpoint
// of the shorter arc between the two hues.
func meanPrimeHue(h1p, h2p, c1p, c2p float64) float64 {
	sum := h1p + h2p
	switch {
	case c1p*c2p == 0:
		return sum
	case math.Abs(h1p-h2p) <= 180:
		return sum / 2
	case sum < 360:
		return (sum + 360) / 2
	default:
		return (sum - 360) / 2
	}
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
