// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"goki.dev/chroma/cie"
)

// CIE76 returns the original 1976 ΔE*ab: the plain Euclidean distance
// in L*a*b*. It is fast but perceptually uneven, overstating differences
// between highly saturated colors.
func CIE76(x, y cie.LAB) float64 {
	dl := x.L - y.L
	da := x.A - y.A
	db := x.B - y.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// CIE94 returns the 1994 ΔE*94 with graphic arts constants
// (kL=1, K1=0.045, K2=0.015).
//
// The metric splits the a, b difference into chroma and hue components
// and divides each term by a chroma-dependent weight. The weights are
// referenced to the first argument's chroma, so CIE94 is not symmetric:
// x is the reference color and y the sample.
func CIE94(x, y cie.LAB) float64 {
	dl := x.L - y.L
	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	dc := c1 - c2
	da := x.A - y.A
	db := x.B - y.B
	// ΔH² from the identity Δa² + Δb² = ΔC² + ΔH², guarded against
	// roundoff driving it slightly negative.
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}
	sc := 1 + 0.045*c1
	sh := 1 + 0.015*c1
	dc /= sc
	return math.Sqrt(dl*dl + dc*dc + dh2/(sh*sh))
}
