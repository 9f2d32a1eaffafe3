// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae implements color difference (ΔE) metrics: a weighted
// Euclidean distance over sRGB, and the CIE metrics CIE76, CIE94, and
// CIEDE2000 over L*a*b*.
//
// The metrics operate directly on coordinates in their native space and
// do no conversion themselves; convert first with the cie package when
// starting from sRGB. All of them return 0 for identical inputs, and all
// except CIE94 are symmetric in their arguments (CIE94 scales by the
// first argument's chroma, following its standard form).
//
// On the rough shared scale of the CIE metrics, a ΔE of 1 is about the
// smallest difference a person can notice, and 100 separates black from
// white. CIEDE2000 is the most perceptually accurate and the most
// expensive; CIE76 is the cheapest and overstates differences between
// saturated colors.
package deltae

import (
	"math"

	"goki.dev/chroma"
)

// RGBEuclidean returns the weighted Euclidean distance between two
// gamma-encoded sRGB colors: sqrt(wr*Δr² + wg*Δg² + wb*Δb²).
//
// With unit weights it is the plain RGB distance. A common choice for a
// cheap perceptual improvement is wr=2, wg=4, wb=3 (or the hue-dependent
// "redmean" weights), reflecting the eye's differing sensitivity per
// channel. The result scale depends on the weights, so it is not
// comparable to the ΔE of the CIE metrics.
func RGBEuclidean(x, y chroma.RGB, wr, wg, wb float64) float64 {
	dr := x.R - y.R
	dg := x.G - y.G
	db := x.B - y.B
	return math.Sqrt(wr*dr*dr + wg*dg*dg + wb*db*db)
}
