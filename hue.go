// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chroma

import "math"

// NormHue normalizes the given hue angle in degrees into the [0, 360)
// range, wrapping around in either direction.
func NormHue(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// HueMinDelta returns the signed difference b - a between two hue angles
// in degrees, taking the shorter arc around the hue circle, so that the
// result is always in [-180, 180]. A positive number means add to a to
// get to b. Both angles must already be in the [0, 360) range
// (see [NormHue]). Hues of 359° and 1° therefore differ by 2, not 358;
// every formula that differences hues goes through here.
func HueMinDelta(a, b float64) float64 {
	d := b - a
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return d
}
