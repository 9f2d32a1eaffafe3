// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the device-independent CIE color spaces and the
// conversions between them and gamma-encoded sRGB: the XYZ tristimulus
// values under the D65 and D50 reference whites, Bradford chromatic
// adaptation between the two, CIE L*a*b* under D50, and its cylindrical
// LCH form.
//
// Each space is its own type, so adaptation-incompatible values cannot be
// mixed without an explicit conversion: an [XYZ] (D65-relative) value must
// go through [XYZD65ToD50] before it can feed [XYZToLAB], which is defined
// against the D50 white. The fixed matrix and white point constants are the
// float64 values published for CSS Color 4, and the L*a*b* thresholds are
// the exact CIE rationals, so the companding and compression curves are
// continuous at their breakpoints.
package cie

// WhiteD65 is the XYZ white point of the CIE standard illuminant D65
// (ordinary daylight, the sRGB reference white), derived from its
// chromaticity coordinates x = 0.3127, y = 0.3290 with Y = 1.
var WhiteD65 = XYZ{0.3127 / 0.3290, 1, (1 - 0.3127 - 0.3290) / 0.3290}

// WhiteD50 is the XYZ white point of the CIE standard illuminant D50
// (horizon light, the ICC profile connection white used for L*a*b* here),
// derived from its chromaticity coordinates x = 0.3457, y = 0.3585
// with Y = 1.
var WhiteD50 = XYZD50{0.3457 / 0.3585, 1, (1 - 0.3457 - 0.3585) / 0.3585}
