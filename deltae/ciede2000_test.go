// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"testing"

	"github.com/jkl1337/go-chromath"
	chromdeltae "github.com/jkl1337/go-chromath/deltae"
	"github.com/stretchr/testify/assert"

	"goki.dev/chroma/cie"
)

// sharmaPairs is the complete CIEDE2000 test dataset of Sharma, Wu,
// Dalal (2005), table 1: 34 L*a*b* pairs with the expected ΔE00 to
// four decimals. The first 16 pairs probe the hue branch points.
var sharmaPairs = []struct {
	l1, a1, b1 float64
	l2, a2, b2 float64
	want       float64
}{
	{50.0000, 2.6772, -79.7751, 50.0000, 0.0000, -82.7485, 2.0425},
	{50.0000, 3.1571, -77.2803, 50.0000, 0.0000, -82.7485, 2.8615},
	{50.0000, 2.8361, -74.0200, 50.0000, 0.0000, -82.7485, 3.4412},
	{50.0000, -1.3802, -84.2814, 50.0000, 0.0000, -82.7485, 1.0000},
	{50.0000, -1.1848, -84.8006, 50.0000, 0.0000, -82.7485, 1.0000},
	{50.0000, -0.9009, -85.5211, 50.0000, 0.0000, -82.7485, 1.0000},
	{50.0000, 0.0000, 0.0000, 50.0000, -1.0000, 2.0000, 2.3669},
	{50.0000, -1.0000, 2.0000, 50.0000, 0.0000, 0.0000, 2.3669},
	{50.0000, 2.4900, -0.0010, 50.0000, -2.4900, 0.0009, 7.1792},
	{50.0000, 2.4900, -0.0010, 50.0000, -2.4900, 0.0010, 7.1792},
	{50.0000, 2.4900, -0.0010, 50.0000, -2.4900, 0.0011, 7.2195},
	{50.0000, 2.4900, -0.0010, 50.0000, -2.4900, 0.0012, 7.2195},
	{50.0000, -0.0010, 2.4900, 50.0000, 0.0009, -2.4900, 4.8045},
	{50.0000, -0.0010, 2.4900, 50.0000, 0.0010, -2.4900, 4.8045},
	{50.0000, -0.0010, 2.4900, 50.0000, 0.0011, -2.4900, 4.7461},
	{50.0000, 2.5000, 0.0000, 50.0000, 0.0000, -2.5000, 4.3065},
	{50.0000, 2.5000, 0.0000, 73.0000, 25.0000, -18.0000, 27.1492},
	{50.0000, 2.5000, 0.0000, 61.0000, -5.0000, 29.0000, 22.8977},
	{50.0000, 2.5000, 0.0000, 56.0000, -27.0000, -3.0000, 31.9030},
	{50.0000, 2.5000, 0.0000, 58.0000, 24.0000, 15.0000, 19.4535},
	{50.0000, 2.5000, 0.0000, 50.0000, 3.1736, 0.5854, 1.0000},
	{50.0000, 2.5000, 0.0000, 50.0000, 3.2972, 0.0000, 1.0000},
	{50.0000, 2.5000, 0.0000, 50.0000, 1.8634, 0.5757, 1.0000},
	{50.0000, 2.5000, 0.0000, 50.0000, 3.2592, 0.3350, 1.0000},
	{60.2574, -34.0099, 36.2677, 60.4626, -34.1751, 39.4387, 1.2644},
	{63.0109, -31.0961, -5.8663, 62.8187, -29.7946, -4.0864, 1.2630},
	{61.2901, 3.7196, -5.3901, 61.4292, 2.2480, -4.9620, 1.8731},
	{35.0831, -44.1164, 3.7933, 35.0232, -40.0716, 1.5901, 1.8645},
	{22.7233, 20.0904, -46.6940, 23.0331, 14.9730, -42.5619, 2.0373},
	{36.4612, 47.8580, 18.3852, 36.2715, 50.5065, 21.2231, 1.4146},
	{90.8027, -2.0831, 1.4410, 91.1528, -1.6435, 0.0447, 1.4441},
	{90.9257, -0.5406, -0.9208, 88.6381, -0.8985, -0.7239, 1.5381},
	{6.7747, -0.2908, -2.4247, 5.8714, -0.0985, -2.2286, 0.6377},
	{2.0776, 0.0795, -1.1350, 0.9033, -0.0636, -0.5514, 0.9082},
}

func TestCIEDE2000Sharma(t *testing.T) {
	for i, p := range sharmaPairs {
		x := cie.LAB{L: p.l1, A: p.a1, B: p.b1}
		y := cie.LAB{L: p.l2, A: p.a2, B: p.b2}
		assert.InDelta(t, p.want, CIEDE2000(x, y), 1e-4, "pair %d", i+1)
		assert.InDelta(t, p.want, CIEDE2000(y, x), 1e-4, "pair %d reversed", i+1)
	}
}

func TestCIEDE2000(t *testing.T) {
	assert.Equal(t, 0.0, CIEDE2000(cie.LAB{L: 50, A: 2.5, B: 0}, cie.LAB{L: 50, A: 2.5, B: 0}))
	assert.Equal(t, 100.0, CIEDE2000(cie.LAB{}, cie.LAB{L: 100, A: 0, B: 0}))

	// symmetric, unlike CIE94
	x := cie.LAB{L: 60.2574, A: -34.0099, B: 36.2677}
	y := cie.LAB{L: 60.4626, A: -34.1751, B: 39.4387}
	assert.Equal(t, CIEDE2000(x, y), CIEDE2000(y, x))
	assert.InDelta(t, 1.2644200135991903, CIEDE2000(x, y), 1e-10)
}

// TestCIEDE2000AgainstChromath compares against go-chromath's
// independent ΔE00 on the plain chromatic pairs of the Sharma set
// (the singularity pairs depend on branch conventions, the rest do not).
func TestCIEDE2000AgainstChromath(t *testing.T) {
	for i, p := range sharmaPairs[24:] {
		want := chromdeltae.CIE2000(
			chromath.Lab{p.l1, p.a1, p.b1},
			chromath.Lab{p.l2, p.a2, p.b2},
			&chromdeltae.KLChDefault)
		got := CIEDE2000(cie.LAB{L: p.l1, A: p.a1, B: p.b1}, cie.LAB{L: p.l2, A: p.a2, B: p.b2})
		assert.InDelta(t, want, got, 1e-6, "pair %d", i+25)
	}
}
