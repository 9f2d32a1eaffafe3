// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormHue(t *testing.T) {
	assert.Equal(t, 0.0, NormHue(0))
	assert.Equal(t, 0.0, NormHue(360))
	assert.Equal(t, 5.0, NormHue(725))
	assert.Equal(t, 0.5, NormHue(720.5))
	assert.Equal(t, 270.0, NormHue(-90))
	assert.Equal(t, 355.0, NormHue(-725))
	assert.Equal(t, 359.5, NormHue(-0.5))
	assert.Equal(t, 359.99, NormHue(359.99))
}

func TestHueMinDelta(t *testing.T) {
	assert.Equal(t, 0.0, HueMinDelta(42, 42))
	assert.Equal(t, 20.0, HueMinDelta(100, 120))
	assert.Equal(t, -20.0, HueMinDelta(120, 100))

	// differences across the 0/360 seam take the short arc
	assert.Equal(t, 20.0, HueMinDelta(350, 10))
	assert.Equal(t, -20.0, HueMinDelta(10, 350))
	assert.Equal(t, 2.0, HueMinDelta(359, 1))
	assert.Equal(t, -2.0, HueMinDelta(1, 359))

	// antipodal hues keep the sign of the raw difference
	assert.Equal(t, 180.0, HueMinDelta(0, 180))
	assert.Equal(t, -180.0, HueMinDelta(180, 0))
}
