// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chroma

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB(t *testing.T) {
	c := RGB{0.2, 0.4, 0.6}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(13107), r)
	assert.Equal(t, uint32(26214), g)
	assert.Equal(t, uint32(39321), b)
	assert.Equal(t, uint32(65535), a)

	assert.Equal(t, color.RGBA{51, 102, 153, 255}, c.AsRGBA())
	assert.Equal(t, "rgb(0.2, 0.4, 0.6)", c.String())

	// out-of-range components are only clamped at quantization
	hot := RGB{1.2, -0.1, 0.5}
	assert.Equal(t, color.RGBA{255, 0, 128, 255}, hot.AsRGBA())
	assert.Equal(t, 1.2, hot.R)
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, RGB{1, 0, 0}, FromColor(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, RGB{0, 0, 1}, FromColor(color.RGBA{0, 0, 255, 255}))
	assert.Equal(t, RGB{}, FromColor(color.RGBA{0, 0, 0, 0}))

	// translucent colors are un-premultiplied
	c := FromColor(color.RGBA{204, 114, 67, 243})
	assert.InDelta(t, 0.8395061728395061, c.R, 1e-15)
	assert.InDelta(t, 0.4691358024691358, c.G, 1e-15)
	assert.InDelta(t, 0.2757201646090535, c.B, 1e-15)

	assert.Equal(t, RGB{1, 0, 0}, Model.Convert(color.RGBA{255, 0, 0, 255}))
	want := RGB{0.3, 0.6, 0.9}
	assert.Equal(t, want, Model.Convert(want))
}

func TestNamed(t *testing.T) {
	c, ok := Named("steelblue")
	assert.True(t, ok)
	assert.InDelta(t, 70.0/255, c.R, 1e-15)
	assert.InDelta(t, 130.0/255, c.G, 1e-15)
	assert.InDelta(t, 180.0/255, c.B, 1e-15)

	c, ok = Named("Red")
	assert.True(t, ok)
	assert.Equal(t, Red, c)

	_, ok = Named("not-a-color")
	assert.False(t, ok)

	assert.Equal(t, RGB{1, 1, 0}, Yellow)
	assert.Equal(t, RGB{1, 0.6, 0.8}, Pink)
}
