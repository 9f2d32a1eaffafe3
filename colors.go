// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chroma

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Named returns the [RGB] value of the given SVG 1.1 color name
// (case insensitive), and whether the name is known. The named colors
// here are a small palette; Named covers the full standard set.
func Named(name string) (RGB, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGB{}, false
	}
	return FromColor(c), true
}

// Basic named colors as [RGB] values, for tests, palettes, and defaults.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}

	Red   = RGB{1, 0, 0}
	Green = RGB{0, 1, 0}
	Blue  = RGB{0, 0, 1}

	Yellow = RGB{1, 1, 0}
	Purple = RGB{1, 0, 1}
	Cyan   = RGB{0, 1, 1}

	Pink    = RGB{1, 0.6, 0.8}
	Magenta = RGB{1, 0.15, 0.8}
	Rose    = RGB{1, 0, 0.59}

	Gold   = RGB{1, 0.8, 0.16}
	Orange = RGB{1, 0.4, 0}
	Rust   = RGB{0.7, 0.2, 0}

	Aquamarine = RGB{0, 1, 0.6}
)
