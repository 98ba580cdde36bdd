// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLighten(t *testing.T) {
	c := Lighten(MustFromHex("#808080"), 0.2)
	assert.Equal(t, FormatHex, c.Format())
	assert.Equal(t, "#B2B2B2", c.String())

	c = Lighten(MustFromRGB(128, 128, 128), 0.2)
	assert.Equal(t, FormatRGB, c.Format())
	assert.Equal(t, RGB{178, 178, 178}, c.RGB())

	// lightness clamps at 100
	assert.Equal(t, "#FFFFFF", Lighten(MustFromHex("#808080"), 1).String())
}

func TestDarken(t *testing.T) {
	c := Darken(MustFromHex("#808080"), 0.2)
	assert.Equal(t, "#4C4C4C", c.String())

	c = Darken(MustFromRGB(128, 128, 128), 0.2)
	assert.Equal(t, RGB{76, 76, 76}, c.RGB())

	// lightness clamps at 0
	assert.Equal(t, "#000000", Darken(MustFromHex("#808080"), 1).String())
}

func TestComplementary(t *testing.T) {
	// the green channel lands at 254: hsl(180, 100, 50) converts back
	// through a hue interpolation that truncates just below 255
	assert.Equal(t, "#00FEFF", Complementary(MustFromHex("#FF0000")).String())
	assert.Equal(t, RGB{0, 254, 255}, Complementary(MustFromRGB(255, 0, 0)).RGB())

	// rotating the hue twice comes back to the original
	c := MustFromHex("#FF0000")
	assert.Equal(t, c, Complementary(Complementary(c)))

	// tolerance for colors whose HSL truncates
	c = MustFromRGB(204, 114, 67)
	back := Complementary(Complementary(c)).RGB()
	assert.InDelta(t, 204, back.R, 6)
	assert.InDelta(t, 114, back.G, 6)
	assert.InDelta(t, 67, back.B, 6)
}

func TestDistance(t *testing.T) {
	red := MustFromHex("#FF0000")
	green := MustFromRGB(0, 255, 0)

	assert.InDelta(t, 360.62, Distance(red, green), 0.01)
	assert.Equal(t, Distance(red, green), Distance(green, red))
	assert.Equal(t, float32(0), Distance(red, red))

	assert.InDelta(t, 441.67, Distance(MustFromHex("#000000"), MustFromHex("#FFFFFF")), 0.01)
}

func TestLuminance(t *testing.T) {
	assert.Equal(t, 0.0, Luminance(MustFromHex("#000000")))
	assert.Equal(t, 255.0, Luminance(MustFromHex("#FFFFFF")))
	assert.InDelta(t, 76.245, Luminance(MustFromHex("#FF0000")), 0.001)
}

func TestIsDark(t *testing.T) {
	assert.True(t, IsDark(MustFromRGB(0, 0, 0)))
	assert.False(t, IsDark(MustFromRGB(255, 255, 255)))
	assert.True(t, IsDark(MustFromRGB(0, 0, 255)))
	assert.False(t, IsDark(MustFromRGB(255, 255, 0)))

	// luminance exactly at the threshold is not dark
	assert.False(t, IsDark(MustFromRGB(128, 128, 128), 128))
	assert.True(t, IsDark(MustFromRGB(128, 128, 128), 129))
}

func TestContrast(t *testing.T) {
	assert.Equal(t, "#FFFFFF", Contrast(MustFromHex("#202020")).String())
	assert.Equal(t, "#000000", Contrast(MustFromHex("#E0E0E0")).String())
	assert.Equal(t, RGB{255, 255, 255}, Contrast(MustFromRGB(0, 0, 128)).RGB())
}

func TestBlend(t *testing.T) {
	black := MustFromHex("#000000")
	white := MustFromHex("#FFFFFF")

	assert.Equal(t, "#7F7F7F", Blend(black, 50, white).String())
	assert.Equal(t, "#000000", Blend(black, 0, white).String())
	assert.Equal(t, "#FFFFFF", Blend(black, 100, white).String())
	assert.Equal(t, RGB{127, 127, 127}, Blend(MustFromRGB(0, 0, 0), 50, white).RGB())
}
