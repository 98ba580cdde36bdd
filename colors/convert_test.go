// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToRGB(t *testing.T) {
	c, err := HexToRGB("#FF0000")
	assert.NoError(t, err)
	assert.Equal(t, RGB{255, 0, 0}, c)

	c, err = HexToRGB("00ff00")
	assert.NoError(t, err)
	assert.Equal(t, RGB{0, 255, 0}, c)

	c, err = HexToRGB("#8040c0")
	assert.NoError(t, err)
	assert.Equal(t, RGB{128, 64, 192}, c)

	for _, bad := range []string{"", "#", "FF00", "#FF00000", "#GG0000", "FF 000", "#FFF"} {
		_, err := HexToRGB(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", bad)
	}
}

func TestRGBToHex(t *testing.T) {
	s, err := RGBToHex(0, 255, 0)
	assert.NoError(t, err)
	assert.Equal(t, "#00FF00", s)

	s, err = RGBToHex(128, 64, 192)
	assert.NoError(t, err)
	assert.Equal(t, "#8040C0", s)

	for _, bad := range [][3]int{{-1, 0, 0}, {0, 256, 0}, {0, 0, 1000}} {
		_, err := RGBToHex(bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		rgb RGB
		hsl HSL
	}{
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 255, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 255}, HSL{240, 100, 50}},
		{RGB{255, 255, 0}, HSL{60, 100, 50}},
		{RGB{0, 255, 255}, HSL{180, 100, 50}},
		{RGB{0, 0, 0}, HSL{0, 0, 0}},
		{RGB{255, 255, 255}, HSL{0, 0, 100}},
		{RGB{128, 128, 128}, HSL{0, 0, 50}},
		{RGB{255, 102, 0}, HSL{24, 100, 50}},
		{RGB{204, 102, 51}, HSL{20, 60, 50}},
		{RGB{128, 64, 192}, HSL{270, 50, 50}},
		{RGB{64, 128, 192}, HSL{210, 50, 50}},
	}
	for _, tt := range tests {
		have, err := RGBToHSL(tt.rgb.R, tt.rgb.G, tt.rgb.B)
		assert.NoError(t, err)
		assert.Equal(t, tt.hsl, have, "rgb %v", tt.rgb)
	}

	_, err := RGBToHSL(300, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestHSLToRGB(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, HSLToRGB(0, 100, 50))
	assert.Equal(t, RGB{0, 255, 0}, HSLToRGB(120, 100, 50))
	assert.Equal(t, RGB{0, 0, 255}, HSLToRGB(240, 100, 50))
	assert.Equal(t, RGB{255, 102, 0}, HSLToRGB(24, 100, 50))
	assert.Equal(t, RGB{0, 0, 0}, HSLToRGB(0, 0, 0))
	assert.Equal(t, RGB{255, 255, 255}, HSLToRGB(0, 0, 100))
	assert.Equal(t, RGB{51, 51, 51}, HSLToRGB(0, 0, 20))

	// hue wraps around the color wheel
	assert.Equal(t, HSLToRGB(0, 100, 50), HSLToRGB(360, 100, 50))
}

// Round trips through integer HSL truncate fractional hue degrees and
// percentage points, so channels can drift slightly; the result must
// stay visually consistent with the original.
func TestRoundTrip(t *testing.T) {
	// exact for colors whose H/S/L land on integers
	exact := []RGB{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{0, 0, 0}, {255, 255, 255}, {51, 51, 51}, {102, 102, 102},
		{255, 102, 0},
	}
	for _, c := range exact {
		hsl, err := RGBToHSL(c.R, c.G, c.B)
		assert.NoError(t, err)
		assert.Equal(t, c, HSLToRGB(hsl.H, hsl.S, hsl.L), "rgb %v", c)
	}

	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				hsl, err := RGBToHSL(r, g, b)
				assert.NoError(t, err)
				back := HSLToRGB(hsl.H, hsl.S, hsl.L)
				assert.InDelta(t, r, back.R, 8, "rgb(%d, %d, %d)", r, g, b)
				assert.InDelta(t, g, back.G, 8, "rgb(%d, %d, %d)", r, g, b)
				assert.InDelta(t, b, back.B, 8, "rgb(%d, %d, %d)", r, g, b)
			}
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#FF0000", "#00ff00", "8040c0", "#AbCdEf", "123456"} {
		rgb, err := HexToRGB(s)
		assert.NoError(t, err)
		hex, err := RGBToHex(rgb.R, rgb.G, rgb.B)
		assert.NoError(t, err)
		want := s
		if want[0] != '#' {
			want = "#" + want
		}
		assert.Equal(t, toUpperASCII(want), hex)
	}
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
