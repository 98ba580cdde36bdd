// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB parses a 6-hexadecimal-digit color string with an optional
// "#" prefix, case-insensitively, and returns the corresponding [RGB]
// triple. It returns [ErrInvalidFormat] if the string has the wrong
// length or contains non-hex characters.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
		}
		ch[i] = int(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// RGBToHex returns the uppercase "#RRGGBB" form of the given channel
// values. It returns [ErrInvalidFormat] if any channel is outside [0, 255].
func RGBToHex(r, g, b int) (string, error) {
	if err := validRGB(r, g, b); err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), nil
}

// RGBToHSL converts the given channel values, each in [0, 255], to an
// [HSL] value with H in [0, 360), S and L in [0, 100]. The float
// hue and percentage values are truncated, not rounded, to integers.
// It returns [ErrInvalidFormat] if any channel is outside [0, 255].
func RGBToHSL(r, g, b int) (HSL, error) {
	if err := validRGB(r, g, b); err != nil {
		return HSL{}, err
	}
	return rgbToHSL(RGB{r, g, b}), nil
}

// HSLToRGB converts an HSL value (H in degrees, S and L in percent)
// to an [RGB] triple, truncating each resulting channel to an integer.
// The hue wraps around the color wheel, so values outside [0, 360)
// are accepted.
func HSLToRGB(h, s, l int) RGB {
	return hslToRGB(float64(h), float64(s), float64(l))
}

func validRGB(r, g, b int) error {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: RGB channel %d out of range [0, 255]", ErrInvalidFormat, v)
		}
	}
	return nil
}

func rgbToHSL(c RGB) HSL {
	h, s, l := rgbToHSLFloat(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	return HSL{H: int(h * 360), S: int(s * 100), L: int(l * 100)}
}

// hslToRGB is the float-valued core of [HSLToRGB]: h in degrees,
// s and l in percent. Palette generation calls this directly with
// fractional hues, which must not be truncated before conversion.
func hslToRGB(h, s, l float64) RGB {
	r, g, b := hslToRGBFloat(h/360, s/100, l/100)
	return RGB{int(r * 255), int(g * 255), int(b * 255)}
}

// rgbToHSLFloat converts normalized [0, 1] RGB channels to normalized
// HSL, using the standard max/min channel chroma-based hue computation.
func rgbToHSLFloat(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l <= 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2 - max - min)
	}
	rc := (max - r) / d
	gc := (max - g) / d
	bc := (max - b) / d
	switch max {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h = math.Mod(h/6, 1)
	if h < 0 {
		h++
	}
	return h, s, l
}

// hslToRGBFloat converts normalized [0, 1] HSL values to normalized
// RGB channels, using the standard two-level interpolation transform.
func hslToRGBFloat(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	r = hueToChannel(m1, m2, h+1.0/3)
	g = hueToChannel(m1, m2, h)
	b = hueToChannel(m1, m2, h-1.0/3)
	return r, g, b
}

func hueToChannel(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	}
	return m1
}
