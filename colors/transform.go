// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/chewxy/math32"

// Lighten returns a color that is lighter by the given amount in [0, 1],
// in the same representation as the input. It converts to HSL, adds
// amount*100 to the lightness (clamped to 100), and converts back.
func Lighten(c Color, amount float64) Color {
	hsl := c.HSL()
	hsl.L = min(100, hsl.L+int(amount*100))
	return c.withRGB(HSLToRGB(hsl.H, hsl.S, hsl.L))
}

// Darken returns a color that is darker by the given amount in [0, 1],
// in the same representation as the input. It converts to HSL, subtracts
// amount*100 from the lightness (clamped to 0), and converts back.
func Darken(c Color, amount float64) Color {
	hsl := c.HSL()
	hsl.L = max(0, hsl.L-int(amount*100))
	return c.withRGB(HSLToRGB(hsl.H, hsl.S, hsl.L))
}

// Complementary returns the color on the opposite side of the color
// wheel (hue rotated by 180 degrees), in the same representation as
// the input.
func Complementary(c Color) Color {
	hsl := c.HSL()
	hsl.H = (hsl.H + 180) % 360
	return c.withRGB(HSLToRGB(hsl.H, hsl.S, hsl.L))
}

// Distance returns the Euclidean distance between two colors in
// RGB space.
func Distance(a, b Color) float32 {
	ar, br := a.RGB(), b.RGB()
	dr := float32(br.R - ar.R)
	dg := float32(br.G - ar.G)
	db := float32(br.B - ar.B)
	return math32.Sqrt(dr*dr + dg*dg + db*db)
}

// Luminance returns the perceptual luminance of the color in [0, 255],
// as the weighted channel sum 0.299*R + 0.587*G + 0.114*B. The weights
// are applied in integer thousandths so that uniform grays produce
// exact values (the luminance of rgb(128, 128, 128) is exactly 128).
func Luminance(c Color) float64 {
	rgb := c.RGB()
	return float64(299*rgb.R+587*rgb.G+114*rgb.B) / 1000
}

// IsDark reports whether the color's perceptual [Luminance] is below
// the given threshold, which defaults to 128 if not specified.
func IsDark(c Color, threshold ...float64) bool {
	th := 128.0
	if len(threshold) > 0 {
		th = threshold[0]
	}
	return Luminance(c) < th
}

// Contrast returns white or black, whichever contrasts more with the
// given color per [IsDark], in the same representation as the input.
func Contrast(c Color) Color {
	if IsDark(c) {
		return c.withRGB(RGB{255, 255, 255})
	}
	return c.withRGB(RGB{0, 0, 0})
}

// Blend returns a color that is the given percent blend of other into c:
// 10 means 10% of other and 90% of c. Blending is done channel-wise in
// RGB space, and the result is in the same representation as c.
func Blend(c Color, pct float64, other Color) Color {
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	f := pct / 100
	cr, or := c.RGB(), other.RGB()
	return c.withRGB(RGB{
		R: int((1-f)*float64(cr.R) + f*float64(or.R)),
		G: int((1-f)*float64(cr.G) + f*float64(or.G)),
		B: int((1-f)*float64(cr.B) + f*float64(or.B)),
	})
}
