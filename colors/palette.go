// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"strings"
)

// Variation selects the color-theory strategy used by [Palette] to
// derive colors from a base color.
type Variation int32

const (
	// Analogous sweeps the hue from 30 degrees below the base hue to
	// 30 degrees above it, holding saturation and lightness constant.
	Analogous Variation = iota

	// Monochromatic holds the hue constant and spreads saturation and
	// lightness linearly around the base values.
	Monochromatic

	// Triadic uses the three hues spaced 120 degrees apart on the color
	// wheel, cycling with progressively increased lightness when more
	// than three colors are requested.
	Triadic
)

func (v Variation) String() string {
	switch v {
	case Analogous:
		return "analogous"
	case Monochromatic:
		return "monochromatic"
	case Triadic:
		return "triadic"
	}
	return fmt.Sprintf("Variation(%d)", int32(v))
}

// ParseVariation returns the [Variation] named by the given tag,
// matching case-insensitively. It returns [ErrUnsupportedFormat]
// for an unrecognized tag.
func ParseVariation(tag string) (Variation, error) {
	switch strings.ToLower(tag) {
	case "analogous":
		return Analogous, nil
	case "monochromatic":
		return Monochromatic, nil
	case "triadic":
		return Triadic, nil
	}
	return 0, fmt.Errorf("%w: palette variation %q", ErrUnsupportedFormat, tag)
}

// Palette generates an ordered palette of count colors derived from the
// given base color, all in the same representation as the base. It
// returns [ErrUnsupportedFormat] for an unrecognized variation.
// A count of zero or less yields an empty palette.
func Palette(base Color, count int, variation Variation) ([]Color, error) {
	hsl := base.HSL()
	h := float64(hsl.H)
	s := float64(hsl.S)
	l := float64(hsl.L)
	palette := make([]Color, 0, max(count, 0))

	switch variation {
	case Analogous:
		// hue sweep from h-30 to h+30 in count equal steps
		step := 0.0
		if count > 1 {
			step = 60 / float64(count-1)
		}
		for i := 0; i < count; i++ {
			nh := wrapHue(h - 30 + float64(i)*step)
			palette = append(palette, base.withRGB(hslToRGB(nh, s, l)))
		}

	case Monochromatic:
		for i := 0; i < count; i++ {
			factor := 0.0
			if count > 1 {
				factor = float64(i) / float64(count-1)
			}
			ns := math.Max(10, math.Min(100, s+(factor-0.5)*40))
			nl := math.Max(10, math.Min(90, l+(factor-0.5)*40))
			palette = append(palette, base.withRGB(HSLToRGB(hsl.H, int(ns), int(nl))))
		}

	case Triadic:
		angles := [...]float64{0, 120, 240}
		for i := 0; i < min(count, 3); i++ {
			nh := wrapHue(h + angles[i])
			palette = append(palette, base.withRGB(hslToRGB(nh, s, l)))
		}
		// cycle through the same three hues with raised lightness
		for len(palette) < count {
			idx := len(palette) % 3
			factor := float64(len(palette)/3+1) * 0.2
			nh := wrapHue(h + angles[idx])
			nl := math.Max(10, math.Min(90, l+factor*40))
			palette = append(palette, base.withRGB(hslToRGB(nh, s, float64(int(nl)))))
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, variation)
	}
	return palette, nil
}

// wrapHue wraps a hue in degrees onto [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
