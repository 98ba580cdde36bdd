// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides conversion between RGB, hexadecimal, and HSL
// color representations, derived-color operations (lighten, darken,
// complement, distance, darkness classification), and palette generation
// from a base color.
//
// The central type is [Color], which remembers the representation it was
// constructed from: every transform on a hex-constructed color yields a
// hex-representable color, and likewise for RGB. Use the free conversion
// functions ([HexToRGB], [RGBToHex], [RGBToHSL], [HSLToRGB]) when working
// with raw values instead.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is a color in the RGB color model, with each
// channel an integer in [0, 255].
type RGB struct {
	R, G, B int
}

// HSL is a color in the HSL color model: hue H in [0, 360) degrees,
// saturation S in [0, 100] percent, and lightness L in [0, 100] percent.
type HSL struct {
	H, S, L int
}

// String returns the color in the form "hsl(h, s, l)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d, %d)", h.H, h.S, h.L)
}

// Format identifies a color representation.
type Format int32

const (
	// FormatHex is the hexadecimal string representation ("#RRGGBB").
	FormatHex Format = iota

	// FormatRGB is the integer triple representation ([RGB]).
	FormatRGB

	// FormatHSL is the hue, saturation, lightness representation ([HSL]).
	FormatHSL
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// ParseFormat returns the [Format] named by the given tag,
// matching case-insensitively against "hex", "rgb", and "hsl".
// It returns [ErrUnsupportedFormat] for anything else.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(tag) {
	case "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	case "hsl":
		return FormatHSL, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
}

// Color is a color value that carries the representation it was
// constructed from, so that the output representation of every
// transform matches the input representation. The zero value is
// black in the hex representation.
type Color struct {
	format Format
	rgb    RGB
}

// FromHex constructs a [Color] in the hex representation from a
// 6-hexadecimal-digit string with an optional "#" prefix.
// It returns [ErrInvalidFormat] for anything else.
func FromHex(hex string) (Color, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{format: FormatHex, rgb: rgb}, nil
}

// MustFromHex is like [FromHex], but it panics on error.
// It is intended only for compile-time constant color strings.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// FromRGB constructs a [Color] in the RGB representation from the
// given channel values, each of which must be in [0, 255].
// It returns [ErrInvalidFormat] otherwise.
func FromRGB(r, g, b int) (Color, error) {
	if err := validRGB(r, g, b); err != nil {
		return Color{}, err
	}
	return Color{format: FormatRGB, rgb: RGB{r, g, b}}, nil
}

// MustFromRGB is like [FromRGB], but it panics on error.
func MustFromRGB(r, g, b int) Color {
	c, err := FromRGB(r, g, b)
	if err != nil {
		panic("colors.MustFromRGB: " + err.Error())
	}
	return c
}

// FromName constructs a [Color] in the RGB representation from the
// given SVG 1.1 standard color name (e.g. "cornflowerblue").
// It returns an error wrapping [ErrInvalidFormat] if the name is unknown.
func FromName(name string) (Color, error) {
	nc, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidFormat, name)
	}
	return Color{format: FormatRGB, rgb: RGB{int(nc.R), int(nc.G), int(nc.B)}}, nil
}

// Format returns the representation this color was constructed from.
func (c Color) Format() Format {
	return c.format
}

// In returns the same color tagged with the given representation,
// which controls how [Color.String] and derived colors render it.
func (c Color) In(format Format) Color {
	return Color{format: format, rgb: c.rgb}
}

// RGB returns the color as an [RGB] triple.
func (c Color) RGB() RGB {
	return c.rgb
}

// Hex returns the color as an uppercase "#RRGGBB" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.rgb.R, c.rgb.G, c.rgb.B)
}

// HSL returns the color as an [HSL] value.
func (c Color) HSL() HSL {
	return rgbToHSL(c.rgb)
}

// AsRGBA returns the color as a fully opaque standard [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	return color.RGBA{uint8(c.rgb.R), uint8(c.rgb.G), uint8(c.rgb.B), 255}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.rgb.R)
	r |= r << 8
	g = uint32(c.rgb.G)
	g |= g << 8
	b = uint32(c.rgb.B)
	b |= b << 8
	a = 0xffff
	return
}

// String returns the color in its own representation: "#RRGGBB" for hex,
// "rgb(r, g, b)" for RGB, and "hsl(h, s, l)" for HSL.
func (c Color) String() string {
	switch c.format {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.rgb.R, c.rgb.G, c.rgb.B)
	case FormatHSL:
		return c.HSL().String()
	}
	return c.Hex()
}

// withRGB returns a color with the given RGB value in the
// same representation as c.
func (c Color) withRGB(rgb RGB) Color {
	return Color{format: c.format, rgb: rgb}
}
