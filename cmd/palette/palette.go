// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command palette generates color palettes from a base color and
// prints them as ANSI swatches.
//
// Usage:
//
//	palette -b "#FF0000" -n 5 -v analogous
//	palette --random --seed 42 -v triadic -f hsl
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/jionpz/jpy-utils/colors"
	"github.com/jionpz/jpy-utils/randx"
)

func main() {
	var (
		base      string
		count     int
		variation string
		format    string
		random    bool
		seed      int64
		noColor   bool
	)
	pflag.StringVarP(&base, "base", "b", "", "base color: #RRGGBB hex or an SVG color name")
	pflag.IntVarP(&count, "count", "n", 5, "number of colors to generate")
	pflag.StringVarP(&variation, "variation", "v", "analogous", "palette variation: analogous, monochromatic, or triadic")
	pflag.StringVarP(&format, "format", "f", "hex", "output format: hex, rgb, or hsl")
	pflag.BoolVar(&random, "random", false, "start from a random base color")
	pflag.Int64Var(&seed, "seed", 0, "seed for --random (0 uses the global source)")
	pflag.BoolVar(&noColor, "no-color", false, "disable ANSI swatches")
	pflag.Parse()

	if err := run(base, count, variation, format, random, seed, noColor); err != nil {
		slog.Error("palette generation failed", "err", err)
		os.Exit(1)
	}
}

func run(base string, count int, variation, format string, random bool, seed int64, noColor bool) error {
	f, err := colors.ParseFormat(format)
	if err != nil {
		return err
	}
	v, err := colors.ParseVariation(variation)
	if err != nil {
		return err
	}

	bc, err := baseColor(base, random, seed)
	if err != nil {
		return err
	}

	pal, err := colors.Palette(bc.In(f), count, v)
	if err != nil {
		return err
	}

	opts := []termenv.OutputOption{}
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(os.Stdout, opts...)
	profile := out.ColorProfile()

	fmt.Fprintf(out, "%s palette from %s:\n", v, bc)
	for _, c := range pal {
		swatch := out.String("    ").Background(profile.Color(c.Hex()))
		fmt.Fprintf(out, "  %s  %s\n", swatch, c)
	}
	return nil
}

// baseColor resolves the base flag, falling back to a random color
// when --random is set or no base is given.
func baseColor(base string, random bool, seed int64) (colors.Color, error) {
	switch {
	case random || base == "":
		if seed != 0 {
			return colors.Random(colors.FormatHex, randx.NewSysRand(seed))
		}
		return colors.Random(colors.FormatHex)
	case strings.HasPrefix(base, "#"):
		return colors.FromHex(base)
	default:
		return colors.FromName(base)
	}
}
