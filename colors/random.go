// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"github.com/jionpz/jpy-utils/randx"
)

// Random returns a color with each RGB channel drawn uniformly from
// [0, 255], in the given representation. It returns
// [ErrUnsupportedFormat] if the format is not one of [FormatHex],
// [FormatRGB], or [FormatHSL]. An optional random source can be
// passed; otherwise the global source is used.
func Random(format Format, randOpt ...randx.Rand) (Color, error) {
	switch format {
	case FormatHex, FormatRGB, FormatHSL:
	default:
		return Color{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	var rnd randx.Rand
	if len(randOpt) > 0 {
		rnd = randOpt[0]
	} else {
		rnd = randx.NewGlobalRand()
	}
	rgb := RGB{rnd.Intn(256), rnd.Intn(256), rnd.Intn(256)}
	return Color{format: format, rgb: rgb}, nil
}
