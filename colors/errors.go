// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "errors"

var (
	// ErrInvalidFormat is returned for a malformed hex color string
	// (wrong length or non-hex characters) or an RGB channel value
	// outside of [0, 255].
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrUnsupportedFormat is returned for a format or palette
	// variation tag that is not one of the recognized values.
	ErrUnsupportedFormat = errors.New("unsupported color format")
)
