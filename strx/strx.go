// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strx provides string formatting, cleaning, and validation
// helpers: case conversion, whitespace normalization, truncation,
// random string generation, and URL slugs.
package strx

import (
	"regexp"
	"strings"

	strip "github.com/grokify/html-strip-tags-go"
	"github.com/iancoleman/strcase"

	"github.com/jionpz/jpy-utils/randx"
)

// Charset for [Random] when none is given.
const defaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	spaceRegexp  = regexp.MustCompile(`\s+`)
	emailRegexp  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	numberRegexp = regexp.MustCompile(`\d+\.?\d*`)
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugDash     = regexp.MustCompile(`[-\s]+`)
)

// ToSnake converts a CamelCase or mixedCase string to snake_case,
// splitting runs of capitals so that "XMLHttpRequest" becomes
// "xml_http_request".
func ToSnake(s string) string {
	return strcase.ToSnake(s)
}

// ToCamel converts a snake_case string to CamelCase with the first
// word capitalized.
func ToCamel(s string) string {
	return strcase.ToCamel(s)
}

// ToLowerCamel converts a snake_case string to camelCase with the
// first word lower case.
func ToLowerCamel(s string) string {
	return strcase.ToLowerCamel(s)
}

// Clean trims leading and trailing whitespace and collapses every
// internal run of whitespace into a single space.
func Clean(s string) string {
	return spaceRegexp.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Truncate shortens s to at most max runes, replacing the cut tail
// with the given suffix, so that the result including the suffix is
// max runes long. Strings already within the limit are returned
// unchanged.
func Truncate(s string, max int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := max - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + suffix
}

// Random returns a random string of n characters drawn from letters
// and digits. An optional random source can be passed; otherwise the
// global source is used.
func Random(n int, randOpt ...randx.Rand) string {
	return RandomFrom(n, defaultCharset, randOpt...)
}

// RandomFrom returns a random string of n characters drawn from the
// given charset.
func RandomFrom(n int, charset string, randOpt ...randx.Rand) string {
	var rnd randx.Rand
	if len(randOpt) > 0 {
		rnd = randOpt[0]
	} else {
		rnd = randx.NewGlobalRand()
	}
	chars := []rune(charset)
	b := make([]rune, n)
	for i := range b {
		b[i] = chars[rnd.Intn(len(chars))]
	}
	return string(b)
}

// IsEmail reports whether s looks like a valid email address.
func IsEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// StripHTML removes HTML tags from s, leaving the text content.
func StripHTML(s string) string {
	return strip.StripTags(s)
}

// Numbers returns the numeric substrings of s, including decimal
// fractions, in order of appearance.
func Numbers(s string) []string {
	return numberRegexp.FindAllString(s, -1)
}

// Slugify converts s to a URL-friendly slug: lower case, punctuation
// removed, and runs of whitespace and dashes collapsed to single
// dashes.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
