// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashx provides hashing, encoding and token helpers:
// hex digests, base64 round-trips, UUIDs, salted hashes, and a
// classic caesar cipher for lightweight obfuscation.
package hashx

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidEncoding indicates input that is not valid for the
// requested decoding.
var ErrInvalidEncoding = errors.New("invalid encoding")

// MD5 returns the hex-encoded MD5 digest of s.
// MD5 is not collision resistant; use it for checksums, not security.
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA1 returns the hex-encoded SHA-1 digest of s.
func SHA1(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA256 returns the hex-encoded SHA-256 digest of s.
func SHA256(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Base64Encode returns the standard base64 encoding of s.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes a standard base64 string. It returns an error
// wrapping [ErrInvalidEncoding] for malformed input.
func Base64Decode(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", ErrInvalidEncoding, err)
	}
	return string(b), nil
}

// UUID returns a new random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}

// UUIDShort returns the first 8 hex characters of a new random UUID,
// handy for human-facing identifiers where global uniqueness is not
// required.
func UUIDShort() string {
	return uuid.NewString()[:8]
}

// Salt returns n cryptographically random bytes as a hex string of
// length 2n.
func Salt(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("hashx.Salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// WithSalt returns the SHA-256 digest of s concatenated with salt.
func WithSalt(s, salt string) string {
	return SHA256(s + salt)
}

// Caesar shifts each ASCII letter of s forward by shift positions,
// wrapping within its case. Non-letter runes pass through unchanged.
// Negative shifts rotate backward.
func Caesar(s string, shift int) string {
	shift = ((shift % 26) + 26) % 26
	out := []rune(s)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z':
			out[i] = 'a' + (r-'a'+rune(shift))%26
		case r >= 'A' && r <= 'Z':
			out[i] = 'A' + (r-'A'+rune(shift))%26
		}
	}
	return string(out)
}

// Uncaesar reverses [Caesar] with the same shift.
func Uncaesar(s string, shift int) string {
	return Caesar(s, -shift)
}
