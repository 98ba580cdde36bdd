// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides an injectable random number source, so that
// functions that draw random values (random colors, random strings)
// can run against either the global generator or a seeded private one
// for deterministic tests.
package randx

import "math/rand"

// Rand is the subset of the standard [rand.Rand] methods that the
// utility packages draw on. Pass a seeded implementation to make
// randomized functions deterministic.
type Rand interface {
	// Seed initializes the generator to a deterministic state.
	// It must not be called concurrently with any other method.
	Seed(seed int64)

	// Intn returns a non-negative pseudo-random number in [0, n).
	// It panics if n <= 0.
	Intn(n int) int

	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// Perm returns a pseudo-random permutation of the integers in [0, n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of n elements using the
	// given swap function.
	Shuffle(n int, swap func(i, j int))
}

// SysRand is a [Rand] backed by either a private [rand.Rand] source,
// or, if that is nil, the global rand stream.
type SysRand struct {

	// Rand, if non-nil, is used instead of the global generator.
	Rand *rand.Rand
}

// NewGlobalRand returns a new [SysRand] using the global rand stream.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new [SysRand] with a private source
// initialized from the given seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new private source using the given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

// Seed initializes the generator to a deterministic state.
// It must not be called concurrently with any other method.
func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		r.NewRand(seed)
		return
	}
	r.Rand.Seed(seed)
}

// Intn returns a non-negative pseudo-random number in [0, n).
// It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// Perm returns a pseudo-random permutation of the integers in [0, n).
func (r *SysRand) Perm(n int) []int {
	if r.Rand == nil {
		return rand.Perm(n)
	}
	return r.Rand.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements using the
// given swap function.
func (r *SysRand) Shuffle(n int, swap func(i, j int)) {
	if r.Rand == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Rand.Shuffle(n, swap)
}
