// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides slice and map helpers beyond those in the
// standard [slices] and [maps] packages: chunking, order-preserving
// deduplication, grouping, matrix transposition, and summary
// statistics.
package slicesx

import (
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Chunk splits s into consecutive sub-slices of at most size elements.
// The last chunk holds whatever remains. It returns nil if s is empty
// or size is not positive. The chunks alias the backing array of s.
func Chunk[E any](s []E, size int) [][]E {
	if len(s) == 0 || size <= 0 {
		return nil
	}
	chunks := make([][]E, 0, (len(s)+size-1)/size)
	for i := 0; i < len(s); i += size {
		end := min(i+size, len(s))
		chunks = append(chunks, s[i:end:end])
	}
	return chunks
}

// Dedupe returns a new slice with duplicate elements removed,
// keeping the first occurrence of each and preserving order.
func Dedupe[E comparable](s []E) []E {
	return DedupeBy(s, func(e E) E { return e })
}

// DedupeBy returns a new slice with elements whose key repeats
// removed, keeping the first occurrence of each key and preserving
// order.
func DedupeBy[E any, K comparable](s []E, key func(e E) K) []E {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[K]struct{}, len(s))
	out := make([]E, 0, len(s))
	for _, e := range s {
		k := key(e)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}

// GroupBy buckets the elements of s by the given key function,
// preserving the element order within each bucket.
func GroupBy[E any, K comparable](s []E, key func(e E) K) map[K][]E {
	groups := make(map[K][]E)
	for _, e := range s {
		k := key(e)
		groups[k] = append(groups[k], e)
	}
	return groups
}

// Find returns the elements of s for which match reports true,
// in order.
func Find[E any](s []E, match func(e E) bool) []E {
	var out []E
	for _, e := range s {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Transpose flips a row-major matrix into column-major order. A
// ragged matrix is truncated to its shortest row, zip-style. It
// returns nil for an empty matrix or one with an empty row.
func Transpose[E any](m [][]E) [][]E {
	if len(m) == 0 {
		return nil
	}
	cols := len(m[0])
	for _, row := range m[1:] {
		cols = min(cols, len(row))
	}
	if cols == 0 {
		return nil
	}
	out := make([][]E, cols)
	for j := range out {
		col := make([]E, len(m))
		for i := range m {
			col[i] = m[i][j]
		}
		out[j] = col
	}
	return out
}

// FilterMap returns a new map holding the entries of m for which
// keep reports true.
func FilterMap[K comparable, V any](m map[K]V, keep func(k K, v V) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if keep(k, v) {
			out[k] = v
		}
	}
	return out
}

// KeysByValue returns the keys of m ordered by ascending value,
// with ties broken by ascending key to keep the order deterministic.
func KeysByValue[K constraints.Ordered, V constraints.Ordered](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		vi, vj := m[keys[i]], m[keys[j]]
		if vi != vj {
			return vi < vj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Stats holds summary statistics of a sample. See [Summarize].
type Stats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	Sum    float64
	Stddev float64
	Count  int
}

// Summarize computes summary statistics over xs. The median of an
// even-sized sample is the average of the two middle values, and the
// standard deviation is the corrected sample deviation (zero for a
// single value). It returns the zero Stats and ok=false for an empty
// sample.
func Summarize(xs []float64) (Stats, bool) {
	if len(xs) == 0 {
		return Stats{}, false
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := len(sorted)
	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}
	var stddev float64
	if n > 1 {
		stddev = stat.StdDev(xs, nil)
	}
	return Stats{
		Mean:   stat.Mean(xs, nil),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Sum:    floats.Sum(xs),
		Stddev: stddev,
		Count:  n,
	}, true
}
