// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

// Flatten collapses a nested string-keyed map into a single level,
// joining the key path with sep, so {"a": {"b": 1}} becomes
// {"a.b": 1} for sep ".". Non-map values are kept as-is.
func Flatten(m map[string]any, sep string) map[string]any {
	out := make(map[string]any, len(m))
	flattenInto(out, m, "", sep)
	return out
}

func flattenInto(out map[string]any, m map[string]any, prefix, sep string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenInto(out, sub, key, sep)
			continue
		}
		out[key] = v
	}
}

// Merge deep-merges b into a copy of a and returns the result.
// Entries whose values are both maps merge recursively; otherwise
// the value from b wins. Neither input is modified.
func Merge(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = copyValue(v)
	}
	for k, v := range b {
		av, ok := out[k].(map[string]any)
		if ok {
			if bv, ok := v.(map[string]any); ok {
				out[k] = Merge(av, bv)
				continue
			}
		}
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, mv := range m {
			out[k] = copyValue(mv)
		}
		return out
	}
	return v
}
