// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package counting implements counting sort and the stable bucket pass it's built on.
package counting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort returns the elements of src in ascending order. The elements must be non-negative, they are
// used as indices into a table of size max(src)+1.
func Sort[T constraints.Integer](src []T) []T {
	dst := make([]T, len(src))
	if len(src) == 0 {
		return dst
	}

	m := src[0]
	for i, v := range src {
		if v < 0 {
			panic(fmt.Sprintf("algos.CountingSort: negative value %v at index %d", v, i))
		}
		m = max(m, v)
	}

	ByKey(src, dst, int(m)+1, func(v T) int { return int(v) })
	return dst
}

// ByKey distributes src into dst ordered by key. Every key must be in [0, nkeys). The pass is
// stable, elements with the same key keep their relative order.
//
// The returned slice has nkeys+1 entries: the elements with key k are dst[start[k]:start[k+1]].
//
// src and dst must have the same length and must not overlap.
func ByKey[T any](src, dst []T, nkeys int, key func(T) int) (start []int) {
	if len(src) != len(dst) {
		panic("counting.ByKey: src and dst must have the same length")
	}

	// Count how often every key appears; counter[k] collects the count for key k.
	counter := make([]int, nkeys+1)
	for _, v := range src {
		counter[key(v)]++
	}

	// Accumulate, counter[k] is now the number of elements with a key <= k.
	for k := 1; k < nkeys; k++ {
		counter[k] += counter[k-1]
	}

	// Place elements from the back, this is what makes the pass stable. After this loop,
	// counter[k] points at the first element with key k.
	for i := len(src) - 1; i >= 0; i-- {
		k := key(src[i])
		counter[k]--
		dst[counter[k]] = src[i]
	}
	counter[nkeys] = len(src)
	return counter
}
