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

package algos

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
	"znkr.io/algos/internal/config"
)

// LinearCombination reports whether there are indices i and j such that 2*a[i] + 3*b[j] == c.
//
// Both a and b must be sorted in ascending order and must have the same length. Unequal lengths
// cause a panic, unsorted inputs produce wrong results unless [CheckSorted] is set.
//
// The search is a single sweep over both slices and takes O(n) time.
//
// The following options are supported: [algos.CheckSorted], [algos.Coefficients]
func LinearCombination[T constraints.Integer | constraints.Float](a, b []T, c T, opts ...Option) bool {
	_, _, ok := LinearCombinationIndex(a, b, c, opts...)
	return ok
}

// LinearCombinationIndex is like [LinearCombination], but also returns indices i and j with
// 2*a[i] + 3*b[j] == c. If there are no such indices, it returns -1, -1, false.
//
// The following options are supported: [algos.CheckSorted], [algos.Coefficients]
func LinearCombinationIndex[T constraints.Integer | constraints.Float](a, b []T, c T, opts ...Option) (i, j int, ok bool) {
	cfg := config.FromOptions(opts, config.CheckSorted|config.Coefficients)
	if len(a) != len(b) {
		panic(fmt.Sprintf("algos.LinearCombination: len(a) = %d and len(b) = %d differ", len(a), len(b)))
	}
	if cfg.CheckSorted {
		checkSorted("algos.LinearCombination", "a", a)
		checkSorted("algos.LinearCombination", "b", b)
	}

	// p*a[i] + q*b[j] grows with i and shrinks with j. Every step rules out a whole row or column
	// of the (i, j) grid.
	p, q := T(cfg.CoefA), T(cfg.CoefB)
	if int(p) != cfg.CoefA || int(q) != cfg.CoefB || p <= 0 || q <= 0 {
		panic(fmt.Sprintf("algos.Coefficients(%d, %d): coefficients don't fit into %T", cfg.CoefA, cfg.CoefB, p))
	}
	i, j = 0, len(b)-1
	for i < len(a) && j >= 0 {
		switch lin := p*a[i] + q*b[j]; {
		case lin == c:
			return i, j, true
		case lin < c:
			i++
		default:
			j--
		}
	}
	return -1, -1, false
}

// MaxSubarray returns the largest sum of any contiguous, non-empty range of v (Kadane's
// algorithm).
//
// v must not be empty. The sums are computed in T, it's the callers responsibility to make sure
// that they don't overflow.
func MaxSubarray[T constraints.Signed | constraints.Float](v []T) T {
	_, _, sum := MaxSubarrayRange(v)
	return sum
}

// MaxSubarrayRange is like [MaxSubarray], but also returns the range v[lo:hi] with the largest
// sum. If several ranges have the largest sum, it returns the one that ends first.
func MaxSubarrayRange[T constraints.Signed | constraints.Float](v []T) (lo, hi int, sum T) {
	if len(v) == 0 {
		panic("algos.MaxSubarray: empty input")
	}

	// The largest sum of a range ending at i and the start of that range. Both accumulators start
	// with the first element instead of a sentinel.
	ending, start := v[0], 0
	lo, hi, sum = 0, 1, v[0]
	for i := 1; i < len(v); i++ {
		if ending <= 0 {
			ending, start = v[i], i
		} else {
			ending += v[i]
		}
		if ending > sum {
			lo, hi, sum = start, i+1, ending
		}
	}
	return lo, hi, sum
}

// RemoveDuplicates compacts v in place, such that v[:k] contains every distinct value of v once,
// in ascending order, and returns k. The contents of v[k:] are unspecified.
//
// v must be sorted in ascending order. Unsorted inputs produce wrong results unless [CheckSorted]
// is set.
//
// The following option is supported: [algos.CheckSorted]
func RemoveDuplicates[T cmp.Ordered](v []T, opts ...Option) int {
	cfg := config.FromOptions(opts, config.CheckSorted)
	if cfg.CheckSorted {
		checkSorted("algos.RemoveDuplicates", "v", v)
	}
	if len(v) < 2 {
		return len(v)
	}

	i, j := 0, 1 // last unique element, scan position
	for {
		for j < len(v) && v[j] == v[i] {
			j++
		}
		if j == len(v) {
			break
		}
		i++
		v[i], v[j] = v[j], v[i]
		j++
	}
	return i + 1
}

func checkSorted[T cmp.Ordered](fn, name string, v []T) {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			panic(fmt.Sprintf("%s: %s is not sorted: %s[%d] = %v > %s[%d] = %v", fn, name, name, i-1, v[i-1], name, i, v[i]))
		}
	}
}
