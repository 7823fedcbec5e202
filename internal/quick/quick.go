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

// Package quick implements quicksort with three-way partitioning.
//
// The pivot is always the last element of a range. Elements equal to the pivot are gathered in one
// block and never visited again, which keeps inputs with many duplicates cheap. Sorted and reverse
// sorted inputs are the worst case with O(n²) comparisons.
package quick

// Sort sorts data in place using the three-way comparison cmp.
//
// Instead of recursing, pending ranges are kept on an explicit stack. That way, the depth of the
// partition tree (up to len(data) for adversarial inputs) never touches the goroutine stack.
func Sort[T any](data []T, cmp func(a, b T) int) {
	type span struct{ beg, end int }

	stack := []span{{0, len(data)}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.end-r.beg < 2 {
			continue
		}
		lower, upper := Partition(data, r.beg, r.end, cmp)
		// Push the upper range first, so that the lower range is processed first. This visits the
		// ranges in the same order a recursive implementation would.
		stack = append(stack, span{upper, r.end}, span{r.beg, lower})
	}
}

// Partition rearranges data[beg:end] around the pivot data[end-1] and returns the bounds of the
// block of elements equal to the pivot:
//
//   - data[beg:lower] < pivot
//   - data[lower:upper] == pivot
//   - data[upper:end] > pivot
//
// The range must not be empty.
func Partition[T any](data []T, beg, end int, cmp func(a, b T) int) (lower, upper int) {
	if beg >= end {
		panic("quick.Partition: empty range")
	}
	last := end - 1
	pivot := data[last]

	// Move everything less than the pivot to the front.
	i := beg
	for j := beg; j < last; j++ {
		if cmp(data[j], pivot) < 0 {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	lower = i

	// Move everything equal to the pivot right after that.
	for j := lower; j < last; j++ {
		if cmp(data[j], pivot) == 0 {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}

	// The pivot closes the equal block.
	data[i], data[last] = data[last], data[i]
	upper = i + 1
	return lower, upper
}
