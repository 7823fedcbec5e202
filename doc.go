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

// Package algos provides classic array and sorting algorithms on slices.
//
// The sorting functions [Quicksort], [CountingSort], and [LexicographicSort] never modify their
// input, they return a sorted copy. [RemoveDuplicates] works in place. [LinearCombination] and
// [MaxSubarray] only read their input.
//
// Performance: [Quicksort] uses three-way partitioning around the last element of a range. It
// takes O(n log n) time on average and O(n²) on sorted or reverse sorted inputs. [CountingSort]
// takes O(n + m) time and O(m) space, where m is the largest value. [LexicographicSort] takes
// O(L + kB) time where L is the total length of all strings, k the size of the alphabet, and B the
// number of buckets with more than one string. All other functions are O(n).
//
// Violated preconditions, like unequal lengths for [LinearCombination] or an empty input for
// [MaxSubarray], cause a panic. The documentation of every function lists its preconditions.
package algos
