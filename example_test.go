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

package algos_test

import (
	"fmt"
	"strings"

	"znkr.io/algos"
)

func ExampleQuicksort() {
	fmt.Println(algos.Quicksort([]int{-4, 9, 10, 32, 1, 2, 3, 1, 2, 1, 0, 8, 6, 7}))
	// Output:
	// [-4 0 1 1 1 2 2 3 6 7 8 9 10 32]
}

// Sort words by length, longest first.
func ExampleQuicksortFunc() {
	words := strings.Fields("the quick brown fox jumps")
	sorted := algos.QuicksortFunc(words, func(a, b string) int {
		return algos.Ascending(len(b), len(a))
	})
	for _, w := range sorted {
		fmt.Println(len(w))
	}
	// Output:
	// 5
	// 5
	// 5
	// 3
	// 3
}

func ExampleCountingSort() {
	fmt.Println(algos.CountingSort([]uint8{5, 3, 2, 1, 4, 2, 10, 0}))
	// Output:
	// [0 1 2 2 3 4 5 10]
}

func ExampleLexicographicSort() {
	sorted, err := algos.LexicographicSort([]string{"b", "ba", "a", "bc", ""})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", sorted)
	// Output:
	// ["" "a" "b" "ba" "bc"]
}

// Sort DNA sequences over the alphabet A to T.
func ExampleAlphabet() {
	sorted, err := algos.LexicographicSort([]string{"GATTACA", "CAT", "ACT", "GAT"}, algos.Alphabet('A', 'T'))
	if err != nil {
		panic(err)
	}
	fmt.Println(sorted)
	// Output:
	// [ACT CAT GAT GATTACA]
}

func ExampleLinearCombinationIndex() {
	a := []int{0, 1, 2, 3, 4}
	b := []int{5, 7, 9, 10, 31}
	i, j, ok := algos.LinearCombinationIndex(a, b, 34)
	fmt.Println(ok, a[i], b[j])
	// Output:
	// true 2 10
}

func ExampleMaxSubarrayRange() {
	v := []int{-2, -2, 0, 100, 3, -203, 1, 40, 54}
	lo, hi, sum := algos.MaxSubarrayRange(v)
	fmt.Println(v[lo:hi], sum)
	// Output:
	// [100 3] 103
}

func ExampleRemoveDuplicates() {
	v := []int{-2, -1, 3, 4, 4, 4, 5, 7}
	k := algos.RemoveDuplicates(v)
	fmt.Println(v[:k])
	// Output:
	// [-2 -1 3 4 5 7]
}
