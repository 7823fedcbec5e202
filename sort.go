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
	"slices"

	"golang.org/x/exp/constraints"
	"znkr.io/algos/internal/config"
	"znkr.io/algos/internal/counting"
	"znkr.io/algos/internal/quick"
	"znkr.io/algos/internal/radix"
)

// Ascending is the three-way comparison used by [Quicksort]. It returns -1 if a < b, 0 if a == b,
// and +1 otherwise.
func Ascending[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Quicksort returns a copy of source sorted in ascending order.
//
// The sort is not stable. It's efficient for inputs with many duplicates, but sorted and reverse
// sorted inputs take O(n²) time.
func Quicksort[T cmp.Ordered](source []T) []T {
	return QuicksortFunc(source, Ascending[T])
}

// QuicksortFunc returns a copy of source sorted in the order defined by cmp. cmp(a, b) must return
// a negative number if a sorts before b, a positive number if a sorts after b, and zero if they are
// equivalent.
//
// The sort is not stable.
func QuicksortFunc[T any](source []T, cmp func(a, b T) int) []T {
	dest := slices.Clone(source)
	quick.Sort(dest, cmp)
	return dest
}

// CountingSort returns a copy of source sorted in ascending order. The sort is stable.
//
// All values must be non-negative, a negative value causes a panic. CountingSort allocates a table
// with one entry per value up to the largest one, it's only suitable for small values.
func CountingSort[T constraints.Integer](source []T) []T {
	return counting.Sort(source)
}

// ErrInvalidCharacter is matched by errors from [LexicographicSort] that report a character
// outside of the alphabet.
var ErrInvalidCharacter = radix.ErrInvalidCharacter

// CharacterError reports a character outside of the alphabet.
type CharacterError = radix.CharacterError

// LexicographicSort returns a copy of source sorted in lexicographic order: The empty string
// sorts first and every string sorts before all longer strings it's a prefix of. Elements of type
// []byte are copied as well, modifying the result never changes source.
//
// All characters must be in the alphabet, 'a' to 'z' by default. Otherwise, LexicographicSort
// returns a [*CharacterError] for the first offending character and no result.
//
// The following option is supported: [algos.Alphabet]
func LexicographicSort[T string | []byte](source []T, opts ...Option) ([]T, error) {
	cfg := config.FromOptions(opts, config.Alphabet)
	return radix.Sort(source, cfg.AlphabetFirst, cfg.AlphabetLast)
}
