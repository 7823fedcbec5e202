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

// Package radix implements a most-significant-character-first radix sort for strings over a
// contiguous alphabet.
//
// Every pass distributes a range of strings into buckets by the character at the current depth.
// Bucket 0 collects the strings that end before that depth, these are equal to each other and sort
// before all other strings in the range. Bucket k > 0 collects the strings with the k-th
// character of the alphabet at that depth. Every bucket with more than one string is then sorted
// one character deeper.
package radix

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"znkr.io/algos/internal/byteview"
	"znkr.io/algos/internal/counting"
)

// ErrInvalidCharacter is matched by all errors reporting a character outside of the alphabet.
var ErrInvalidCharacter = errors.New("invalid character")

// CharacterError reports a character outside of the alphabet.
type CharacterError struct {
	Index  int  // Index of the offending element in the input.
	Offset int  // Byte offset of the character in that element.
	Char   byte // The offending character.

	First, Last byte // The alphabet.
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d of element %d: alphabet is [%q, %q]", e.Char, e.Offset, e.Index, e.First, e.Last)
}

func (e *CharacterError) Unwrap() error { return ErrInvalidCharacter }

// Sort returns the elements of src in lexicographic order. All characters must be in the alphabet
// [first, last]. Elements of type []byte are copied, the result never shares memory with src.
func Sort[T string | []byte](src []T, first, last byte) ([]T, error) {
	if first > last {
		panic("radix.Sort: empty alphabet")
	}
	if err := validate(src, first, last); err != nil {
		return nil, err
	}

	out := slices.Clone(src)
	if b, ok := any(out).([][]byte); ok {
		for i := range b {
			b[i] = bytes.Clone(b[i])
		}
	}
	if len(out) <= 1 {
		return out, nil
	}

	nkeys := int(last-first) + 2
	tmp := make([]T, len(out))

	type frame struct{ beg, end, depth int }
	stack := []frame{{0, len(out), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := func(s T) int {
			v := byteview.From(s)
			if v.Len() <= f.depth {
				return 0
			}
			return int(v.At(f.depth)-first) + 1
		}
		start := counting.ByKey(out[f.beg:f.end], tmp[f.beg:f.end], nkeys, key)
		copy(out[f.beg:f.end], tmp[f.beg:f.end])

		// Bucket 0 is final. Push the remaining buckets in reverse, so that they are popped in
		// alphabetical order.
		for k := nkeys - 1; k >= 1; k-- {
			if start[k+1]-start[k] > 1 {
				stack = append(stack, frame{f.beg + start[k], f.beg + start[k+1], f.depth + 1})
			}
		}
	}
	return out, nil
}

func validate[T string | []byte](src []T, first, last byte) error {
	for i, v := range byteview.FromAll(src) {
		for off, c := range v.Bytes() {
			if c < first || c > last {
				return &CharacterError{
					Index:  i,
					Offset: off,
					Char:   c,
					First:  first,
					Last:   last,
				}
			}
		}
	}
	return nil
}
