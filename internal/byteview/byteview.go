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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"iter"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// At returns the byte at offset i.
func (v ByteView) At(i int) byte { return v.data[i] }

// Bytes yields the bytes of v together with their offsets.
func (v ByteView) Bytes() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := range len(v.data) {
			if !yield(i, v.data[i]) {
				break
			}
		}
	}
}

// FromAll returns views for all elements of in, without copying the underlying data.
func FromAll[T string | []byte](in []T) []ByteView {
	out := make([]ByteView, len(in))
	for i, s := range in {
		out[i] = From(s)
	}
	return out
}
