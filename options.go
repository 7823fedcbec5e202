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
	"fmt"

	"znkr.io/algos/internal/config"
)

// Option configures the behavior of functions in this package.
type Option = config.Option

// CheckSorted makes functions that require sorted input verify that the input is sorted in
// ascending order. If it isn't, they panic. The check costs an additional pass over the input.
//
// By default, unsorted input silently produces wrong results.
func CheckSorted() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CheckSorted = true
		return config.CheckSorted
	}
}

// Coefficients replaces the coefficients of the linear combination searched by
// [LinearCombination]. The default is p*a[i] + q*b[j] with p=2 and q=3.
//
// Both coefficients must be positive and representable in the element type of the slices,
// otherwise [LinearCombination] panics.
func Coefficients(p, q int) Option {
	if p <= 0 || q <= 0 {
		panic(fmt.Sprintf("algos.Coefficients(%d, %d): coefficients must be positive", p, q))
	}
	return func(cfg *config.Config) config.Flag {
		cfg.CoefA, cfg.CoefB = p, q
		return config.Coefficients
	}
}

// Alphabet sets the inclusive range of bytes accepted by [LexicographicSort]. The default is
// 'a' to 'z'. Every byte in the range gets its own bucket, so a narrow alphabet is cheaper.
func Alphabet(first, last byte) Option {
	if first > last {
		panic(fmt.Sprintf("algos.Alphabet(%q, %q): empty alphabet", first, last))
	}
	return func(cfg *config.Config) config.Flag {
		cfg.AlphabetFirst, cfg.AlphabetLast = first, last
		return config.Alphabet
	}
}
