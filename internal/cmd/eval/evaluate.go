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

package main

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"znkr.io/algos"
)

type result struct {
	trial    int
	algo     string
	n        int
	duration time.Duration
	err      error
}

// evaluator validates all algorithms on random inputs derived from a seed and a trial number. The
// same seed and trial always produce the same inputs.
type evaluator struct {
	trial int
	n     int
	rng   *rand.Rand
}

func newEvaluator(seed uint64, trial, n int) *evaluator {
	return &evaluator{
		trial: trial,
		n:     n,
		rng:   rand.New(rand.NewChaCha8(sha256.Sum256(fmt.Append(nil, seed, trial)))),
	}
}

func (e *evaluator) run() []result {
	return []result{
		e.measure("quicksort", e.quicksort),
		e.measure("countingsort", e.countingsort),
		e.measure("lexsort", e.lexsort),
		e.measure("maxsubarray", e.maxsubarray),
		e.measure("dedup", e.dedup),
		e.measure("lincomb", e.lincomb),
	}
}

// measure runs f with a random size limited by the evaluator's maximum. f returns the size it
// actually used.
func (e *evaluator) measure(algo string, f func(n int) (int, error)) (r result) {
	r = result{trial: e.trial, algo: algo, n: e.rng.IntN(e.n + 1)}
	defer func() {
		if p := recover(); p != nil {
			r.err = fmt.Errorf("panic: %v", p)
		}
	}()
	start := time.Now()
	r.n, r.err = f(r.n)
	r.duration = time.Since(start)
	return r
}

// ints returns n random values in [lo, hi).
func (e *evaluator) ints(n, lo, hi int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = lo + e.rng.IntN(hi-lo)
	}
	return v
}

// spread returns a range for random values. Small ranges produce many duplicates.
func (e *evaluator) spread(n int) int {
	return 1 + e.rng.IntN(2*n+1)
}

func (e *evaluator) quicksort(n int) (int, error) {
	k := e.spread(n)
	in := e.ints(n, -k, k)
	want := slices.Clone(in)
	slices.Sort(want)
	return n, compare(want, algos.Quicksort(in))
}

func (e *evaluator) countingsort(n int) (int, error) {
	in := e.ints(n, 0, e.spread(n))
	want := slices.Clone(in)
	slices.Sort(want)
	return n, compare(want, algos.CountingSort(in))
}

func (e *evaluator) lexsort(n int) (int, error) {
	first := byte('a' + e.rng.IntN(26))
	last := first + byte(e.rng.IntN(int('z'-first)+1))
	in := make([]string, n)
	for i := range in {
		s := make([]byte, e.rng.IntN(8))
		for j := range s {
			s[j] = first + byte(e.rng.IntN(int(last-first)+1))
		}
		in[i] = string(s)
	}
	want := slices.Clone(in)
	slices.Sort(want)
	got, err := algos.LexicographicSort(in, algos.Alphabet(first, last))
	if err != nil {
		return n, err
	}
	return n, compare(want, got)
}

func (e *evaluator) maxsubarray(n int) (int, error) {
	n = max(n, 1)
	k := e.spread(n)
	in := e.ints(n, -k, k)
	want := in[0]
	for i := range in {
		sum := 0
		for j := i; j < len(in); j++ {
			sum += in[j]
			want = max(want, sum)
		}
	}
	lo, hi, got := algos.MaxSubarrayRange(in)
	if got != want {
		return n, fmt.Errorf("got %d, want %d", got, want)
	}
	sum := 0
	for _, x := range in[lo:hi] {
		sum += x
	}
	if sum != got {
		return n, fmt.Errorf("range [%d, %d) sums to %d, want %d", lo, hi, sum, got)
	}
	return n, nil
}

func (e *evaluator) dedup(n int) (int, error) {
	in := e.ints(n, 0, e.spread(n))
	slices.Sort(in)
	want := slices.Compact(slices.Clone(in))
	k := algos.RemoveDuplicates(in, algos.CheckSorted())
	return n, compare(want, in[:k])
}

func (e *evaluator) lincomb(n int) (int, error) {
	n = min(n, 200) // The reference is quadratic.
	k := e.spread(n)
	a := e.ints(n, -k, k)
	b := e.ints(n, -k, k)
	slices.Sort(a)
	slices.Sort(b)
	c := e.rng.IntN(10*k+1) - 5*k
	want := false
	for _, x := range a {
		for _, y := range b {
			want = want || 2*x+3*y == c
		}
	}
	i, j, got := algos.LinearCombinationIndex(a, b, c, algos.CheckSorted())
	if got != want {
		return n, fmt.Errorf("c = %d: got %t, want %t", c, got, want)
	}
	if got && 2*a[i]+3*b[j] != c {
		return n, fmt.Errorf("c = %d: 2*a[%d] + 3*b[%d] = %d", c, i, j, 2*a[i]+3*b[j])
	}
	return n, nil
}

func compare[T comparable](want, got []T) error {
	if len(want) != len(got) {
		return fmt.Errorf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}
