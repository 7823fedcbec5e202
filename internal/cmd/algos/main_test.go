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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"znkr.io/algos"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		in   string
		want string
	}{
		{
			name: "quicksort",
			cfg:  config{algo: quicksort},
			in:   "-4 9 10 32 1 2 3\n1 2 1 0 8 6 7\n",
			want: "-4 0 1 1 1 2 2 3 6 7 8 9 10 32\n",
		},
		{
			name: "quicksort-empty",
			cfg:  config{algo: quicksort},
			in:   "",
			want: "\n",
		},
		{
			name: "countingsort",
			cfg:  config{algo: countingsort},
			in:   "5 3 2 1 4 2 10 0",
			want: "0 1 2 2 3 4 5 10\n",
		},
		{
			name: "lexsort",
			cfg:  config{algo: lexsort, alphabet: "a-z"},
			in:   "b\nba\na\nbc\n\n",
			want: "\na\nb\nba\nbc\n",
		},
		{
			name: "lexsort-alphabet",
			cfg:  config{algo: lexsort, alphabet: "0-9"},
			in:   "10\n9\n100\n",
			want: "10\n100\n9\n",
		},
		{
			name: "maxsubarray",
			cfg:  config{algo: maxsubarray},
			in:   "-2 -2 0 100 3 -203 1 40 54",
			want: "103\n",
		},
		{
			name: "dedup",
			cfg:  config{algo: dedup, checkSorted: true},
			in:   "-2 -1 3 4 4 4 5 7",
			want: "-2 -1 3 4 5 7\n",
		},
		{
			name: "lincomb-found",
			cfg:  config{algo: lincomb, target: 34},
			in:   "0 1 2 3 4\n5 7 9 10 31\n",
			want: "true\n",
		},
		{
			name: "lincomb-not-found",
			cfg:  config{algo: lincomb, target: 11},
			in:   "0 1 2 3 4\n5 7 9 10 31\n",
			want: "false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			if err := run(&tt.cfg, strings.NewReader(tt.in), &out, zerolog.Nop()); err != nil {
				t.Fatalf("run(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("run(...) output differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		in   string
		want string
	}{
		{
			name: "not-a-number",
			cfg:  config{algo: quicksort},
			in:   "1 two 3",
			want: `reading input: strconv.ParseInt: parsing "two": invalid syntax`,
		},
		{
			name: "countingsort-negative",
			cfg:  config{algo: countingsort},
			in:   "1 -2",
			want: "countingsort: negative value -2 at position 1",
		},
		{
			name: "maxsubarray-empty",
			cfg:  config{algo: maxsubarray},
			in:   " \n",
			want: "maxsubarray: empty input",
		},
		{
			name: "lincomb-one-line",
			cfg:  config{algo: lincomb},
			in:   "1 2 3\n",
			want: "lincomb: want two lines of input, got 1",
		},
		{
			name: "lincomb-different-lengths",
			cfg:  config{algo: lincomb},
			in:   "1 2 3\n1 2\n",
			want: "lincomb: arrays have different lengths 3 and 2",
		},
		{
			name: "bad-alphabet",
			cfg:  config{algo: lexsort, alphabet: "z-a"},
			in:   "a\n",
			want: `invalid alphabet "z-a", range is empty`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := run(&tt.cfg, strings.NewReader(tt.in), &out, zerolog.Nop())
			if err == nil {
				t.Fatalf("run(...) succeeded, want error %q", tt.want)
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("run(...) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunInvalidCharacter(t *testing.T) {
	cfg := config{algo: lexsort, alphabet: "a-z"}
	var out strings.Builder
	err := run(&cfg, strings.NewReader("abc\nab-c\n"), &out, zerolog.Nop())
	if !errors.Is(err, algos.ErrInvalidCharacter) {
		t.Fatalf("run(...) = %v, want an error matching algos.ErrInvalidCharacter", err)
	}
	if out.Len() > 0 {
		t.Errorf("run(...) wrote output %q on error", out.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	for a := range numAlgorithms {
		got, err := parseAlgorithm(a.String())
		if err != nil || got != a {
			t.Errorf("parseAlgorithm(%q) = %v, %v, want %v", a.String(), got, err, a)
		}
	}
	for _, s := range []string{"", "numAlgorithms", "Quicksort", "bubblesort"} {
		if _, err := parseAlgorithm(s); err == nil {
			t.Errorf("parseAlgorithm(%q) succeeded, want error", s)
		}
	}
}
