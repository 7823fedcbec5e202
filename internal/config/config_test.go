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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/algos"
	"znkr.io/algos/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "check-sorted",
			opts: []config.Option{
				algos.CheckSorted(),
			},
			want: config.Config{
				CheckSorted:   true,
				CoefA:         config.Default.CoefA,
				CoefB:         config.Default.CoefB,
				AlphabetFirst: config.Default.AlphabetFirst,
				AlphabetLast:  config.Default.AlphabetLast,
			},
		},
		{
			name: "coefficients",
			opts: []config.Option{
				algos.Coefficients(5, 7),
			},
			want: config.Config{
				CheckSorted:   config.Default.CheckSorted,
				CoefA:         5,
				CoefB:         7,
				AlphabetFirst: config.Default.AlphabetFirst,
				AlphabetLast:  config.Default.AlphabetLast,
			},
		},
		{
			name: "coefficients-override",
			opts: []config.Option{
				algos.Coefficients(5, 7),
				algos.CheckSorted(),
				algos.Coefficients(1, 1),
			},
			want: config.Config{
				CheckSorted:   true,
				CoefA:         1,
				CoefB:         1,
				AlphabetFirst: config.Default.AlphabetFirst,
				AlphabetLast:  config.Default.AlphabetLast,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				algos.CheckSorted(),
				algos.Coefficients(4, 9),
				algos.Alphabet('0', '9'),
			},
			want: config.Config{
				CheckSorted:   true,
				CoefA:         4,
				CoefB:         9,
				AlphabetFirst: '0',
				AlphabetLast:  '9',
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.CheckSorted|config.Coefficients|config.Alphabet)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FromOptions(...) did not panic")
		}
		if got, want := r, "Option algos.Alphabet not allowed here"; got != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{algos.Alphabet('a', 'f')}, config.CheckSorted)
}
