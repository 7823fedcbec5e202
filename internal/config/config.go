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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// algos.Option.
package config

// Config collects all configurable parameters for the functions in this module.
type Config struct {
	// If set, functions that require sorted input verify that precondition and panic if it's
	// violated.
	CheckSorted bool

	// Coefficients p and q of the linear combination p*a[i] + q*b[j].
	CoefA, CoefB int

	// Inclusive byte range accepted by the lexicographic sort.
	AlphabetFirst, AlphabetLast byte
}

// Default is the default configuration.
var Default = Config{
	CheckSorted:   false,
	CoefA:         2,
	CoefB:         3,
	AlphabetFirst: 'a',
	AlphabetLast:  'z',
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// for functions that don't support them.
type Flag int

const (
	CheckSorted Flag = 1 << iota
	Coefficients
	Alphabet
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case CheckSorted:
		return "algos.CheckSorted"
	case Coefficients:
		return "algos.Coefficients"
	case Alphabet:
		return "algos.Alphabet"
	default:
		panic("never reached")
	}
}
