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

// algos runs one of the algorithms on input read from stdin and writes the result to stdout.
//
// Numbers are separated by whitespace. lexsort reads one string per line, lincomb reads the two
// arrays from the first two lines.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"znkr.io/algos"
)

//go:generate go tool golang.org/x/tools/cmd/stringer -type=algorithm

type algorithm int

const (
	quicksort algorithm = iota
	countingsort
	lexsort
	maxsubarray
	dedup
	lincomb
	numAlgorithms
)

func parseAlgorithm(s string) (algorithm, error) {
	for a := range numAlgorithms {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

func parseAlphabet(s string) (first, last byte, err error) {
	if len(s) != 3 || s[1] != '-' {
		return 0, 0, fmt.Errorf("invalid alphabet %q, want a range like a-z", s)
	}
	if s[0] > s[2] {
		return 0, 0, fmt.Errorf("invalid alphabet %q, range is empty", s)
	}
	return s[0], s[2], nil
}

type config struct {
	algo        algorithm
	target      int64
	alphabet    string
	checkSorted bool
	verbose     bool
}

func main() {
	cfg := config{alphabet: "a-z"}
	flag.Func("algo", "algorithm to run: quicksort, countingsort, lexsort, maxsubarray, dedup, or lincomb (default quicksort)", func(s string) error {
		a, err := parseAlgorithm(s)
		cfg.algo = a
		return err
	})
	flag.Int64Var(&cfg.target, "target", 0, "target value for lincomb")
	flag.StringVar(&cfg.alphabet, "alphabet", cfg.alphabet, "alphabet for lexsort")
	flag.BoolVar(&cfg.checkSorted, "check-sorted", false, "verify that inputs to dedup and lincomb are sorted")
	flag.BoolVar(&cfg.verbose, "v", false, "log debug information")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if cfg.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := run(&cfg, os.Stdin, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	logger = logger.With().Stringer("algo", cfg.algo).Logger()
	var opts []algos.Option
	if cfg.checkSorted {
		opts = append(opts, algos.CheckSorted())
	}

	start := time.Now()
	var n int
	switch cfg.algo {
	case quicksort:
		v, err := readInts(in)
		if err != nil {
			return err
		}
		n = len(v)
		if err := writeInts(out, algos.Quicksort(v)); err != nil {
			return err
		}

	case countingsort:
		v, err := readInts(in)
		if err != nil {
			return err
		}
		for i, x := range v {
			if x < 0 {
				return fmt.Errorf("countingsort: negative value %d at position %d", x, i)
			}
		}
		n = len(v)
		if err := writeInts(out, algos.CountingSort(v)); err != nil {
			return err
		}

	case lexsort:
		first, last, err := parseAlphabet(cfg.alphabet)
		if err != nil {
			return err
		}
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		n = len(lines)
		sorted, err := algos.LexicographicSort(lines, algos.Alphabet(first, last))
		if err != nil {
			var cerr *algos.CharacterError
			if errors.As(err, &cerr) {
				logger.Debug().Int("line", cerr.Index+1).Int("column", cerr.Offset+1).Msg("invalid character")
			}
			return fmt.Errorf("lexsort: %w", err)
		}
		w := bufio.NewWriter(out)
		for _, s := range sorted {
			w.WriteString(s)
			w.WriteByte('\n')
		}
		if err := w.Flush(); err != nil {
			return err
		}

	case maxsubarray:
		v, err := readInts(in)
		if err != nil {
			return err
		}
		if len(v) == 0 {
			return errors.New("maxsubarray: empty input")
		}
		n = len(v)
		lo, hi, sum := algos.MaxSubarrayRange(v)
		logger.Debug().Int("lo", lo).Int("hi", hi).Msg("found range")
		if _, err := fmt.Fprintln(out, sum); err != nil {
			return err
		}

	case dedup:
		v, err := readInts(in)
		if err != nil {
			return err
		}
		n = len(v)
		k := algos.RemoveDuplicates(v, opts...)
		if err := writeInts(out, v[:k]); err != nil {
			return err
		}

	case lincomb:
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		if len(lines) < 2 {
			return fmt.Errorf("lincomb: want two lines of input, got %d", len(lines))
		}
		a, err := parseInts(lines[0])
		if err != nil {
			return err
		}
		b, err := parseInts(lines[1])
		if err != nil {
			return err
		}
		if len(a) != len(b) {
			return fmt.Errorf("lincomb: arrays have different lengths %d and %d", len(a), len(b))
		}
		n = len(a)
		i, j, ok := algos.LinearCombinationIndex(a, b, cfg.target, opts...)
		if ok {
			logger.Debug().Int("i", i).Int("j", j).Msg("found combination")
		}
		if _, err := fmt.Fprintln(out, ok); err != nil {
			return err
		}

	default:
		panic("never reached")
	}

	logger.Debug().Int("n", n).Dur("duration", time.Since(start)).Msg("done")
	return nil
}

func readInts(in io.Reader) ([]int64, error) {
	var v []int64
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		x, err := strconv.ParseInt(s.Text(), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("reading input: %v", err)
		}
		v = append(v, x)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %v", err)
	}
	return v, nil
}

func parseInts(line string) ([]int64, error) {
	return readInts(strings.NewReader(line))
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %v", err)
	}
	return lines, nil
}

func writeInts(out io.Writer, v []int64) error {
	w := bufio.NewWriter(out)
	for i, x := range v {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.FormatInt(x, 10))
	}
	w.WriteByte('\n')
	return w.Flush()
}
