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

// eval provides a way to validate the algorithms on large numbers of random inputs by checking
// their results against brute force or standard library implementations.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type config struct {
	seed     uint64
	trials   int
	n        int
	parallel int
	stats    string
	progress bool
}

func main() {
	var cfg config
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "seed for the random inputs")
	flag.IntVar(&cfg.trials, "trials", 1000, "number of random inputs to evaluate")
	flag.IntVar(&cfg.n, "n", 1000, "maximum input size")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.BoolVar(&cfg.progress, "progress", true, "render a progress bar")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(context.Background(), &cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

func run(ctx context.Context, cfg *config, logger zerolog.Logger) error {
	if cfg.trials < 0 || cfg.n < 0 || cfg.parallel < 1 {
		return fmt.Errorf("invalid configuration: trials = %d, n = %d, parallel = %d", cfg.trials, cfg.n, cfg.parallel)
	}
	logger.Info().Uint64("seed", cfg.seed).Int("trials", cfg.trials).Int("n", cfg.n).Msg("starting evaluation")

	start := time.Now()
	var processed atomic.Int64
	var failed atomic.Int64

	var stats *os.File
	var results chan result
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
		results = make(chan result)
	}

	// Render progress and write stats.
	var ioWG sync.WaitGroup
	done := make(chan struct{})
	render := func() {
		const width = 60
		processed := processed.Load()
		progress := 1.0
		if cfg.trials > 0 {
			progress = float64(processed) / float64(cfg.trials)
		}
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var perSec int
		if processed > 0 {
			perSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Fprintf(os.Stderr, "\r[%-*s] % 3.1f%% (%d evals/s) ", width, bar, 100*progress, perSec)
	}
	if cfg.progress {
		ioWG.Add(1)
		go func() {
			defer ioWG.Done()
			ticker := time.NewTicker(200 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					render()
				case <-done:
					render()
					fmt.Fprintf(os.Stderr, "\n")
					return
				}
			}
		}()
	}
	statsErr := make(chan error, 1)
	if results != nil {
		go func() {
			w := bufio.NewWriter(stats)
			w.WriteString("trial,algo,N,duration_ns\n")
			var err error
			for result := range results {
				if err != nil {
					continue
				}
				_, err = fmt.Fprintf(w, "%d,%s,%d,%d\n", result.trial, result.algo, result.n, result.duration.Nanoseconds())
			}
			if err == nil {
				err = w.Flush()
			}
			statsErr <- err
		}()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallel)
	for trial := range cfg.trials {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			e := newEvaluator(cfg.seed, trial, cfg.n)
			for _, r := range e.run() {
				if results != nil {
					results <- r
				}
				if r.err != nil {
					failed.Add(1)
					logger.Error().Err(r.err).Int("trial", trial).Str("algo", r.algo).Int("n", r.n).Msg("validation failed")
				}
			}
			processed.Add(1)
			return ctx.Err()
		})
	}
	err := g.Wait()

	close(done)
	ioWG.Wait()
	if results != nil {
		close(results)
		if err := <-statsErr; err != nil {
			return fmt.Errorf("writing stats: %v", err)
		}
	}
	if err != nil {
		return err
	}

	logger.Info().Int64("evaluations", processed.Load()).Dur("duration", time.Since(start)).Msg("evaluation finished")
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d validations failed, rerun with -seed=%d to reproduce", n, cfg.seed)
	}
	return nil
}
