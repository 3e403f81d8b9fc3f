// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The introsort command sorts whitespace-separated values with an
// introspective sort and writes them to stdout, one per line.
//
// Usage:
//
//	introsort [flags] [file ...]
//
// Values are read from the named files, or from stdin if there are none.
// The -type flag selects how values are compared: as integers (the default),
// as floating-point numbers, or as strings.
//
// The -seed flag fixes the pivot source so that runs are reproducible, and
// -strategy and -threshold tune the algorithm. -stats prints what the sort
// did to stderr, and -trials N additionally sorts N shuffles of the input and
// summarizes their comparison counts.
//
// The -log flag sends every phase of the sort to a logger on stderr: zap,
// logrus, zerolog, gokit or logr. The -otel flag writes an OpenTelemetry
// trace and metrics of the run to stderr.
//
// Example usage:
//
//	echo 5 -3 5 0 100 -3 42 | introsort -stats
//
//	introsort -type=string -log=gokit names.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/go-logr/stdr"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/introsort"
	"golang.org/x/exp/introsort/adapter"
	"golang.org/x/exp/introsort/stats"
	"golang.org/x/xerrors"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("introsort: ")
	stdr.SetVerbosity(1)
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		if _, ok := err.(*usageError); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// config holds the parsed command line.
type config struct {
	typ       string
	seed      int64
	strategy  introsort.Strategy
	threshold int
	stats     bool
	trials    int
	logger    string
	otel      bool
	files     []string
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("introsort", flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.typ, "type", "int", "compare values as int, float or string")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for pivot selection; 0 picks one from the clock")
	strategy := fs.String("strategy", "right", "side of a partition to recurse on: right or smaller")
	fs.IntVar(&cfg.threshold, "threshold", introsort.DefaultThreshold, "largest high-low sorted by insertion sort")
	fs.BoolVar(&cfg.stats, "stats", false, "print sort statistics to stderr")
	fs.IntVar(&cfg.trials, "trials", 0, "also sort `N` shuffles of the input and summarize their comparisons")
	fs.StringVar(&cfg.logger, "log", "none", "log sort phases with none, zap, logrus, zerolog, gokit or logr")
	fs.BoolVar(&cfg.otel, "otel", false, "write an OpenTelemetry trace and metrics to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, &usageError{err: err}
	}
	cfg.files = fs.Args()

	switch cfg.typ {
	case "int", "float", "string":
	default:
		return nil, usageErrorf("unknown -type %q", cfg.typ)
	}
	switch *strategy {
	case "right":
		cfg.strategy = introsort.RightFirst
	case "smaller":
		cfg.strategy = introsort.SmallerFirst
	default:
		return nil, usageErrorf("unknown -strategy %q", *strategy)
	}
	if cfg.threshold < 1 {
		return nil, usageErrorf("-threshold must be positive, got %d", cfg.threshold)
	}
	if !logBackends[cfg.logger] {
		return nil, usageErrorf("unknown -log backend %q", cfg.logger)
	}
	if cfg.trials < 0 {
		return nil, usageErrorf("-trials must not be negative, got %d", cfg.trials)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	tokens, err := readTokens(cfg.files, stdin)
	if err != nil {
		return err
	}

	var handlers []introsort.Handler
	if cfg.logger != "none" {
		h, err := newLogHandler(cfg.logger, stderr)
		if err != nil {
			return err
		}
		handlers = append(handlers, h)
	}
	if cfg.otel {
		t, err := newTelemetry(ctx, stderr, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if serr := t.shutdown(ctx); err == nil {
				err = serr
			}
		}()
		handlers = append(handlers, t.handlers...)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	r := &runner{
		cfg: cfg,
		rng: rng,
		opts: &introsort.Options{
			Rand:      rng,
			Threshold: cfg.threshold,
			Strategy:  cfg.strategy,
		},
		stdout: stdout,
		stderr: stderr,
	}
	if len(handlers) > 0 {
		r.opts.Handler = adapter.Multi(handlers...)
	}

	switch cfg.typ {
	case "int":
		err = sortTokens(r, tokens, parseInt, formatInt)
	case "float":
		err = sortTokens(r, tokens, parseFloat, formatFloat)
	case "string":
		err = sortTokens(r, tokens, parseString, formatString)
	}
	return err
}

// A runner holds what sortTokens needs besides the values themselves.
type runner struct {
	cfg    *config
	rng    *rand.Rand
	opts   *introsort.Options
	stdout io.Writer
	stderr io.Writer
}

func sortTokens[E constraints.Ordered](r *runner, tokens []token, parse func(string) (E, error), format func(E) string) error {
	values := make([]E, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok.text)
		if err != nil {
			return xerrors.Errorf("%s: %w", tok.pos, err)
		}
		values[i] = v
	}

	var trialInput []E
	if r.cfg.trials > 0 {
		trialInput = append([]E(nil), values...)
	}

	st := introsort.New[E](r.opts).Sort(values)

	var b strings.Builder
	for _, v := range values {
		b.WriteString(format(v))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(r.stdout, b.String()); err != nil {
		return xerrors.Errorf("writing output: %w", err)
	}

	if r.cfg.stats {
		fmt.Fprintln(r.stderr, formatStats(st))
	}
	if r.cfg.trials > 0 {
		fmt.Fprintf(r.stderr, "comparisons: %v\n", runTrials(r, trialInput))
	}
	return nil
}

// runTrials sorts shuffles of input without a handler and summarizes the
// number of comparisons each one took.
func runTrials[E constraints.Ordered](r *runner, input []E) stats.Summary {
	opts := *r.opts
	opts.Handler = nil
	s := introsort.New[E](&opts)

	comparisons := make([]float64, r.cfg.trials)
	x := make([]E, len(input))
	for n := range comparisons {
		copy(x, input)
		r.rng.Shuffle(len(x), func(i, j int) { x[i], x[j] = x[j], x[i] })
		comparisons[n] = float64(s.Sort(x).Comparisons)
	}
	return stats.Summarize(comparisons)
}

func formatStats(st introsort.Stats) string {
	var parts []string
	for _, f := range adapter.StatsFields(st) {
		parts = append(parts, fmt.Sprintf("%s=%d", f.Key, f.Value))
	}
	return strings.Join(parts, " ")
}
