// SPDX-License-Identifier: MIT

// Command mmm times sequential against row-parallel square matrix
// multiplication and verifies that both produce the same product.
//
//	mmm S <size>
//	mmm P <threads> <size>
//
// The report is written to stdout, logs to stderr. The exit status is 1 on
// any argument error or when verification fails.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmbench/bench"
	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/mmm"
	"github.com/katalvlaran/mmbench/workerpool"
)

type flags struct {
	runs          int
	fill          string
	seed          uint64
	pool          bool
	freshParallel bool
	eps           float64
	logLevel      string
}

func main() {
	os.Exit(execute(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and maps its outcome to an exit status.
func execute(prog string, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(prog, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		// verification failures are already reported and logged
		if !errors.Is(err, bench.ErrVerification) {
			fmt.Fprintln(stdout, err)
		}
		return 1
	}

	return 0
}

func newRootCmd(prog string, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           prog + " <mode> <size> | <mode> <threads> <size>",
		Short:         "Benchmark sequential against row-parallel matrix multiplication",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseArgs(prog, args)
			if err != nil {
				return err
			}
			// flags may also follow the positional tuple; anything else left over is ignored
			if rest := args[pos.n:]; len(rest) > 0 {
				if err = cmd.Flags().Parse(rest); err != nil {
					return err
				}
			}

			return run(pos, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	// stop flag parsing at <mode> so negative sizes reach parseArgs
	fs.SetInterspersed(false)
	fs.IntVar(&f.runs, "runs", bench.DefaultRuns, "timed passes per mode")
	fs.StringVar(&f.fill, "fill", mmm.FillNameIndex, "operand fill: index, ones or seeded")
	fs.Uint64Var(&f.seed, "seed", 1, "seed for --fill=seeded")
	fs.BoolVar(&f.pool, "pool", false, "run parallel passes on a persistent worker pool")
	fs.BoolVar(&f.freshParallel, "fresh-parallel", false, "allocate a new store for every parallel pass")
	fs.Float64Var(&f.eps, "eps", matrix.DefaultEpsilon, "verification tolerance")
	fs.StringVar(&f.logLevel, "log-level", zerolog.LevelWarnValue, "log level written to stderr")

	return cmd
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

func run(pos positional, f flags, stdout, stderr io.Writer) error {
	level, err := zerolog.ParseLevel(f.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", f.logLevel, err)
	}
	fill, err := mmm.ParseFill(f.fill, f.seed)
	if err != nil {
		return fmt.Errorf("invalid --fill: %w", err)
	}

	cfg := bench.DefaultConfig()
	cfg.Mode = pos.mode
	cfg.Threads = pos.threads
	cfg.Size = pos.size
	cfg.Runs = f.runs
	cfg.Fill = fill
	cfg.Epsilon = f.eps
	cfg.FreshParallelStore = f.freshParallel
	if err = cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(stderr, level)
	logHost(log)

	opts := []bench.Option{bench.WithLogger(log)}
	if f.pool && cfg.Mode == bench.ModeParallel {
		pool := workerpool.New(cfg.Threads)
		defer pool.Close()
		opts = append(opts, bench.WithPool(pool))
	}

	rep, err := bench.Run(cfg, opts...)
	if rep != nil {
		if _, werr := rep.WriteTo(stdout); werr != nil && err == nil {
			err = werr
		}
	}

	return err
}
