// Package bench drives the matrix-multiplication benchmark: one untimed
// warm-up, Runs timed sequential passes, and in parallel mode Runs timed
// parallel passes followed by a verification of the two results.
//
// ⚙️ Usage:
//
//	cfg := bench.DefaultConfig()
//	cfg.Mode = bench.ModeParallel
//	cfg.Threads = 8
//	cfg.Size = 1024
//
//	rep, err := bench.Run(cfg, bench.WithLogger(logger))
//	if rep != nil {
//	  rep.WriteTo(os.Stdout)
//	}
//
// Timing semantics:
//
//   - Every sequential pass allocates a fresh store; only the multiply is timed.
//   - By default all parallel passes share one store (Config.FreshParallelStore
//     switches to one store per pass). The timed region covers worker start,
//     compute and join.
//   - Averages are arithmetic means; Speedup = avg sequential / avg parallel.
package bench
