// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ---------- Report layout literals ----------
const (
	_rule        = "========\n"
	_fmtMode     = "mode: %s\n"
	_fmtThreads  = "thread count: %d\n"
	_fmtSize     = "size: %d\n"
	_fmtSeqTime  = "Sequential Time (avg of %d runs): %.6f sec\n"
	_fmtParTime  = "Parallel Time (avg of %d runs): %.6f sec\n"
	_fmtSpeedup  = "Speedup: %.6f\n"
	_fmtMaxError = "Verifying... largest error between parallel and sequential matrix: %.6f\n"
)

// Report is the outcome of one Run.
type Report struct {
	Mode    Mode
	Threads int
	Size    int
	Runs    int
	Fill    string

	SeqTimes []time.Duration // one entry per timed sequential pass
	ParTimes []time.Duration // one entry per timed parallel pass (parallel mode only)

	MaxDiff  float64 // max |seq - par| (parallel mode only)
	Verified bool    // MaxDiff within tolerance (parallel mode only)
}

// average returns the arithmetic mean of ds, or 0 for an empty slice.
func average(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}

	return lo.Sum(ds) / time.Duration(len(ds))
}

// AvgSequential is the mean sequential pass time.
func (r *Report) AvgSequential() time.Duration { return average(r.SeqTimes) }

// AvgParallel is the mean parallel pass time (0 in sequential mode).
func (r *Report) AvgParallel() time.Duration { return average(r.ParTimes) }

// Speedup is AvgSequential / AvgParallel; NaN when no parallel time was measured.
func (r *Report) Speedup() float64 {
	return safeRatio(r.AvgSequential().Seconds(), r.AvgParallel().Seconds())
}

// String renders the report exactly as WriteTo prints it.
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString(_rule)
	fmt.Fprintf(&b, _fmtMode, r.Mode)
	fmt.Fprintf(&b, _fmtThreads, r.Threads)
	fmt.Fprintf(&b, _fmtSize, r.Size)
	b.WriteString(_rule)
	fmt.Fprintf(&b, _fmtSeqTime, r.Runs, r.AvgSequential().Seconds())
	if r.Mode == ModeParallel {
		fmt.Fprintf(&b, _fmtParTime, r.Runs, r.AvgParallel().Seconds())
		fmt.Fprintf(&b, _fmtSpeedup, r.Speedup())
		fmt.Fprintf(&b, _fmtMaxError, r.MaxDiff)
	}

	return b.String()
}

// WriteTo implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())

	return int64(n), err
}
