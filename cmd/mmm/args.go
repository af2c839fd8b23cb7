// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mmbench/bench"
)

// Messages printed for malformed invocations.
const (
	msgUsage          = "Usage: %s <mode> <size> or %s <mode> <threads> <size>"
	msgParallelArgs   = "Parallel mode requires <threads> and <size> arguments."
	msgInvalidMode    = "Invalid mode. Use 'S' for Sequential or 'P' for Parallel."
	msgNotPositive    = "Size and number of threads must be positive integers."
	msgTooManyThreads = "Number of threads should not exceed the matrix size."
)

// argError carries a message meant for the user verbatim.
type argError struct{ msg string }

func (e *argError) Error() string { return e.msg }

// positional is the decoded <mode> [<threads>] <size> tuple.
type positional struct {
	mode    bench.Mode
	threads int
	size    int
	n       int // arguments consumed
}

// parseArgs decodes the positional arguments in the order
// count → mode → arity → positivity → threads vs size.
// Arguments after the tuple are left to the caller (p.n is the tuple length).
func parseArgs(prog string, args []string) (positional, error) {
	var p positional
	if len(args) < 2 {
		return p, &argError{fmt.Sprintf(msgUsage, prog, prog)}
	}

	var sizeTok, threadsTok string
	switch args[0] {
	case bench.TokenSequential:
		p.mode = bench.ModeSequential
		sizeTok, threadsTok = args[1], "1"
		p.n = 2
	case bench.TokenParallel:
		if len(args) < 3 {
			return p, &argError{msgParallelArgs}
		}
		p.mode = bench.ModeParallel
		threadsTok, sizeTok = args[1], args[2]
		p.n = 3
	default:
		return p, &argError{msgInvalidMode}
	}

	size, errS := strconv.Atoi(sizeTok)
	threads, errT := strconv.Atoi(threadsTok)
	if errS != nil || errT != nil || size <= 0 || threads <= 0 {
		return p, &argError{msgNotPositive}
	}
	if p.mode == bench.ModeParallel && threads > size {
		return p, &argError{msgTooManyThreads}
	}
	p.size, p.threads = size, threads

	return p, nil
}
