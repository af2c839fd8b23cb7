// Package mmbench measures how much row-parallel execution speeds up dense
// square matrix multiplication, and checks that the parallel product is the
// same as the sequential one.
//
// 🚀 What is mmbench?
//
//	A small benchmark harness built from composable packages:
//		• Dense float64 matrices with bounds-checked access and row views
//		• Static contiguous row partitioning across workers
//		• A sequential reference product and a parallel one
//		• Max-abs-difference verification with a tolerance
//		• A timed driver that reports averages and speedup
//
// Packages:
//
//	matrix/      Dense, MatrixView, the row-range kernel and comparisons
//	partition/   RowRange and Rows(size, workers)
//	workerpool/  persistent goroutine pool with a barrier-style Run
//	mmm/         Store (A, B, Seq, Par), fills, executors, verification
//	bench/       Config, Run and Report
//	cmd/mmm/     the command-line front end
//
// Quick start:
//
//	go run ./cmd/mmm S 512
//	go run ./cmd/mmm P 8 512
package mmbench
