// Package matrix provides the dense float64 storage and kernels behind the
// multiplication benchmark.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix backed by one contiguous buffer, with
//     bounds-checked At/Set that return errors instead of panicking.
//   - MatrixView: a no-copy window used to hand a worker its row band.
//   - MulBand / MulRange / MulInto: the i→j→k triple-loop product kernel,
//     callable for any contiguous band of output rows.
//   - MaxAbsDiff / AllClose: element-wise comparison of two results.
//
// All errors are package sentinels (errors.go) wrapped with the operation
// name; match them with errors.Is.
//
// Disjoint bands of the same destination may be computed concurrently:
// a band kernel only reads its operands and only writes its own rows.
package matrix
