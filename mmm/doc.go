// Package mmm is the matrix-multiplication engine of the benchmark.
//
// It provides:
//
//   - Store: the explicit run context that exclusively owns the four square
//     matrices A, B (operands), Seq and Par (results) and their
//     Init / Reset / Free lifecycle.
//   - Fill: deterministic population schemes for A and B (index, ones, seeded).
//   - Sequential: the full product computed on the calling goroutine.
//   - Parallel / PoolParallel: the same product computed by one worker per
//     partition.RowRange, joined with a barrier before returning.
//   - Verify / VerifyPair: maximum absolute difference between a sequential
//     and a parallel result.
//
// Multipliers only borrow the store's matrices; they never allocate or free
// them. During a parallel run A and B are read-only and each worker writes
// only its own rows of Par, so no locking is involved.
//
//	s, _ := mmm.NewStore(512, mmm.FillIndex())
//	_ = s.Init()
//	defer s.Free()
//	ranges, _ := partition.Rows(512, 8)
//	_ = mmm.Sequential(s)
//	_ = mmm.Parallel(s, ranges)
//	diff, _ := mmm.Verify(s)
package mmm
