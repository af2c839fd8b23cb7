package mmm_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/mmbench/mmm"
	"github.com/katalvlaran/mmbench/partition"
	"github.com/katalvlaran/mmbench/workerpool"
)

var benchSizes = []int{128, 256}

func BenchmarkSequential(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := mustStore(b, n, mmm.FillSeeded(1))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := mmm.Sequential(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParallel(b *testing.B) {
	workers := runtime.GOMAXPROCS(0)
	pool := workerpool.New(workers)
	defer pool.Close()

	for _, n := range benchSizes {
		ranges, err := partition.Rows(n, min(workers, n))
		if err != nil {
			b.Fatal(err)
		}
		for name, run := range map[string]mmm.ParallelFunc{
			"spawn": mmm.Parallel,
			"pool":  mmm.PoolParallel(pool),
		} {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				s := mustStore(b, n, mmm.FillSeeded(1))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := run(s, ranges); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
