package gridastar

import (
	"context"
	"math/rand/v2"
	"strconv"
	"testing"
)

func BenchmarkFind(b *testing.B) {
	for _, size := range []int{32, 128, 255} {
		b.Run(strconv.Itoa(size)+"x"+strconv.Itoa(size), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(uint64(size), 1))
			grid := randomGrid(rng, size, size, 0.2)
			finder := newTestFinder(b, grid)
			path := NewPath[tile](size * 2)
			last := uint8(size - 1)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				finder.Find(NewPosition(0, 0), NewPosition(last, last), path)
			}
		})
	}
}

func BenchmarkPoolRun(b *testing.B) {
	rng := rand.New(rand.NewPCG(99, 1))
	grid := randomGrid(rng, 64, 64, 0.2)
	pool, err := NewPool(64, 64, tilesOf(grid), 128)
	if err != nil {
		b.Fatal(err)
	}
	requests := make([]Request, 256)
	for i := range requests {
		requests[i] = Request{
			From: Position{Row: uint8(rng.IntN(64)), Column: uint8(rng.IntN(64))},
			To:   Position{Row: uint8(rng.IntN(64)), Column: uint8(rng.IntN(64))},
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.Run(context.Background(), requests); err != nil {
			b.Fatal(err)
		}
	}
}
