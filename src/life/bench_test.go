package life

import (
	"fmt"
	"math/rand"
	"testing"
)

//soup seeds a size x size square around the origin at ~15% density
func soup(size int) []Cell {
	rng := rand.New(rand.NewSource(1))
	var cells []Cell
	for y := -size / 2; y < size/2; y++ {
		for x := -size / 2; x < size/2; x++ {
			if rng.Float64() < 0.15 {
				cells = append(cells, Cell{Loc: Location{X: x, Y: y}, Alive: true})
			}
		}
	}
	return cells
}

func Benchmark_Tick(b *testing.B) {
	for _, size := range []int{32, 128, 256} {
		b.Run(fmt.Sprintf("soup-%dx%d", size, size), func(b *testing.B) {
			w := NewWorld(soup(size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w = Tick(w)
			}
		})
	}
}
