package lattice_test

import (
	"fmt"

	"github.com/chetanxpatil/livnium-engine/lattice"
)

// ExampleNew shows the canonical enumeration of a 3³ lattice:
// 27 cells, lexicographic by X, then Y, then Z.
func ExampleNew() {
	lat, _ := lattice.New(3)

	fmt.Println("size:", lat.Size())
	for _, idx := range []int{0, 1, 13, 26} {
		c, _ := lat.CoordOf(idx)
		fmt.Printf("index %2d -> (%d,%d,%d)\n", idx, c.X, c.Y, c.Z)
	}

	// Output:
	// size: 27
	// index  0 -> (-1,-1,-1)
	// index  1 -> (-1,-1,0)
	// index 13 -> (0,0,0)
	// index 26 -> (1,1,1)
}
