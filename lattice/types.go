// Package lattice defines core types and sentinel errors for the
// cubic-lattice addressing layer.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrBadDimension indicates N is even or smaller than 3.
	ErrBadDimension = errors.New("lattice: N must be odd and >= 3")
	// ErrIndexRange indicates a canonical index outside [0, N³).
	ErrIndexRange = errors.New("lattice: index out of range")
)

// Coord is an integer lattice coordinate with components in [-k, k].
type Coord struct {
	X, Y, Z int
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// Chebyshev returns the L∞ norm max(|X|,|Y|,|Z|).
func (c Coord) Chebyshev() int {
	m := abs(c.X)
	if a := abs(c.Y); a > m {
		m = a
	}
	if a := abs(c.Z); a > m {
		m = a
	}
	return m
}

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y) + abs(c.Z-o.Z)
}

// Euclid2 returns the squared Euclidean distance between c and o.
func (c Coord) Euclid2(o Coord) int {
	dx, dy, dz := c.X-o.X, c.Y-o.Y, c.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
