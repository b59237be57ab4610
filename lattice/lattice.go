package lattice

// Lattice maps canonical indices to coordinates and back for an N³
// cubic lattice. It is immutable once built and safe for concurrent
// read-only sharing across engine instances of the same N.
type Lattice struct {
	// N is the edge length (odd, ≥ 3).
	N int
	// K is the half-width (N-1)/2; components range over [-K, K].
	K int

	indexToCoord []Coord
	coordToIndex map[Coord]int
}

// New constructs the canonical lattice for edge length n.
// Coordinates are enumerated lexicographically by X, then Y, then Z,
// so index 0 is (-k,-k,-k) and index N³-1 is (k,k,k).
// Returns ErrBadDimension if n is even or smaller than 3.
// Complexity: O(N³) time and memory.
func New(n int) (*Lattice, error) {
	if n < 3 || n%2 == 0 {
		return nil, ErrBadDimension
	}
	k := n / 2
	size := n * n * n

	idxToCoord := make([]Coord, 0, size)
	coordToIdx := make(map[Coord]int, size)
	for x := -k; x <= k; x++ {
		for y := -k; y <= k; y++ {
			for z := -k; z <= k; z++ {
				c := Coord{x, y, z}
				coordToIdx[c] = len(idxToCoord)
				idxToCoord = append(idxToCoord, c)
			}
		}
	}

	return &Lattice{
		N:            n,
		K:            k,
		indexToCoord: idxToCoord,
		coordToIndex: coordToIdx,
	}, nil
}

// Size returns the cell count N³.
// Complexity: O(1).
func (l *Lattice) Size() int {
	return len(l.indexToCoord)
}

// CoordOf returns the coordinate at canonical index idx.
// Returns ErrIndexRange if idx is outside [0, N³).
// Complexity: O(1).
func (l *Lattice) CoordOf(idx int) (Coord, error) {
	if idx < 0 || idx >= len(l.indexToCoord) {
		return Coord{}, ErrIndexRange
	}
	return l.indexToCoord[idx], nil
}

// IndexOf returns the canonical index of c and whether c lies inside
// the lattice.
// Complexity: O(1) expected.
func (l *Lattice) IndexOf(c Coord) (int, bool) {
	idx, ok := l.coordToIndex[c]
	return idx, ok
}

// Contains reports whether c lies inside the lattice bounds.
// Complexity: O(1).
func (l *Lattice) Contains(c Coord) bool {
	return c.Chebyshev() <= l.K
}

// InternalCoords exposes the index→coordinate table for hot loops.
// The returned slice is the lattice's backing storage and must be
// treated as read-only.
func (l *Lattice) InternalCoords() []Coord {
	return l.indexToCoord
}
