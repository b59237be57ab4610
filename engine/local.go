package engine

import (
	"fmt"

	"github.com/chetanxpatil/livnium-engine/lattice"
	"github.com/chetanxpatil/livnium-engine/rotation"
)

// indexPair is one cell move induced by a local rotation:
// the token at From travels to To.
type indexPair struct {
	From, To int
}

// ApplyLocal rotates only the Chebyshev ball of the given radius
// about center, leaving every cell outside the region byte-identical.
// Validation, in order: op id in [0,24), radius ≥ 1, center inside the
// lattice, region fully inside lattice bounds — each violation returns
// its own sentinel. Records the move for the audit.
// Complexity: O(n³) copy + O((2r+1)³) remap.
func (e *Engine) ApplyLocal(op int, center lattice.Coord, radius int) error {
	if op < 0 || op >= rotation.Order {
		return fmt.Errorf("op %d: %w", op, ErrOpRange)
	}
	if radius < 1 {
		return fmt.Errorf("radius %d: %w", radius, ErrRadius)
	}
	if !e.lat.Contains(center) {
		return fmt.Errorf("center %v: %w", center, ErrCenterBounds)
	}
	if center.Chebyshev()+radius > e.lat.K {
		return fmt.Errorf("center %v radius %d: %w", center, radius, ErrRegionBounds)
	}

	mapping, err := e.localMapping(op, center, radius)
	if err != nil {
		return err
	}

	next := make([]int, len(e.grid))
	copy(next, e.grid)
	for _, p := range mapping {
		next[p.To] = e.grid[p.From]
	}
	e.grid = next
	e.last = &Action{Kind: ActionLocal, Op: op, Center: center, Radius: radius}
	return nil
}

// InverseLocal returns the move that undoes ApplyLocal(op, center,
// radius): the inverse op about the same center with the same radius,
// since the rotation is about a fixed center.
func (e *Engine) InverseLocal(op int, center lattice.Coord, radius int) (int, lattice.Coord, int, error) {
	inv, err := e.InverseOp(op)
	if err != nil {
		return 0, lattice.Coord{}, 0, err
	}
	return inv, center, radius, nil
}

// localMapping enumerates the (2r+1)³ region coordinates, rotates each
// relative to center, and resolves both endpoints to canonical
// indices. The result must be a bijection on the region's index set;
// a size mismatch or an endpoint escaping the lattice is an internal
// invariant failure, not a user error.
func (e *Engine) localMapping(op int, center lattice.Coord, radius int) ([]indexPair, error) {
	m, err := e.grp.Matrix(op)
	if err != nil {
		return nil, fmt.Errorf("op %d: %w", op, ErrOpRange)
	}

	side := 2*radius + 1
	pairs := make([]indexPair, 0, side*side*side)
	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			for z := center.Z - radius; z <= center.Z+radius; z++ {
				oldC := lattice.Coord{X: x, Y: y, Z: z}
				oldIdx, ok := e.lat.IndexOf(oldC)
				if !ok {
					return nil, fmt.Errorf("region cell %v outside lattice: %w", oldC, ErrInvariant)
				}
				newC := center.Add(m.Apply(oldC.Sub(center)))
				newIdx, ok := e.lat.IndexOf(newC)
				if !ok {
					return nil, fmt.Errorf("rotated cell %v outside lattice: %w", newC, ErrInvariant)
				}
				pairs = append(pairs, indexPair{From: oldIdx, To: newIdx})
			}
		}
	}
	if len(pairs) != side*side*side {
		return nil, fmt.Errorf("region mapping size %d, want %d: %w", len(pairs), side*side*side, ErrInvariant)
	}
	return pairs, nil
}
