package energy

import (
	"github.com/chetanxpatil/livnium-engine/engine"
	"github.com/chetanxpatil/livnium-engine/lattice"
)

// Func scores an engine state; lower is better. Implementations must
// be side-effect-free and deterministic so annealing runs stay
// reproducible.
type Func interface {
	Eval(e *engine.Engine) float64
}

// NeighborDisagreement counts 6-neighbor disagreements: for each
// undirected lattice edge a~b (counted once via the +X,+Y,+Z scan), it
// asks whether the home coordinates of the tokens occupying a and b
// are themselves 6-neighbors. The identity permutation scores 0.
type NeighborDisagreement struct{}

// Eval implements Func. Non-mutating. Complexity: O(n³).
func (NeighborDisagreement) Eval(e *engine.Engine) float64 {
	lat := e.Lattice()
	grid := e.InternalGrid()
	coords := lat.InternalCoords()

	// Token t's home is the coordinate of canonical index t.
	disagree := 0
	for i, tok := range grid {
		c := coords[i]
		home := coords[tok]
		for _, d := range [3]lattice.Coord{{X: 1}, {Y: 1}, {Z: 1}} {
			j, ok := lat.IndexOf(c.Add(d))
			if !ok {
				continue
			}
			if home.Manhattan(coords[grid[j]]) != 1 {
				disagree++
			}
		}
	}
	return float64(disagree)
}

// HomeDistance is the smooth distance-to-home energy: the sum over
// tokens of squared Euclidean distance between the token's current
// coordinate and its home coordinate. The identity permutation
// scores 0.
type HomeDistance struct{}

// Eval implements Func. Non-mutating. Complexity: O(n³).
func (HomeDistance) Eval(e *engine.Engine) float64 {
	coords := e.Lattice().InternalCoords()
	grid := e.InternalGrid()

	sum := 0
	for i, tok := range grid {
		sum += coords[i].Euclid2(coords[tok])
	}
	return float64(sum)
}

// Term is one weighted component of a Weighted energy.
type Term struct {
	Fn     Func
	Weight float64
}

// Weighted evaluates a linear combination of terms.
type Weighted struct {
	Terms []Term
}

// Eval implements Func.
func (w Weighted) Eval(e *engine.Engine) float64 {
	total := 0.0
	for _, t := range w.Terms {
		total += t.Weight * t.Fn.Eval(e)
	}
	return total
}

// Default returns the fixed blend used by the recovery experiment:
// neighbor disagreement plus 0.2× home distance. The weights are kept
// stable so basin reports stay comparable across runs.
func Default() Func {
	return Weighted{Terms: []Term{
		{Fn: NeighborDisagreement{}, Weight: 1.0},
		{Fn: HomeDistance{}, Weight: 0.2},
	}}
}
