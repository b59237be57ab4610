package engine

import (
	"fmt"
	"math/rand"

	"github.com/chetanxpatil/livnium-engine/lattice"
	"github.com/chetanxpatil/livnium-engine/rotation"
)

// maxPerturbRadius bounds the radius drawn for random local moves.
const maxPerturbRadius = 2

// Perturb applies steps random local moves, each audited. Every move
// draws an op id uniformly in [0,24), a radius in {1,2} (clamped so a
// region of that radius fits an N=3 lattice), and a center uniformly
// over the positions that keep the region in bounds for that radius.
// This is energy-agnostic noise used to test basin stability.
// Returns ErrSteps for negative steps; audit failures propagate and
// are fatal.
func (e *Engine) Perturb(steps int, seed int64) error {
	if steps < 0 {
		return fmt.Errorf("steps %d: %w", steps, ErrSteps)
	}

	rng := rand.New(rand.NewSource(seed))
	for s := 0; s < steps; s++ {
		op, center, radius := RandomLocalMove(rng, e.lat.K)
		if err := e.ApplyLocal(op, center, radius); err != nil {
			return err
		}
		if err := e.Audit(); err != nil {
			return err
		}
	}
	return nil
}

// RandomLocalMove draws a uniformly random valid local move for a
// lattice of half-width k: op in [0,24), radius in {1..min(2,k)}, and
// each center component uniform over [-k+radius, k-radius]. The draw
// order (op, radius, center X/Y/Z) is fixed so seeded runs replay
// exactly.
func RandomLocalMove(rng *rand.Rand, k int) (op int, center lattice.Coord, radius int) {
	op = rng.Intn(rotation.Order)
	maxR := maxPerturbRadius
	if k < maxR {
		maxR = k
	}
	radius = 1 + rng.Intn(maxR)
	lo, hi := -k+radius, k-radius
	span := hi - lo + 1
	center = lattice.Coord{
		X: lo + rng.Intn(span),
		Y: lo + rng.Intn(span),
		Z: lo + rng.Intn(span),
	}
	return op, center, radius
}
