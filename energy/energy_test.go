package energy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanxpatil/livnium-engine/energy"
	"github.com/chetanxpatil/livnium-engine/engine"
)

// TestEnergies_IdentityIsGlobalMinimum verifies both built-ins (and
// the default blend) score the solved state at exactly 0.
func TestEnergies_IdentityIsGlobalMinimum(t *testing.T) {
	for _, n := range []int{3, 5} {
		eng, err := engine.New(n)
		require.NoError(t, err)

		assert.Zero(t, energy.NeighborDisagreement{}.Eval(eng))
		assert.Zero(t, energy.HomeDistance{}.Eval(eng))
		assert.Zero(t, energy.Default().Eval(eng))
	}
}

// TestNeighborDisagreement_GlobalRotationsScoreZero uses the fact
// that a whole-lattice rotation maps neighbors to neighbors: any
// purely global state keeps perfect neighbor agreement even though
// tokens are far from home.
func TestNeighborDisagreement_GlobalRotationsScoreZero(t *testing.T) {
	eng, err := engine.New(3)
	require.NoError(t, err)

	identity := eng.Group().Identity()
	for op := 0; op < 24; op++ {
		fresh, err := engine.New(3)
		require.NoError(t, err)
		require.NoError(t, fresh.Apply(op))

		assert.Zero(t, energy.NeighborDisagreement{}.Eval(fresh), "op %d", op)
		if op != identity {
			assert.Positive(t, energy.HomeDistance{}.Eval(fresh), "op %d displaces tokens", op)
		}
	}
}

// TestHomeDistance_AdjacentSwap pins the cost of swapping two
// adjacent tokens: each moves one unit, so the sum of squared
// distances is exactly 2.
func TestHomeDistance_AdjacentSwap(t *testing.T) {
	eng, err := engine.New(3)
	require.NoError(t, err)

	grid := eng.Grid()
	grid[0], grid[1] = grid[1], grid[0] // (-1,-1,-1) <-> (-1,-1,0)
	require.NoError(t, eng.SetGrid(grid))
	require.NoError(t, eng.Audit())

	assert.Equal(t, 2.0, energy.HomeDistance{}.Eval(eng))
	assert.Positive(t, energy.NeighborDisagreement{}.Eval(eng))
}

// TestWeighted_MatchesComponents checks the default blend is the
// linear combination of its parts.
func TestWeighted_MatchesComponents(t *testing.T) {
	eng, err := engine.New(5)
	require.NoError(t, err)
	eng.Randomize(77)

	nd := energy.NeighborDisagreement{}.Eval(eng)
	hd := energy.HomeDistance{}.Eval(eng)
	assert.InDelta(t, nd+0.2*hd, energy.Default().Eval(eng), 1e-9)
}

// TestEval_NonMutating verifies evaluation never touches the state.
func TestEval_NonMutating(t *testing.T) {
	eng, err := engine.New(5)
	require.NoError(t, err)
	eng.Randomize(5)

	h := eng.Hash()
	_ = energy.Default().Eval(eng)
	_ = energy.NeighborDisagreement{}.Eval(eng)
	_ = energy.HomeDistance{}.Eval(eng)
	assert.Equal(t, h, eng.Hash())
}
