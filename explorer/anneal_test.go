package explorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanxpatil/livnium-engine/energy"
	"github.com/chetanxpatil/livnium-engine/engine"
	"github.com/chetanxpatil/livnium-engine/explorer"
)

// identityGrid returns the solved permutation for an n³ lattice.
func identityGrid(n int) []int {
	g := make([]int, n*n*n)
	for i := range g {
		g[i] = i
	}
	return g
}

// TestAnneal_MissingCollaborators verifies the required energy and
// schedule are enforced before anything runs.
func TestAnneal_MissingCollaborators(t *testing.T) {
	_, err := explorer.Anneal(3, explorer.AnnealOptions{Steps: 1, Schedule: explorer.Constant(1)})
	assert.ErrorIs(t, err, explorer.ErrNoEnergy)

	_, err = explorer.Anneal(3, explorer.AnnealOptions{Steps: 1, Energy: energy.Default()})
	assert.ErrorIs(t, err, explorer.ErrNoSchedule)

	_, err = explorer.Anneal(3, explorer.AnnealOptions{
		Steps: 1, Energy: energy.Default(), Schedule: explorer.Sequence{},
	})
	assert.ErrorIs(t, err, explorer.ErrBadSchedule)

	_, err = explorer.Anneal(3, explorer.AnnealOptions{
		Steps: -1, Energy: energy.Default(), Schedule: explorer.Constant(1),
	})
	assert.ErrorIs(t, err, explorer.ErrSteps)
}

// TestAnneal_NegativeTemperature fails at the first step that draws a
// negative schedule value.
func TestAnneal_NegativeTemperature(t *testing.T) {
	_, err := explorer.Anneal(3, explorer.AnnealOptions{
		Steps:    5,
		Energy:   energy.Default(),
		Schedule: explorer.Constant(-0.1),
	})
	assert.ErrorIs(t, err, explorer.ErrNegativeTemp)
}

// TestAnneal_BadInitGrid rejects a wrong-length injection and fails
// the injection audit on a corrupted one.
func TestAnneal_BadInitGrid(t *testing.T) {
	_, err := explorer.Anneal(3, explorer.AnnealOptions{
		Steps:    1,
		Energy:   energy.Default(),
		Schedule: explorer.Constant(1),
		InitGrid: make([]int, 5),
	})
	assert.ErrorIs(t, err, engine.ErrGridLength)

	bad := identityGrid(3)
	bad[0] = bad[1]
	_, err = explorer.Anneal(3, explorer.AnnealOptions{
		Steps:    1,
		Energy:   energy.Default(),
		Schedule: explorer.Constant(1),
		InitGrid: bad,
	})
	assert.ErrorIs(t, err, engine.ErrInvariant)
}

// TestAnneal_ZeroTemperatureHoldsMinimum starts at the global minimum
// with T=0: every worsening proposal is rejected and reverted, so the
// run can never leave the solved state.
func TestAnneal_ZeroTemperatureHoldsMinimum(t *testing.T) {
	res, err := explorer.Anneal(3, explorer.AnnealOptions{
		Steps:        50,
		Seed:         21,
		InitGrid:     identityGrid(3),
		Energy:       energy.Default(),
		Schedule:     explorer.Constant(0),
		RecordHashes: true,
	})
	require.NoError(t, err)

	assert.Zero(t, res.E0)
	assert.Zero(t, res.EFinal)
	assert.Zero(t, res.BestEnergy)
	for step, e := range res.Energies {
		assert.Zero(t, e, "energy rose at step %d under T=0", step)
	}
	assert.Equal(t, identityGrid(3), res.FinalGrid)
	assert.Len(t, res.Hashes, res.StepsRun+1)
	assert.Equal(t, res.Hashes[0], res.FinalHash)
}

// TestAnneal_StopHashAtStart stops before any proposal when the
// initial fingerprint already matches.
func TestAnneal_StopHashAtStart(t *testing.T) {
	solved, err := engine.New(3)
	require.NoError(t, err)

	res, err := explorer.Anneal(3, explorer.AnnealOptions{
		Steps:    100,
		InitGrid: identityGrid(3),
		Energy:   energy.Default(),
		Schedule: explorer.Constant(1),
		StopHash: solved.Hash(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.StoppedStep)
	assert.Equal(t, 0, res.StepsRun)
	assert.Zero(t, res.Proposed)
	assert.Zero(t, res.AcceptanceRate)
	assert.Len(t, res.Energies, 1)
	assert.Equal(t, solved.Hash(), res.FinalHash)
}

// TestAnneal_ConvergesFromIdentity runs the reference regime on the
// 5³ lattice: start solved, heat under exponential cooling from T=3.0
// down to 0.05 over 3000 steps, and expect the cooled walk to settle
// back into the zero-energy state for the large majority of seeds.
// Individual seeds may stall in a shallow basin, so the assertion is
// over the seed set, not per seed.
func TestAnneal_ConvergesFromIdentity(t *testing.T) {
	if testing.Short() {
		t.Skip("multi-seed 3000-step anneal")
	}

	sched, err := explorer.ExpCooling(3.0, 0.05, 3000)
	require.NoError(t, err)

	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	converged := 0
	for _, seed := range seeds {
		res, err := explorer.Anneal(5, explorer.AnnealOptions{
			Steps:    3000,
			Seed:     seed,
			InitGrid: identityGrid(5),
			Energy:   energy.Default(),
			Schedule: sched,
		})
		require.NoError(t, err)

		assert.Zero(t, res.E0, "seed %d: solved start must score zero", seed)
		if res.EFinal == 0 {
			converged++
			assert.Equal(t, identityGrid(5), res.FinalGrid,
				"seed %d: zero energy is only the solved state", seed)
		}
	}
	assert.Greater(t, 2*converged, len(seeds),
		"converged for %d/%d seeds", converged, len(seeds))
}

// TestAnneal_Deterministic replays byte-identically for equal
// options, randomized init included.
func TestAnneal_Deterministic(t *testing.T) {
	sched, err := explorer.ExpCooling(3.0, 0.05, 100)
	require.NoError(t, err)

	opts := explorer.AnnealOptions{
		Steps:        100,
		Seed:         2026,
		Energy:       energy.Default(),
		Schedule:     sched,
		RecordHashes: true,
	}

	a, err := explorer.Anneal(3, opts)
	require.NoError(t, err)
	b, err := explorer.Anneal(3, opts)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestAnneal_Bookkeeping sanity-checks counters on a short randomized
// run.
func TestAnneal_Bookkeeping(t *testing.T) {
	res, err := explorer.Anneal(3, explorer.AnnealOptions{
		Steps:    80,
		Seed:     4,
		Energy:   energy.Default(),
		Schedule: explorer.Constant(2.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 80, res.Proposed)
	assert.Equal(t, 80, res.StepsRun)
	assert.Equal(t, explorer.NoStep, res.StoppedStep)
	assert.GreaterOrEqual(t, res.AcceptanceRate, 0.0)
	assert.LessOrEqual(t, res.AcceptanceRate, 1.0)
	assert.Len(t, res.Energies, 81)
	assert.Equal(t, res.Energies[0], res.E0)
	assert.Equal(t, res.Energies[len(res.Energies)-1], res.EFinal)
	assert.LessOrEqual(t, res.BestEnergy, res.E0)
	assert.GreaterOrEqual(t, res.UniqueStates, 1)
	assert.Nil(t, res.Hashes, "hash log is opt-in")
}
