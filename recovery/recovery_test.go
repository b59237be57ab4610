package recovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanxpatil/livnium-engine/explorer"
	"github.com/chetanxpatil/livnium-engine/lattice"
	"github.com/chetanxpatil/livnium-engine/recovery"
)

// TestRun_Validation rejects bad experiment parameters before any
// work starts.
func TestRun_Validation(t *testing.T) {
	opts := recovery.DefaultOptions()
	opts.Trials = 0
	_, err := recovery.Run(opts)
	assert.ErrorIs(t, err, recovery.ErrTrials)

	opts = recovery.DefaultOptions()
	opts.PerturbSteps = -1
	_, err = recovery.Run(opts)
	assert.ErrorIs(t, err, recovery.ErrPerturbSteps)

	opts = recovery.DefaultOptions()
	opts.N = 4
	_, err = recovery.Run(opts)
	assert.ErrorIs(t, err, lattice.ErrBadDimension)
}

// TestRun_ZeroPerturbationControl: with no perturbation the re-anneal
// starts exactly at the basin fingerprint, so the early stop fires at
// step 0 and every trial recovers.
func TestRun_ZeroPerturbationControl(t *testing.T) {
	res, err := recovery.Run(recovery.Options{
		N:            3,
		Trials:       2,
		PerturbSteps: 0,
		Seed:         9,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.RecoveryRate)
	assert.Equal(t, 2, res.RecoveryTime.N)
	assert.Zero(t, res.RecoveryTime.Mean)
	assert.Zero(t, res.RecoveryTime.Median)

	require.Len(t, res.PerTrial, 2)
	for _, trial := range res.PerTrial {
		assert.True(t, trial.Recovered)
		assert.Equal(t, 0, trial.RecoverySteps)
		assert.Equal(t, trial.BasinHash, trial.FinalHash)
		assert.Zero(t, trial.Overshoot)
		assert.Equal(t, trial.BasinEnergy, trial.PerturbedEnergy)
		assert.Equal(t, trial.BasinEnergy, trial.FinalEnergy)
	}

	total := 0
	for _, c := range res.BasinChanges {
		total += c
	}
	assert.Equal(t, res.Trials, total, "every trial lands in exactly one transition bucket")

	assert.Zero(t, res.FinalMinusBasin.Mean)
	assert.Zero(t, res.PerturbedMinusBasin.Max)
	assert.Equal(t, 2, res.Overshoot.N)
}

// TestRun_Deterministic replays the whole experiment byte-identically
// for equal options.
func TestRun_Deterministic(t *testing.T) {
	opts := recovery.Options{
		N:             3,
		Trials:        1,
		PerturbSteps:  0,
		Seed:          17,
		RandomizeInit: true,
		InitSeed:      3,
	}

	a, err := recovery.Run(opts)
	require.NoError(t, err)
	b, err := recovery.Run(opts)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestRun_ReportsRegime pins the fixed annealing regime the
// experiment promises.
func TestRun_ReportsRegime(t *testing.T) {
	res, err := recovery.Run(recovery.Options{N: 3, Trials: 1, PerturbSteps: 0, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 3000, res.AnnealSteps)
	assert.Equal(t, 3.0, res.T0)
	assert.Equal(t, 0.05, res.Tmin)
	assert.Equal(t, 0, res.PerturbSteps)
	assert.NotEqual(t, explorer.NoStep, res.PerTrial[0].RecoverySteps)
}
