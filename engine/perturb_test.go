package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanxpatil/livnium-engine/engine"
)

// TestPerturb_Validation rejects negative budgets and treats zero as
// a no-op.
func TestPerturb_Validation(t *testing.T) {
	eng, err := engine.New(5)
	require.NoError(t, err)

	assert.ErrorIs(t, eng.Perturb(-1, 0), engine.ErrSteps)

	h := eng.Hash()
	require.NoError(t, eng.Perturb(0, 0))
	assert.Equal(t, h, eng.Hash())
}

// TestPerturb_DeterministicAndValid verifies seed-reproducibility and
// that the perturbed state still passes a full audit.
func TestPerturb_DeterministicAndValid(t *testing.T) {
	a, err := engine.New(5)
	require.NoError(t, err)
	b, err := engine.New(5)
	require.NoError(t, err)

	require.NoError(t, a.Perturb(25, 1234))
	require.NoError(t, b.Perturb(25, 1234))
	assert.Equal(t, a.Hash(), b.Hash())

	c, err := engine.New(5)
	require.NoError(t, err)
	require.NoError(t, c.Perturb(25, 1235))
	assert.NotEqual(t, a.Hash(), c.Hash())

	require.NoError(t, a.Audit())
}

// TestPerturb_SmallestLattice clamps the radius so N=3 stays legal.
func TestPerturb_SmallestLattice(t *testing.T) {
	eng, err := engine.New(3)
	require.NoError(t, err)

	require.NoError(t, eng.Perturb(40, 7))
	require.NoError(t, eng.Audit())

	act := eng.LastAction()
	require.NotNil(t, act)
	assert.Equal(t, engine.ActionLocal, act.Kind)
	assert.Equal(t, 1, act.Radius, "only radius 1 fits a 3³ lattice")
}
