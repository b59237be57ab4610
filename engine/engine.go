package engine

import (
	"fmt"
	"math/rand"

	"github.com/chetanxpatil/livnium-engine/lattice"
	"github.com/chetanxpatil/livnium-engine/rotation"
)

// Engine is a permutation state machine over an N³ lattice. Each
// instance exclusively owns its grid and last-action record; the
// lattice and rotation group are read-only and may be shared across
// instances of the same N.
type Engine struct {
	lat *lattice.Lattice
	grp *rotation.Group

	grid   []int
	rotMap [rotation.Order][]int
	last   *Action
}

// New builds an engine for edge length n with a private lattice and
// rotation group. The grid starts as the identity permutation.
// Returns lattice.ErrBadDimension for invalid n.
func New(n int) (*Engine, error) {
	lat, err := lattice.New(n)
	if err != nil {
		return nil, err
	}
	grp, err := rotation.NewGroup()
	if err != nil {
		return nil, err
	}
	return NewWith(lat, grp)
}

// NewWith builds an engine over a shared lattice and rotation group.
// Returns ErrNilDependency if either is nil.
func NewWith(lat *lattice.Lattice, grp *rotation.Group) (*Engine, error) {
	if lat == nil || grp == nil {
		return nil, ErrNilDependency
	}
	e := &Engine{lat: lat, grp: grp}

	size := lat.Size()
	e.grid = make([]int, size)
	for i := range e.grid {
		e.grid[i] = i
	}

	if err := e.buildRotMaps(); err != nil {
		return nil, err
	}
	return e, nil
}

// buildRotMaps precomputes, for every op id, the induced bijection on
// canonical indices (old index → new index).
func (e *Engine) buildRotMaps() error {
	coords := e.lat.InternalCoords()
	for op := 0; op < rotation.Order; op++ {
		m, err := e.grp.Matrix(op)
		if err != nil {
			return err
		}
		mp := make([]int, len(coords))
		for oldIdx, c := range coords {
			newIdx, ok := e.lat.IndexOf(m.Apply(c))
			if !ok {
				return fmt.Errorf("op %d maps %v outside lattice: %w", op, c, ErrInvariant)
			}
			mp[oldIdx] = newIdx
		}
		e.rotMap[op] = mp
	}
	return nil
}

// N returns the lattice edge length.
func (e *Engine) N() int { return e.lat.N }

// Lattice returns the shared read-only lattice.
func (e *Engine) Lattice() *lattice.Lattice { return e.lat }

// Group returns the shared read-only rotation group.
func (e *Engine) Group() *rotation.Group { return e.grp }

// Grid returns a copy of the current token permutation.
func (e *Engine) Grid() []int {
	out := make([]int, len(e.grid))
	copy(out, e.grid)
	return out
}

// InternalGrid exposes the backing grid slice for hot loops (energy
// evaluation). The returned slice must be treated as read-only.
func (e *Engine) InternalGrid() []int {
	return e.grid
}

// LastAction returns a copy of the most recent mutating move, or nil
// if the state was replaced wholesale since the last move.
func (e *Engine) LastAction() *Action {
	if e.last == nil {
		return nil
	}
	a := *e.last
	return &a
}

// RotationMap returns a copy of the global index map for op.
// Returns ErrOpRange for ids outside [0, 24).
func (e *Engine) RotationMap(op int) ([]int, error) {
	if op < 0 || op >= rotation.Order {
		return nil, fmt.Errorf("op %d: %w", op, ErrOpRange)
	}
	out := make([]int, len(e.rotMap[op]))
	copy(out, e.rotMap[op])
	return out, nil
}

// Randomize replaces the grid with a uniform permutation derived from
// seed alone (the prior state does not influence the result) and
// clears the last-action record. This is a full-state reset, not an
// audited move.
func (e *Engine) Randomize(seed int64) {
	for i := range e.grid {
		e.grid[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(e.grid), func(i, j int) {
		e.grid[i], e.grid[j] = e.grid[j], e.grid[i]
	})
	e.last = nil
}

// SetGrid replaces the grid with a copy of g and clears the
// last-action record. Only the length is validated here; permutation
// validity is the audit's concern.
// Returns ErrGridLength if len(g) != N³.
func (e *Engine) SetGrid(g []int) error {
	if len(g) != len(e.grid) {
		return fmt.Errorf("want %d tokens, got %d: %w", len(e.grid), len(g), ErrGridLength)
	}
	copy(e.grid, g)
	e.last = nil
	return nil
}

// Apply performs the global rotation op: the token at old index i
// moves to rotMap[op][i]. Records the move for the audit.
// Returns ErrOpRange for ids outside [0, 24).
// Complexity: O(n³).
func (e *Engine) Apply(op int) error {
	if op < 0 || op >= rotation.Order {
		return fmt.Errorf("op %d: %w", op, ErrOpRange)
	}
	mp := e.rotMap[op]
	next := make([]int, len(e.grid))
	for oldIdx, tok := range e.grid {
		next[mp[oldIdx]] = tok
	}
	e.grid = next
	e.last = &Action{Kind: ActionGlobal, Op: op}
	return nil
}

// InverseOp returns the group inverse id of op. Total for every valid
// id.
func (e *Engine) InverseOp(op int) (int, error) {
	inv, err := e.grp.Inverse(op)
	if err != nil {
		return 0, fmt.Errorf("op %d: %w", op, ErrOpRange)
	}
	return inv, nil
}
