package engine

import (
	"bytes"
	"fmt"

	"github.com/chetanxpatil/livnium-engine/lattice"
)

// Audit runs the engine's self-checks without externally observable
// mutation. It snapshots the grid, last action and hash, runs three
// checks (permutation validity, rotation-map validity scoped to the
// last action, inverse round-trip of the last action), then restores
// the snapshot unconditionally — including when a check fails — and
// re-verifies the restored hash against the pre-audit hash.
//
// Any failed check returns an error wrapping ErrInvariant and is
// fatal: callers must stop exploring on this state.
func (e *Engine) Audit() error {
	beforeGrid := make([]int, len(e.grid))
	copy(beforeGrid, e.grid)
	beforeLast := e.last
	beforeHash := e.Hash()

	checkErr := e.runChecks()

	// Restore regardless of check outcome, then prove it.
	e.grid = beforeGrid
	e.last = beforeLast
	if after := e.Hash(); after != beforeHash {
		return fmt.Errorf("audit failed to restore state: %w", ErrInvariant)
	}
	return checkErr
}

func (e *Engine) runChecks() error {
	if err := e.auditPermutation(); err != nil {
		return err
	}
	if err := e.auditRotationMaps(); err != nil {
		return err
	}
	return e.auditInverseRoundtrip()
}

// auditPermutation verifies the grid is a permutation of {0..n³-1}.
func (e *Engine) auditPermutation() error {
	size := e.lat.Size()
	if len(e.grid) != size {
		return fmt.Errorf("grid length %d, want %d: %w", len(e.grid), size, ErrInvariant)
	}
	seen := make([]bool, size)
	for i, tok := range e.grid {
		if tok < 0 || tok >= size {
			return fmt.Errorf("token %d at index %d out of range: %w", tok, i, ErrInvariant)
		}
		if seen[tok] {
			return fmt.Errorf("token %d duplicated: %w", tok, ErrInvariant)
		}
		seen[tok] = true
	}
	return nil
}

// auditRotationMaps validates rotation index maps, scoped by the last
// action: all 24 global maps when no action is recorded (the
// expensive one-time-style check), only the acted map for a global
// move, and a freshly recomputed region mapping for a local move.
func (e *Engine) auditRotationMaps() error {
	if e.last == nil {
		for op := range e.rotMap {
			if err := e.auditGlobalMap(op); err != nil {
				return err
			}
		}
		return nil
	}

	switch e.last.Kind {
	case ActionGlobal:
		return e.auditGlobalMap(e.last.Op)
	case ActionLocal:
		return e.auditLocalMapping(e.last.Op, e.last.Center, e.last.Radius)
	default:
		return fmt.Errorf("unknown action kind %d: %w", e.last.Kind, ErrInvariant)
	}
}

// auditGlobalMap verifies rotMap[op] is a length-n³ bijection.
func (e *Engine) auditGlobalMap(op int) error {
	size := e.lat.Size()
	mp := e.rotMap[op]
	if len(mp) != size {
		return fmt.Errorf("op %d map length %d, want %d: %w", op, len(mp), size, ErrInvariant)
	}
	seen := make([]bool, size)
	for _, j := range mp {
		if j < 0 || j >= size {
			return fmt.Errorf("op %d map image %d out of range: %w", op, j, ErrInvariant)
		}
		if seen[j] {
			return fmt.Errorf("op %d map not a bijection: %w", op, ErrInvariant)
		}
		seen[j] = true
	}
	return nil
}

// auditLocalMapping recomputes the region mapping and verifies it is a
// bijection on its own domain and image.
func (e *Engine) auditLocalMapping(op int, center lattice.Coord, radius int) error {
	mapping, err := e.localMapping(op, center, radius)
	if err != nil {
		return err
	}

	size := e.lat.Size()
	dom := make(map[int]bool, len(mapping))
	img := make(map[int]bool, len(mapping))
	for _, p := range mapping {
		if p.From < 0 || p.From >= size {
			return fmt.Errorf("local domain index %d out of range: %w", p.From, ErrInvariant)
		}
		if p.To < 0 || p.To >= size {
			return fmt.Errorf("local image index %d out of range: %w", p.To, ErrInvariant)
		}
		if dom[p.From] {
			return fmt.Errorf("local domain collision at %d: %w", p.From, ErrInvariant)
		}
		if img[p.To] {
			return fmt.Errorf("local image collision at %d: %w", p.To, ErrInvariant)
		}
		dom[p.From] = true
		img[p.To] = true
	}
	// The rotation must permute the region onto itself.
	for from := range dom {
		if !img[from] {
			return fmt.Errorf("local mapping not a bijection on region: %w", ErrInvariant)
		}
	}
	return nil
}

// auditInverseRoundtrip applies the recorded action and then its
// inverse, asserting the canonical bytes are restored exactly. Skipped
// when no action is recorded.
func (e *Engine) auditInverseRoundtrip() error {
	if e.last == nil {
		return nil
	}

	snap := e.canonicalBytes()
	act := *e.last

	switch act.Kind {
	case ActionGlobal:
		inv, err := e.InverseOp(act.Op)
		if err != nil {
			return err
		}
		if err = e.Apply(act.Op); err != nil {
			return err
		}
		if err = e.Apply(inv); err != nil {
			return err
		}
	case ActionLocal:
		invOp, invCenter, invRadius, err := e.InverseLocal(act.Op, act.Center, act.Radius)
		if err != nil {
			return err
		}
		if err = e.ApplyLocal(act.Op, act.Center, act.Radius); err != nil {
			return err
		}
		if err = e.ApplyLocal(invOp, invCenter, invRadius); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown action kind %d: %w", act.Kind, ErrInvariant)
	}

	if !bytes.Equal(e.canonicalBytes(), snap) {
		return fmt.Errorf("apply(op); apply(inverse) did not restore state: %w", ErrInvariant)
	}
	return nil
}
