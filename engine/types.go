// Package engine defines core types and sentinel errors for the
// permutation engine.
package engine

import (
	"errors"

	"github.com/chetanxpatil/livnium-engine/lattice"
)

// Sentinel errors for engine operations.
var (
	// ErrNilDependency indicates a nil lattice or rotation group.
	ErrNilDependency = errors.New("engine: nil lattice or rotation group")
	// ErrGridLength indicates an injected grid of the wrong length.
	ErrGridLength = errors.New("engine: grid length mismatch")
	// ErrOpRange indicates an op id outside [0, 24).
	ErrOpRange = errors.New("engine: op id out of range")
	// ErrRadius indicates a local-move radius smaller than 1.
	ErrRadius = errors.New("engine: radius must be >= 1")
	// ErrCenterBounds indicates a local-move center outside the lattice.
	ErrCenterBounds = errors.New("engine: center out of bounds")
	// ErrRegionBounds indicates a local region escaping lattice bounds.
	ErrRegionBounds = errors.New("engine: region out of bounds")
	// ErrSteps indicates a negative step count.
	ErrSteps = errors.New("engine: steps must be >= 0")
	// ErrInvariant indicates audit-detected corruption; fatal to the state.
	ErrInvariant = errors.New("engine: invariant violated")
)

// ActionKind tags the kind of the most recent mutating move.
type ActionKind int

const (
	// ActionGlobal is a whole-lattice rotation.
	ActionGlobal ActionKind = iota
	// ActionLocal is a rotation of a cube region about a center.
	ActionLocal
)

// Action records the most recently applied mutating move. It exists
// solely to drive the audit's inverse-roundtrip check and is cleared
// whenever the state is replaced wholesale.
type Action struct {
	Kind   ActionKind
	Op     int
	Center lattice.Coord // local moves only
	Radius int           // local moves only
}
