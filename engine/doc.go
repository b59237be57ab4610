// Package engine owns the permutation state of a cubic lattice and
// applies proper cube rotations to it, globally or within a local
// cube-shaped region.
//
// What:
//
//   - Engine holds a grid of N³ tokens; token t's home is the
//     coordinate of canonical index t, so the identity grid is the
//     solved state.
//   - Apply moves the whole lattice through one of the 24 rotations
//     via precomputed index maps; ApplyLocal rotates only the
//     Chebyshev ball of a given radius about a center, leaving every
//     cell outside the region untouched.
//   - Hash fingerprints the state as a SHA-256 hex digest over a
//     canonical little-endian serialization of [N, grid...].
//   - Audit is the self-check: it verifies the grid is a permutation,
//     the relevant rotation maps are bijections, and the last applied
//     move round-trips through its inverse — then restores the exact
//     pre-audit state and re-verifies the hash, on every exit path.
//   - Perturb applies seeded random local moves (audited each step)
//     as energy-agnostic noise for stability experiments.
//
// Why:
//
//   - Exploration drivers propose, score and revert moves through
//     these primitives; the audit contract is what lets them trust
//     every intermediate state.
//
// Complexity (n³ = lattice size, r = region radius):
//
//   - New:        O(24·n³) — builds all global index maps once.
//   - Apply:      O(n³). ApplyLocal: O(n³) copy + O((2r+1)³) remap.
//   - Hash:       O(n³).
//   - Audit:      O(n³) with a recorded action; O(24·n³) without one
//     (full rotation-map validation).
//
// Errors:
//
//   - ErrGridLength: injected grid has the wrong length.
//   - ErrOpRange, ErrRadius, ErrCenterBounds, ErrRegionBounds,
//     ErrSteps: invalid operation arguments; never retry unchanged.
//   - ErrInvariant: audit-detected corruption. Fatal — continued use
//     of the state has undefined meaning.
package engine
