// Package energy defines the pluggable scoring contract used by the
// annealing driver, plus the built-in scalar energies.
//
// What:
//
//   - Func is the capability interface: a single, pure evaluation of
//     engine state to a finite scalar, lower is better.
//   - NeighborDisagreement counts lattice edges whose occupying
//     tokens' home coordinates are not themselves neighbors.
//   - HomeDistance sums each token's squared Euclidean distance from
//     its home coordinate.
//   - Weighted combines terms linearly; Default is the fixed
//     neighbor + 0.2×home blend the recovery experiment depends on.
//
// Why:
//
//   - Annealing acceptance is defined entirely by energy deltas;
//     keeping evaluations side-effect-free and deterministic is what
//     makes seeded runs reproducible.
//
// Complexity: every built-in evaluation is O(n³).
//
// Both built-ins score the identity permutation at exactly 0, their
// global minimum.
package energy
