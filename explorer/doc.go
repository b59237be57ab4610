// Package explorer drives state-space exploration over the
// permutation engine: seeded random walks, a mixed global/local walk,
// and simulated annealing under a pluggable energy function.
//
// What:
//
//   - RandomWalk applies uniformly random global rotations, auditing
//     and fingerprinting each step, and reports repeat/entropy
//     statistics of the visited states.
//   - RandomLocalWalk flips a fair coin between a global rotation and
//     a random in-bounds local rotation each step.
//   - Anneal runs Metropolis acceptance over local moves only:
//     proposals are applied, audited and scored; rejected moves are
//     reverted through the engine's inverse primitives and
//     re-audited, so every recorded state passed the full audit.
//   - Temperature schedules are pluggable: Constant, Sequence
//     (clamped to its last value), TempFn, or the ExpCooling
//     constructor.
//
// Why:
//
//   - These drivers exercise the engine's move/inverse/audit contract
//     end to end; they exist to study state-space structure (cycle
//     estimates, visit entropy, basin depth), not to solve anything.
//
// Determinism:
//
//   - Every driver consumes exactly one seeded RNG in a fixed draw
//     order; identical options produce byte-identical results. No
//     global or time-based randomness is consulted anywhere.
//
// Errors:
//
//   - ErrSteps: negative step budget.
//   - ErrNoEnergy, ErrNoSchedule: annealing invoked without its
//     required collaborators.
//   - ErrBadSchedule: unusable schedule parameters (empty sequence,
//     inverted or negative cooling bounds, non-positive step count).
//   - ErrNegativeTemp: a schedule produced a negative (or NaN)
//     temperature at runtime.
//   - engine.ErrInvariant: audit failure mid-run; fatal, exploration
//     of the state must stop.
package explorer
