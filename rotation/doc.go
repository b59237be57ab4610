// Package rotation constructs and indexes the 24-element group of
// proper cube rotations.
//
// What:
//
//   - Matrix is a 3×3 integer matrix; group members are signed
//     permutations of the basis vectors with determinant +1.
//   - Group enumerates all 24 proper rotations, sorted into a fixed
//     deterministic order (lexicographic over matrix rows) to assign
//     stable ids 0..23, and precomputes inverse and composition
//     tables.
//
// Why:
//
//   - Global and local lattice moves are driven by op ids; stable ids
//     keep every seeded run reproducible across platforms.
//   - Inverses (the transpose of an orthonormal integer matrix) and
//     compositions stay inside the group; both are checked at build
//     time rather than assumed.
//
// Complexity:
//
//   - NewGroup:  O(1) — fixed 48-candidate enumeration plus 24×24
//     table construction.
//   - Compose, Inverse, Matrix, Identity: O(1) table lookups.
//
// Errors:
//
//   - ErrOpRange: op id outside [0, Order).
//   - ErrGroupInvariant: group construction failed a structural check
//     (wrong member count, missing inverse, broken closure). This is
//     a build-time correctness guard, not a user error.
package rotation
