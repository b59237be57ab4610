// Package lattice builds the index↔coordinate bijection for a cubic
// lattice of N³ cells, N odd and ≥ 3.
//
// What:
//
//   - Coord is an integer triple (X,Y,Z), each component in [-k,k]
//     where k = (N-1)/2.
//   - Lattice enumerates all N³ coordinates in a fixed lexicographic
//     order (by X, then Y, then Z), assigning each a canonical index
//     in [0, N³). The enumeration is immutable once built.
//
// Why:
//
//   - Rotation index maps, permutation grids and region extraction all
//     address cells by canonical index; this package is the single
//     source of truth for that addressing.
//   - A Lattice is read-only after construction and may be shared
//     freely across engine instances of the same N.
//
// Complexity:
//
//   - New:       O(N³) time and memory.
//   - CoordOf:   O(1).
//   - IndexOf:   O(1) expected (map lookup).
//   - Contains:  O(1).
//
// Errors:
//
//   - ErrBadDimension: N is even or smaller than 3.
//   - ErrIndexRange: canonical index outside [0, N³).
package lattice
