// Package livniumengine models a cubic lattice of N³ labeled cells as
// a permutation of tokens acted on by the 24 proper cube rotations,
// applied globally or within local cube regions — plus the
// exploration machinery to study the resulting state space.
//
// What's inside:
//
//	lattice/  — the index↔coordinate bijection for the N³ cube
//	rotation/ — the 24-element proper rotation group: stable ids,
//	            composition and inverse tables, closure checked
//	engine/   — the permutation state machine: global/local moves,
//	            canonical SHA-256 fingerprints, the non-mutating
//	            self-audit, seeded perturbation noise
//	energy/   — the pluggable scoring contract and the built-in
//	            neighbor-disagreement and home-distance energies
//	explorer/ — seeded random walks and simulated annealing built
//	            from the engine primitives
//	recovery/ — basin-stability experiments composing two anneals
//	            around an unguided perturbation
//
// Why:
//
//   - Every mutating move is a verified bijection and every state is
//     audited back to a valid permutation; the explorers propose,
//     score and revert through those same audited primitives.
//   - Everything is single-threaded, in-memory and deterministic
//     given explicit seeds; two runs with the same options are
//     byte-identical.
//
// A quick taste:
//
//	eng, _ := engine.New(5)
//	_ = eng.Apply(7)
//	inv, _ := eng.InverseOp(7)
//	_ = eng.Apply(inv)
//	// eng.Hash() is back to the solved-state fingerprint.
//
// Reporting, plotting and CLI surfaces are deliberately left to
// external collaborators; the result structs in explorer/ and
// recovery/ are their interface.
package livniumengine
