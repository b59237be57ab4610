// Package recovery measures basin stability: how reliably annealing
// returns to a previously found low-energy state after unguided
// perturbation.
//
// What:
//
//   - Each trial anneals a state into a basin (fixed exponential
//     cooling, 3.0 → 0.05 over 3000 steps, under the fixed default
//     energy), records the basin fingerprint, applies a configurable
//     number of unguided local moves, then re-anneals with an early
//     stop keyed to the basin fingerprint.
//   - Run aggregates recovery rate, recovery-time statistics over the
//     recovered trials, energy-delta statistics and a histogram of
//     basin → final fingerprint transitions, alongside the per-trial
//     records.
//
// Why:
//
//   - A zero-step perturbation is a no-op control (recovery rate 1);
//     sweeping the perturbation budget maps how deep the basins are.
//
// Determinism:
//
//   - Trials are mutually independent: each owns its own engine and
//     derives its seeds from the experiment seed plus the trial index
//     (fixed offsets for the two anneals and the perturbation), so a
//     run is byte-reproducible and trials could be executed in any
//     order.
//
// Errors:
//
//   - ErrTrials, ErrPerturbSteps: invalid experiment parameters.
//   - lattice.ErrBadDimension for invalid N; engine audit errors
//     propagate and abort the experiment (fatal by contract).
package recovery
