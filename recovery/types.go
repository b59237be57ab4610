// Package recovery defines option/result types and sentinel errors
// for the basin-recovery experiment.
package recovery

import "errors"

// Sentinel errors for experiment parameters.
var (
	// ErrTrials indicates a trial count smaller than 1.
	ErrTrials = errors.New("recovery: trials must be >= 1")
	// ErrPerturbSteps indicates a negative perturbation budget.
	ErrPerturbSteps = errors.New("recovery: perturb steps must be >= 0")
)

// Options configures a recovery experiment.
type Options struct {
	// N is the lattice edge length (odd, ≥ 3).
	N int
	// Trials is the number of independent repetitions (≥ 1).
	Trials int
	// PerturbSteps is the unguided local-move budget applied between
	// the two anneals (≥ 0; 0 is the no-op control).
	PerturbSteps int
	// Seed is the experiment seed; per-trial anneal and perturbation
	// seeds derive from it.
	Seed int64
	// RandomizeInit starts each trial from a shuffle seeded with
	// InitSeed plus the trial index; otherwise from the identity.
	RandomizeInit bool
	// InitSeed seeds the per-trial initial shuffle.
	InitSeed int64
}

// DefaultOptions returns an Options with N=5, 10 trials and a 50-step
// perturbation, starting from the identity.
func DefaultOptions() Options {
	return Options{N: 5, Trials: 10, PerturbSteps: 50}
}

// Stats summarizes a sample. N is the sample size; the remaining
// fields are zero when the sample is empty.
type Stats struct {
	N      int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Trial records one repetition of the experiment.
type Trial struct {
	Index int

	BasinHash   string
	BasinEnergy float64

	// PerturbedEnergy is the energy right after the unguided moves.
	PerturbedEnergy float64
	PerturbSteps    int

	// Recovered is true when the re-anneal's early stop fired or its
	// final fingerprint equals the basin fingerprint (both checks are
	// kept deliberately).
	Recovered bool
	// RecoverySteps is the early-stop step, or explorer.NoStep if the
	// stop never fired.
	RecoverySteps int

	FinalHash   string
	FinalEnergy float64
	// Overshoot is the peak re-anneal energy above the basin energy.
	Overshoot float64
}

// Result aggregates a recovery experiment.
type Result struct {
	N            int
	Trials       int
	PerturbSteps int
	AnnealSteps  int
	T0, Tmin     float64

	// RecoveryRate is the fraction of trials that recovered.
	RecoveryRate float64
	// RecoveryTime summarizes early-stop steps over recovered trials
	// only.
	RecoveryTime Stats

	FinalMinusBasin     Stats
	PerturbedMinusBasin Stats
	Overshoot           Stats

	// BasinChanges histograms "basin->final" fingerprint transitions,
	// keyed by 12-character hash prefixes.
	BasinChanges map[string]int

	PerTrial []Trial
}
