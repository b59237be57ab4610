// Package explorer defines option/result types and sentinel errors
// for the exploration drivers.
package explorer

import "errors"

// NoStep marks a step counter that never fired (no repeat observed,
// no early stop reached).
const NoStep = -1

// Sentinel errors for exploration drivers.
var (
	// ErrSteps indicates a negative step budget.
	ErrSteps = errors.New("explorer: steps must be >= 0")
	// ErrNoEnergy indicates annealing was invoked without an energy function.
	ErrNoEnergy = errors.New("explorer: energy function is required")
	// ErrNoSchedule indicates annealing was invoked without a temperature schedule.
	ErrNoSchedule = errors.New("explorer: temperature schedule is required")
	// ErrBadSchedule indicates unusable schedule parameters.
	ErrBadSchedule = errors.New("explorer: bad temperature schedule")
	// ErrNegativeTemp indicates a schedule produced a negative temperature.
	ErrNegativeTemp = errors.New("explorer: temperature must be >= 0")
)

// WalkOptions configures RandomWalk and RandomLocalWalk.
type WalkOptions struct {
	// Steps is the number of moves to apply (≥ 0).
	Steps int
	// Seed drives the move proposals.
	Seed int64
	// RandomizeInit shuffles the grid with InitSeed before walking;
	// otherwise the walk starts from the identity permutation.
	RandomizeInit bool
	// InitSeed seeds the initial shuffle when RandomizeInit is set.
	InitSeed int64
}

// DefaultWalkOptions returns a WalkOptions with a 1000-step budget,
// seed 0 and an identity start.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{Steps: 1000}
}

// WalkResult reports what a random walk visited.
//
// EstimatedCycleLen is a heuristic: the gap between the first repeated
// fingerprint and its first sighting. It is a lower-bound estimate of
// any true cycle, not a verified period.
type WalkResult struct {
	N     int
	Steps int
	Seed  int64

	// FirstRepeatStep is the step of the first repeated fingerprint,
	// or NoStep if none occurred.
	FirstRepeatStep int
	// EstimatedCycleLen is FirstRepeatStep minus the repeated
	// fingerprint's first-seen step, or NoStep if none occurred.
	EstimatedCycleLen int
	// UniqueStates counts distinct fingerprints visited (including
	// the initial state).
	UniqueStates int
	// EntropyBits is the Shannon entropy of the visit-count
	// distribution, in bits.
	EntropyBits float64
}

// LocalWalkResult extends WalkResult with the global/local move split
// of the mixed walk.
type LocalWalkResult struct {
	WalkResult

	GlobalOps int
	LocalOps  int
}

// AnnealOptions configures Anneal.
type AnnealOptions struct {
	// Steps is the proposal budget (≥ 0).
	Steps int
	// Seed drives proposals and acceptance draws; it also seeds the
	// initial shuffle when InitGrid is nil.
	Seed int64
	// InitGrid, when non-nil, is injected (and audited) as the
	// starting state instead of a seeded shuffle.
	InitGrid []int
	// Schedule supplies the temperature per step. Required.
	Schedule Schedule
	// Energy scores states; lower is better. Required.
	Energy Energy
	// StopHash, when non-empty, stops the run as soon as the current
	// fingerprint equals it (checked once per completed step, and for
	// the initial state).
	StopHash string
	// RecordHashes keeps the per-step fingerprint log in the result.
	RecordHashes bool
}

// AnnealResult reports one annealing run.
type AnnealResult struct {
	N        int
	Steps    int
	StepsRun int
	Seed     int64

	Accepted       int
	Proposed       int
	AcceptanceRate float64

	// Energies holds E(t) for t = 0..StepsRun; rejected steps record
	// the unchanged previous energy.
	Energies []float64
	E0       float64
	EFinal   float64

	BestEnergy      float64
	BestStep        int
	LastImproveStep int
	// LastChangeStep is the last step at which the recorded energy
	// differed from the previous step's — a crude convergence marker.
	LastChangeStep int

	UniqueStates    int
	FirstRepeatStep int
	RepeatVisits    int
	VisitCounts     map[string]int

	FinalHash string
	FinalGrid []int

	// StoppedStep is the step at which StopHash matched, or NoStep.
	StoppedStep int
	// Hashes is the per-step fingerprint log (only when RecordHashes).
	Hashes []string
}
