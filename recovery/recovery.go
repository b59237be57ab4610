package recovery

import (
	"fmt"
	"sort"

	"github.com/chetanxpatil/livnium-engine/energy"
	"github.com/chetanxpatil/livnium-engine/engine"
	"github.com/chetanxpatil/livnium-engine/explorer"
)

// Fixed annealing regime; kept explicit so basin reports stay
// comparable across runs.
const (
	annealSteps = 3000
	coolT0      = 3.0
	coolTmin    = 0.05
)

// Per-trial seed offsets: basin anneal, perturbation, re-anneal.
const (
	seedBasin   = 10_000
	seedPerturb = 20_000
	seedReheat  = 30_000
)

// Run executes the basin-recovery experiment described in the package
// documentation.
// Complexity: O(trials · annealSteps · n³).
func Run(opts Options) (Result, error) {
	if opts.Trials < 1 {
		return Result{}, fmt.Errorf("trials %d: %w", opts.Trials, ErrTrials)
	}
	if opts.PerturbSteps < 0 {
		return Result{}, fmt.Errorf("perturb steps %d: %w", opts.PerturbSteps, ErrPerturbSteps)
	}

	schedule, err := explorer.ExpCooling(coolT0, coolTmin, annealSteps)
	if err != nil {
		return Result{}, err
	}
	score := energy.Default()

	res := Result{
		N:            opts.N,
		Trials:       opts.Trials,
		PerturbSteps: opts.PerturbSteps,
		AnnealSteps:  annealSteps,
		T0:           coolT0,
		Tmin:         coolTmin,
		BasinChanges: make(map[string]int),
		PerTrial:     make([]Trial, 0, opts.Trials),
	}

	var (
		recoveredCount int
		recoveryTimes  []float64
		finalDeltas    []float64
		perturbDeltas  []float64
		overshoots     []float64
	)

	for t := 0; t < opts.Trials; t++ {
		trial, err := runTrial(opts, t, schedule, score)
		if err != nil {
			return Result{}, err
		}

		if trial.Recovered {
			recoveredCount++
			if trial.RecoverySteps != explorer.NoStep {
				recoveryTimes = append(recoveryTimes, float64(trial.RecoverySteps))
			}
		}
		finalDeltas = append(finalDeltas, trial.FinalEnergy-trial.BasinEnergy)
		perturbDeltas = append(perturbDeltas, trial.PerturbedEnergy-trial.BasinEnergy)
		overshoots = append(overshoots, trial.Overshoot)
		res.BasinChanges[transitionKey(trial.BasinHash, trial.FinalHash)]++
		res.PerTrial = append(res.PerTrial, trial)
	}

	res.RecoveryRate = float64(recoveredCount) / float64(opts.Trials)
	res.RecoveryTime = summarize(recoveryTimes)
	res.FinalMinusBasin = summarize(finalDeltas)
	res.PerturbedMinusBasin = summarize(perturbDeltas)
	res.Overshoot = summarize(overshoots)
	return res, nil
}

// runTrial executes one independent repetition.
func runTrial(opts Options, t int, schedule explorer.Schedule, score explorer.Energy) (Trial, error) {
	// 1) Initial state: identity, or a per-trial seeded shuffle.
	initEng, err := engine.New(opts.N)
	if err != nil {
		return Trial{}, err
	}
	if opts.RandomizeInit {
		initEng.Randomize(opts.InitSeed + int64(t))
	}

	// 2) Anneal into a basin.
	basin, err := explorer.Anneal(opts.N, explorer.AnnealOptions{
		Steps:    annealSteps,
		Seed:     opts.Seed + seedBasin + int64(t),
		InitGrid: initEng.Grid(),
		Schedule: schedule,
		Energy:   score,
	})
	if err != nil {
		return Trial{}, err
	}

	// 3) Unguided perturbation from the basin state.
	noisy, err := engine.New(opts.N)
	if err != nil {
		return Trial{}, err
	}
	if err = noisy.SetGrid(basin.FinalGrid); err != nil {
		return Trial{}, err
	}
	if err = noisy.Audit(); err != nil {
		return Trial{}, err
	}
	if err = noisy.Perturb(opts.PerturbSteps, opts.Seed+seedPerturb+int64(t)); err != nil {
		return Trial{}, err
	}
	perturbedEnergy := score.Eval(noisy)

	// 4) Re-anneal, stopping early on the basin fingerprint.
	reheat, err := explorer.Anneal(opts.N, explorer.AnnealOptions{
		Steps:    annealSteps,
		Seed:     opts.Seed + seedReheat + int64(t),
		InitGrid: noisy.Grid(),
		Schedule: schedule,
		Energy:   score,
		StopHash: basin.FinalHash,
	})
	if err != nil {
		return Trial{}, err
	}

	// The early stop already implies a hash match; the second check is
	// kept alongside it on purpose.
	recovered := reheat.StoppedStep != explorer.NoStep || reheat.FinalHash == basin.FinalHash

	maxEnergy := reheat.Energies[0]
	for _, e := range reheat.Energies[1:] {
		if e > maxEnergy {
			maxEnergy = e
		}
	}
	overshoot := maxEnergy - basin.EFinal

	return Trial{
		Index:           t,
		BasinHash:       basin.FinalHash,
		BasinEnergy:     basin.EFinal,
		PerturbedEnergy: perturbedEnergy,
		PerturbSteps:    opts.PerturbSteps,
		Recovered:       recovered,
		RecoverySteps:   reheat.StoppedStep,
		FinalHash:       reheat.FinalHash,
		FinalEnergy:     reheat.EFinal,
		Overshoot:       overshoot,
	}, nil
}

// transitionKey renders a basin→final transition with 12-character
// fingerprint prefixes.
func transitionKey(basin, final string) string {
	return fmt.Sprintf("%.12s->%.12s", basin, final)
}

// summarize computes sample statistics; the zero Stats for an empty
// sample.
func summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Stats{
		N:      n,
		Mean:   sum / float64(n),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}
