package explorer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chetanxpatil/livnium-engine/engine"
)

// Energy scores an engine state; lower is better. Declared on the
// consumer side so any provider with a matching Eval method plugs in.
// Evaluations must be pure and deterministic.
type Energy interface {
	Eval(e *engine.Engine) float64
}

// Anneal runs simulated annealing over local moves only.
//
// Per step: propose a uniformly random local move, apply it, audit,
// and score it. Accept unconditionally when ΔE ≤ 0; otherwise accept
// with probability exp(−ΔE/T) where T is the schedule value at that
// step (T = 0 forces rejection of any worsening move). Rejected moves
// are reverted through InverseLocal and re-audited, and the unchanged
// energy is recorded for that step.
//
// The run stops early when StopHash matches the current fingerprint,
// checked once per completed step and for the initial state.
//
// Returns ErrNoEnergy / ErrNoSchedule for missing collaborators,
// ErrBadSchedule for an empty Sequence, ErrSteps for a negative
// budget, ErrNegativeTemp if the schedule yields T < 0 at runtime,
// engine.ErrGridLength for a bad InitGrid, and audit errors (fatal).
// Complexity: O(steps · n³).
func Anneal(n int, opts AnnealOptions) (AnnealResult, error) {
	if opts.Energy == nil {
		return AnnealResult{}, ErrNoEnergy
	}
	if opts.Schedule == nil {
		return AnnealResult{}, ErrNoSchedule
	}
	if seq, ok := opts.Schedule.(Sequence); ok && len(seq) == 0 {
		return AnnealResult{}, fmt.Errorf("empty sequence: %w", ErrBadSchedule)
	}
	if opts.Steps < 0 {
		return AnnealResult{}, fmt.Errorf("steps %d: %w", opts.Steps, ErrSteps)
	}

	eng, err := engine.New(n)
	if err != nil {
		return AnnealResult{}, err
	}
	if opts.InitGrid != nil {
		if err = eng.SetGrid(opts.InitGrid); err != nil {
			return AnnealResult{}, err
		}
		if err = eng.Audit(); err != nil {
			return AnnealResult{}, err
		}
	} else {
		eng.Randomize(opts.Seed)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	h0 := eng.Hash()
	log := newVisitLog(h0)

	var hashes []string
	if opts.RecordHashes {
		hashes = []string{h0}
	}

	e0 := opts.Energy.Eval(eng)
	energies := []float64{e0}
	bestE, bestStep, lastImprove := e0, 0, 0
	accepted, proposed := 0, 0

	stoppedStep := NoStep
	if opts.StopHash != "" && h0 == opts.StopHash {
		stoppedStep = 0
	}

	for step := 1; stoppedStep == NoStep && step <= opts.Steps; step++ {
		proposed++

		op, center, radius := engine.RandomLocalMove(rng, eng.Lattice().K)
		if err = eng.ApplyLocal(op, center, radius); err != nil {
			return AnnealResult{}, err
		}
		if err = eng.Audit(); err != nil {
			return AnnealResult{}, err
		}

		e1 := opts.Energy.Eval(eng)
		ePrev := energies[len(energies)-1]
		dE := e1 - ePrev

		t := opts.Schedule.Temperature(step)
		if t < 0 || math.IsNaN(t) {
			return AnnealResult{}, fmt.Errorf("temperature %v at step %d: %w", t, step, ErrNegativeTemp)
		}

		accept := dE <= 0
		if !accept && t > 0 {
			accept = rng.Float64() < math.Exp(-dE/t)
		}

		if accept {
			accepted++
			energies = append(energies, e1)
			if e1 < bestE {
				bestE, bestStep, lastImprove = e1, step, step
			}
		} else {
			invOp, invCenter, invRadius, invErr := eng.InverseLocal(op, center, radius)
			if invErr != nil {
				return AnnealResult{}, invErr
			}
			if err = eng.ApplyLocal(invOp, invCenter, invRadius); err != nil {
				return AnnealResult{}, err
			}
			if err = eng.Audit(); err != nil {
				return AnnealResult{}, err
			}
			energies = append(energies, ePrev)
		}

		h := eng.Hash()
		if opts.RecordHashes {
			hashes = append(hashes, h)
		}
		log.record(h, step)

		if opts.StopHash != "" && h == opts.StopHash {
			stoppedStep = step
		}
	}

	// Crude convergence marker: the last step the energy trace moved.
	lastChange := 0
	for s := 1; s < len(energies); s++ {
		if energies[s] != energies[s-1] {
			lastChange = s
		}
	}

	stepsRun := opts.Steps
	if stoppedStep != NoStep {
		stepsRun = stoppedStep
	}

	rate := 0.0
	if proposed > 0 {
		rate = float64(accepted) / float64(proposed)
	}

	counts := make(map[string]int, len(log.counts))
	for h, c := range log.counts {
		counts[h] = c
	}

	return AnnealResult{
		N:               n,
		Steps:           opts.Steps,
		StepsRun:        stepsRun,
		Seed:            opts.Seed,
		Accepted:        accepted,
		Proposed:        proposed,
		AcceptanceRate:  rate,
		Energies:        energies,
		E0:              e0,
		EFinal:          energies[len(energies)-1],
		BestEnergy:      bestE,
		BestStep:        bestStep,
		LastImproveStep: lastImprove,
		LastChangeStep:  lastChange,
		UniqueStates:    log.unique(),
		FirstRepeatStep: log.firstRepeat,
		RepeatVisits:    log.repeats,
		VisitCounts:     counts,
		FinalHash:       eng.Hash(),
		FinalGrid:       eng.Grid(),
		StoppedStep:     stoppedStep,
		Hashes:          hashes,
	}, nil
}
