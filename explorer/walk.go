package explorer

import (
	"fmt"
	"math/rand"

	"github.com/chetanxpatil/livnium-engine/engine"
	"github.com/chetanxpatil/livnium-engine/rotation"
)

// RandomWalk applies opts.Steps uniformly random global rotations to a
// fresh engine of edge length n, auditing and fingerprinting after
// every move.
// Returns ErrSteps for a negative budget; lattice and audit errors
// propagate (audit failures are fatal to the run).
// Complexity: O(steps · n³).
func RandomWalk(n int, opts WalkOptions) (WalkResult, error) {
	if opts.Steps < 0 {
		return WalkResult{}, fmt.Errorf("steps %d: %w", opts.Steps, ErrSteps)
	}

	eng, err := engine.New(n)
	if err != nil {
		return WalkResult{}, err
	}
	if opts.RandomizeInit {
		eng.Randomize(opts.InitSeed)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	log := newVisitLog(eng.Hash())

	for step := 1; step <= opts.Steps; step++ {
		op := rng.Intn(rotation.Order)
		if err = eng.Apply(op); err != nil {
			return WalkResult{}, err
		}
		if err = eng.Audit(); err != nil {
			return WalkResult{}, err
		}
		log.record(eng.Hash(), step)
	}

	return WalkResult{
		N:                 n,
		Steps:             opts.Steps,
		Seed:              opts.Seed,
		FirstRepeatStep:   log.firstRepeat,
		EstimatedCycleLen: log.cycleLen,
		UniqueStates:      log.unique(),
		EntropyBits:       log.entropyBits(),
	}, nil
}

// RandomLocalWalk is RandomWalk with a fair coin per step between a
// global rotation and a random in-bounds local rotation
// (radius ∈ {1,2}, center uniform over positions valid for that
// radius).
// Complexity: O(steps · n³).
func RandomLocalWalk(n int, opts WalkOptions) (LocalWalkResult, error) {
	if opts.Steps < 0 {
		return LocalWalkResult{}, fmt.Errorf("steps %d: %w", opts.Steps, ErrSteps)
	}

	eng, err := engine.New(n)
	if err != nil {
		return LocalWalkResult{}, err
	}
	if opts.RandomizeInit {
		eng.Randomize(opts.InitSeed)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	log := newVisitLog(eng.Hash())

	var globalOps, localOps int
	for step := 1; step <= opts.Steps; step++ {
		if rng.Float64() < 0.5 {
			op := rng.Intn(rotation.Order)
			if err = eng.Apply(op); err != nil {
				return LocalWalkResult{}, err
			}
			globalOps++
		} else {
			op, center, radius := engine.RandomLocalMove(rng, eng.Lattice().K)
			if err = eng.ApplyLocal(op, center, radius); err != nil {
				return LocalWalkResult{}, err
			}
			localOps++
		}

		if err = eng.Audit(); err != nil {
			return LocalWalkResult{}, err
		}
		log.record(eng.Hash(), step)
	}

	return LocalWalkResult{
		WalkResult: WalkResult{
			N:                 n,
			Steps:             opts.Steps,
			Seed:              opts.Seed,
			FirstRepeatStep:   log.firstRepeat,
			EstimatedCycleLen: log.cycleLen,
			UniqueStates:      log.unique(),
			EntropyBits:       log.entropyBits(),
		},
		GlobalOps: globalOps,
		LocalOps:  localOps,
	}, nil
}
