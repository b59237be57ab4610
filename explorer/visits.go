package explorer

import "math"

// visitLog tracks fingerprint sightings across a run: first-seen
// steps, visit counts, the first repeat and the heuristic cycle
// estimate derived from it.
type visitLog struct {
	firstSeen map[string]int
	counts    map[string]int

	firstRepeat int
	cycleLen    int
	repeats     int
}

// newVisitLog starts a log with the initial fingerprint at step 0.
func newVisitLog(h0 string) *visitLog {
	return &visitLog{
		firstSeen:   map[string]int{h0: 0},
		counts:      map[string]int{h0: 1},
		firstRepeat: NoStep,
		cycleLen:    NoStep,
	}
}

// record notes the fingerprint observed after the given step.
func (v *visitLog) record(h string, step int) {
	v.counts[h]++
	if seenAt, ok := v.firstSeen[h]; ok {
		v.repeats++
		if v.firstRepeat == NoStep {
			v.firstRepeat = step
			v.cycleLen = step - seenAt
		}
		return
	}
	v.firstSeen[h] = step
}

// unique returns the number of distinct fingerprints observed.
func (v *visitLog) unique() int {
	return len(v.firstSeen)
}

// entropyBits returns the Shannon entropy (bits) of the visit-count
// distribution.
func (v *visitLog) entropyBits() float64 {
	total := 0
	for _, c := range v.counts {
		total += c
	}
	if total == 0 {
		return 0
	}

	h := 0.0
	for _, c := range v.counts {
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}
