package sleepcycle

import (
	"fmt"
	"strings"
)

// Policy selects how candidate cycle counts are chosen and ordered.
type Policy string

const (
	// PolicyQuality keeps candidates inside the 5-7 cycle band and ranks
	// them by quality score, best first.
	PolicyQuality Policy = "quality"
	// PolicyProximity proposes the cycle counts around the baseline and
	// ranks them chronologically. No quality score is computed.
	PolicyProximity Policy = "proximity"
)

// Recommended cycle band used by PolicyQuality.
const (
	MinBandCycles = 5
	MaxBandCycles = 7
)

// ParsePolicy accepts "quality" or "proximity". An empty string yields
// PolicyQuality.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.TrimSpace(s)) {
	case "", PolicyQuality:
		return PolicyQuality, nil
	case PolicyProximity:
		return PolicyProximity, nil
	default:
		return "", fmt.Errorf("%w: %q, expected quality or proximity", ErrUnknownPolicy, s)
	}
}

// Window returns the cycle counts to evaluate for the given baseline, in
// ascending order. Counts below one never appear.
func (p Policy) Window(baseline int) []int {
	switch p {
	case PolicyProximity:
		return proximityWindow(baseline)
	default:
		return qualityWindow(baseline)
	}
}

// qualityWindow is [max(5, b-2), min(b+2, 7)]. When the baseline is too far
// from the band for the range to be non-empty, the band edge nearest the
// baseline is used on its own.
func qualityWindow(baseline int) []int {
	lo := max(MinBandCycles, baseline-2)
	hi := min(baseline+2, MaxBandCycles)
	if lo > hi {
		if baseline < MinBandCycles {
			lo, hi = MinBandCycles, MinBandCycles
		} else {
			lo, hi = MaxBandCycles, MaxBandCycles
		}
	}

	cycles := make([]int, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		if c > 0 {
			cycles = append(cycles, c)
		}
	}
	return cycles
}

// proximityWindow is {b-2, b-1, b, b+1}. A baseline of zero or less yields
// no candidates at all.
func proximityWindow(baseline int) []int {
	if baseline <= 0 {
		return nil
	}

	cycles := make([]int, 0, 4)
	if baseline >= 3 {
		cycles = append(cycles, baseline-2)
	}
	if baseline >= 2 {
		cycles = append(cycles, baseline-1)
	}
	return append(cycles, baseline, baseline+1)
}
