// Package sleepcycle computes wake-up times aligned to 90-minute sleep
// cycles and scores them for estimated sleep quality.
//
// Everything in this package is a pure function of its arguments.
package sleepcycle

import (
	"fmt"
	"sort"
)

// MaxFallAsleepMinutes bounds the sleep-onset latency.
const MaxFallAsleepMinutes = 120

// Input holds the already-parsed parameters of one calculation.
type Input struct {
	Bedtime           Clock
	FallAsleepMinutes int
	Target            Clock
	Policy            Policy
}

// Candidate is one evaluated wake-up option.
type Candidate struct {
	WakeClock          Clock
	SleepDurationHours float64
	Cycles             int
	// QualityScore is zero under PolicyProximity.
	QualityScore float64
	Recommended  bool
	Stage        Stage
}

// Scored reports whether a quality score was computed for the candidate.
func (c Candidate) Scored() bool {
	return c.QualityScore > 0
}

// Result is an ordered candidate list with the timeline it was derived from.
type Result struct {
	Policy Policy
	// SleepOnsetMinutes is bedtime plus latency and may exceed one day.
	SleepOnsetMinutes  int
	MinutesUntilTarget int
	BaselineCycles     int
	Candidates         []Candidate
}

// SleepOnset is the time of day sleep is expected to begin.
func (r Result) SleepOnset() Clock {
	return ClockOf(r.SleepOnsetMinutes)
}

// Compute parses the clock strings and runs Calculate.
func Compute(bedtime string, fallAsleepMinutes int, target string, policy Policy) (Result, error) {
	bed, err := ParseClock(bedtime)
	if err != nil {
		return Result{}, inputError(FieldBedtime, err)
	}
	wake, err := ParseClock(target)
	if err != nil {
		return Result{}, inputError(FieldWakeTime, err)
	}

	return Calculate(Input{
		Bedtime:           bed,
		FallAsleepMinutes: fallAsleepMinutes,
		Target:            wake,
		Policy:            policy,
	})
}

// Calculate produces the ordered wake-up candidates for in.
func Calculate(in Input) (Result, error) {
	if in.FallAsleepMinutes < 0 || in.FallAsleepMinutes > MaxFallAsleepMinutes {
		return Result{}, inputError(FieldFallAsleepMinutes,
			fmt.Errorf("%w: %d minutes, expected 0-%d", ErrInvalidLatency, in.FallAsleepMinutes, MaxFallAsleepMinutes))
	}
	if in.Bedtime < 0 || in.Bedtime >= MinutesPerDay {
		return Result{}, inputError(FieldBedtime, fmt.Errorf("%w: %d minutes is outside one day", ErrInvalidTimeFormat, in.Bedtime))
	}
	if in.Target < 0 || in.Target >= MinutesPerDay {
		return Result{}, inputError(FieldWakeTime, fmt.Errorf("%w: %d minutes is outside one day", ErrInvalidTimeFormat, in.Target))
	}
	policy := in.Policy
	if policy == "" {
		policy = PolicyQuality
	}
	if policy != PolicyQuality && policy != PolicyProximity {
		return Result{}, inputError(FieldPolicy, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy))
	}

	onset, until := Timeline(in.Bedtime, in.FallAsleepMinutes, in.Target)
	baseline := BaselineCycles(until)

	window := policy.Window(baseline)
	candidates := make([]Candidate, 0, len(window))
	for _, cycles := range window {
		candidates = append(candidates, Evaluate(onset, cycles, in.Target, policy == PolicyQuality))
	}

	if policy == PolicyQuality {
		sortByQuality(candidates)
	} else {
		sortChronologically(candidates, onset)
	}

	return Result{
		Policy:             policy,
		SleepOnsetMinutes:  onset,
		MinutesUntilTarget: until,
		BaselineCycles:     baseline,
		Candidates:         candidates,
	}, nil
}

// Timeline returns the unwrapped sleep-onset minute and the minutes from
// onset until the next occurrence of target. The latter is always in
// (0, 1440].
func Timeline(bedtime Clock, fallAsleepMinutes int, target Clock) (onset, until int) {
	onset = bedtime.Minutes() + fallAsleepMinutes
	until = target.Minutes() - onset
	for until <= 0 {
		until += MinutesPerDay
	}
	return onset, until
}

// BaselineCycles is the number of complete cycles that fit in minutes.
func BaselineCycles(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return minutes / CycleMinutes
}

// Evaluate builds the candidate for waking after the given number of cycles.
func Evaluate(onset, cycles int, target Clock, score bool) Candidate {
	sleepMinutes := cycles * CycleMinutes
	wake := ClockOf(onset + sleepMinutes)
	hours := float64(sleepMinutes) / 60

	c := Candidate{
		WakeClock:          wake,
		SleepDurationHours: hours,
		Cycles:             cycles,
		Recommended:        IsRecommended(hours),
		Stage:              StageAt(sleepMinutes % CycleMinutes),
	}
	if score {
		c.QualityScore = QualityScore(sleepMinutes, wake, target)
	}
	return c
}

func sortByQuality(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].QualityScore > candidates[j].QualityScore
	})
}

// sortChronologically orders by the unwrapped wake minute, so cross-midnight
// candidates stay in timeline order rather than clock-face order.
func sortChronologically(candidates []Candidate, onset int) {
	key := func(c Candidate) int {
		return onset + c.Cycles*CycleMinutes
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return key(candidates[i]) < key(candidates[j])
	})
}
