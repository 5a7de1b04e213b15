package sleepcycle

import "math"

// CycleMinutes is the length of one sleep cycle.
const CycleMinutes = 90

// Stage boundaries within a cycle, in minutes from its start.
const (
	lightStageMinutes = 25
	deepStageMinutes  = 35
)

// Recommended total sleep, in hours, inclusive at both ends.
const (
	MinRecommendedHours = 7.0
	MaxRecommendedHours = 9.0
)

// Multipliers applied by QualityScore.
const (
	factorLightWake       = 1.5
	factorDeepWake        = 0.5
	factorREMWake         = 0.7
	factorCompleteCycle   = 1.3
	factorOptimalDuration = 1.2
	factorTooShort        = 0.7
	factorTooLong         = 0.8
	factorEarlyMorning    = 1.1
	factorConsistentWake  = 1.2
)

const (
	earlyMorningFromHour = 5.5
	earlyMorningToHour   = 8.5

	completeCycleSlack   = 5
	consistentWakeWithin = 30
	proximityTaper       = 3 * 60
)

// Stage is the sleep stage a sleeper is in at the moment of waking.
type Stage string

const (
	StageLight Stage = "light"
	StageDeep  Stage = "deep"
	StageREM   Stage = "rem"
)

// StageAt classifies a position within a cycle. Up to 25 minutes is light
// sleep, up to 60 deep sleep, anything later REM.
func StageAt(minutesIntoCycle int) Stage {
	switch {
	case minutesIntoCycle <= lightStageMinutes:
		return StageLight
	case minutesIntoCycle <= lightStageMinutes+deepStageMinutes:
		return StageDeep
	default:
		return StageREM
	}
}

func (s Stage) Description() string {
	switch s {
	case StageLight:
		return "Light sleep stage - Easiest to wake up"
	case StageDeep:
		return "Deep sleep stage - Harder to wake up"
	default:
		return "REM sleep stage - May feel groggy"
	}
}

func (s Stage) factor() float64 {
	switch s {
	case StageLight:
		return factorLightWake
	case StageDeep:
		return factorDeepWake
	default:
		return factorREMWake
	}
}

// IsRecommended reports whether a sleep duration falls in [7, 9] hours.
func IsRecommended(hours float64) bool {
	return hours >= MinRecommendedHours && hours <= MaxRecommendedHours
}

// durationFactor applies exactly one of the three bands, in order.
func durationFactor(hours float64) float64 {
	if hours < MinRecommendedHours {
		return factorTooShort
	} else if hours > MaxRecommendedHours {
		return factorTooLong
	}
	return factorOptimalDuration
}

// ClockDistance is the shorter way round the clock face between a and b,
// in minutes, at most 720.
func ClockDistance(a, b Clock) int {
	d := a.Minutes() - b.Minutes()
	if d < 0 {
		d = -d
	}
	if d > MinutesPerDay/2 {
		d = MinutesPerDay - d
	}
	return d
}

// QualityScore estimates how pleasant it is to wake at wake after
// sleepMinutes of sleep when the sleeper was aiming for target. The result
// is rounded to two decimals.
func QualityScore(sleepMinutes int, wake, target Clock) float64 {
	score := 1.0

	into := sleepMinutes % CycleMinutes
	score *= StageAt(into).factor()

	toCycleEnd := CycleMinutes - into
	if toCycleEnd < completeCycleSlack || into < completeCycleSlack {
		score *= factorCompleteCycle
	}

	score *= durationFactor(float64(sleepMinutes) / 60)

	wakeHour := float64(wake.Minutes()) / 60
	if wakeHour >= earlyMorningFromHour && wakeHour <= earlyMorningToHour {
		score *= factorEarlyMorning
	}

	distance := ClockDistance(wake, target)
	if distance <= consistentWakeWithin {
		score *= factorConsistentWake
	}
	proximity := math.Max(0, 1-float64(distance)/proximityTaper)
	score *= 0.9 + 0.2*proximity

	return math.Round(score*100) / 100
}

// Ease is a coarse wake-up difficulty rating derived from a quality score.
type Ease struct {
	Stars int
	Label string
}

// EaseFor maps a quality score onto five tiers, five stars being easiest.
func EaseFor(score float64) Ease {
	switch {
	case score >= 1.3:
		return Ease{Stars: 5, Label: "Very easy to wake up"}
	case score >= 1.1:
		return Ease{Stars: 4, Label: "Easy to wake up"}
	case score >= 0.9:
		return Ease{Stars: 3, Label: "Moderate"}
	case score >= 0.7:
		return Ease{Stars: 2, Label: "Difficult"}
	default:
		return Ease{Stars: 1, Label: "Very difficult"}
	}
}
