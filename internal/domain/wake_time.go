package domain

import (
	"math"

	"github.com/blaisecz/sleep-calculator/internal/sleepcycle"
)

// WakeTimesRequest is the request body for computing wake-up times.
// @Description Bedtime, latency and target wake-up time for a cycle calculation.
type WakeTimesRequest struct {
	// Time you go to bed (HH:MM, 24-hour)
	Bedtime string `json:"bedtime" validate:"required,clock" example:"22:30"`
	// Minutes it usually takes to fall asleep (defaults to 15)
	FallAsleepMinutes *int `json:"fall_asleep_minutes,omitempty" validate:"omitempty,min=0,max=120" example:"15" minimum:"0" maximum:"120"`
	// Target wake-up time (HH:MM, 24-hour)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
	// Window policy: quality (ranked by score) or proximity (chronological)
	Policy string `json:"policy,omitempty" validate:"omitempty,oneof=quality proximity" example:"quality" enums:"quality,proximity"`
	// Display format for returned times
	TimeFormat string `json:"time_format,omitempty" validate:"omitempty,oneof=12h 24h" example:"24h" enums:"12h,24h"`
}

// WakeEaseResponse rates how easy it should be to get up.
// @Description Five-tier wake-up ease rating.
type WakeEaseResponse struct {
	// 1 (very difficult) to 5 (very easy)
	Stars int `json:"stars" example:"5"`
	// Human readable rating
	Label string `json:"label" example:"Very easy to wake up"`
}

// WakeTimeCandidate is one suggested wake-up time.
// @Description Wake-up time aligned to the end of a sleep cycle.
type WakeTimeCandidate struct {
	// Wake-up time in the requested format
	WakeTime string `json:"wake_time" example:"06:15"`
	// Wake-up time as minutes after midnight
	WakeMinutes int `json:"wake_minutes" example:"375"`
	// Hours of sleep
	SleepDurationHours float64 `json:"sleep_duration_hours" example:"7.5"`
	// Complete sleep cycles
	Cycles int `json:"cycles" example:"5"`
	// Estimated quality score (quality policy only)
	QualityScore float64 `json:"quality_score,omitempty" example:"2.7"`
	// Quality score as a percentage (quality policy only)
	QualityPercent int `json:"quality_percent,omitempty" example:"270"`
	// True when the duration is within 7-9 hours
	Recommended bool `json:"recommended" example:"true"`
	// Sleep stage at wake-up: light, deep or rem
	SleepStage sleepcycle.Stage `json:"sleep_stage" example:"light" enums:"light,deep,rem"`
	// Description of the sleep stage
	StageDescription string `json:"stage_description" example:"Light sleep stage - Easiest to wake up"`
	// Wake-up ease (quality policy only)
	WakeEase *WakeEaseResponse `json:"wake_ease,omitempty"`
}

// WakeTimesResponse is the response body for wake-time endpoints.
// @Description Ordered wake-up candidates and the timeline they were derived from.
type WakeTimesResponse struct {
	// Policy used to build and order candidates
	Policy sleepcycle.Policy `json:"policy" example:"quality"`
	// Format of all times in this response
	TimeFormat sleepcycle.TimeFormat `json:"time_format" example:"24h"`
	// Bedtime as given
	Bedtime string `json:"bedtime" example:"22:30"`
	// Latency used for the calculation
	FallAsleepMinutes int `json:"fall_asleep_minutes" example:"15"`
	// Time sleep is expected to begin
	SleepOnset string `json:"sleep_onset" example:"22:45"`
	// Target wake-up time
	TargetWakeTime string `json:"target_wake_time" example:"07:00"`
	// Minutes from sleep onset to the target
	MinutesUntilTarget int `json:"minutes_until_target" example:"495"`
	// Complete cycles that fit before the target
	BaselineCycles int `json:"baseline_cycles" example:"5"`
	// Candidates in preference order (may be empty under the proximity policy)
	Candidates []WakeTimeCandidate `json:"candidates"`
	// Trace ID of the calculation, when tracing is enabled
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// NewWakeTimesResponse renders a calculation result for display.
func NewWakeTimesResponse(res sleepcycle.Result, bedtime, target sleepcycle.Clock, fallAsleepMinutes int, format sleepcycle.TimeFormat) *WakeTimesResponse {
	resp := &WakeTimesResponse{
		Policy:             res.Policy,
		TimeFormat:         format,
		Bedtime:            bedtime.Format(format),
		FallAsleepMinutes:  fallAsleepMinutes,
		SleepOnset:         res.SleepOnset().Format(format),
		TargetWakeTime:     target.Format(format),
		MinutesUntilTarget: res.MinutesUntilTarget,
		BaselineCycles:     res.BaselineCycles,
		Candidates:         make([]WakeTimeCandidate, len(res.Candidates)),
	}
	for i, c := range res.Candidates {
		resp.Candidates[i] = NewWakeTimeCandidate(c, format)
	}
	return resp
}

func NewWakeTimeCandidate(c sleepcycle.Candidate, format sleepcycle.TimeFormat) WakeTimeCandidate {
	out := WakeTimeCandidate{
		WakeTime:           c.WakeClock.Format(format),
		WakeMinutes:        c.WakeClock.Minutes(),
		SleepDurationHours: c.SleepDurationHours,
		Cycles:             c.Cycles,
		Recommended:        c.Recommended,
		SleepStage:         c.Stage,
		StageDescription:   c.Stage.Description(),
	}

	if c.Scored() {
		ease := sleepcycle.EaseFor(c.QualityScore)
		out.QualityScore = c.QualityScore
		out.QualityPercent = int(math.Round(c.QualityScore * 100))
		out.WakeEase = &WakeEaseResponse{Stars: ease.Stars, Label: ease.Label}
	}
	return out
}
