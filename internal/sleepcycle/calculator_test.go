package sleepcycle

import (
	"errors"
	"reflect"
	"testing"
)

func cyclesOf(candidates []Candidate) []int {
	out := make([]int, len(candidates))
	for i, c := range candidates {
		out[i] = c.Cycles
	}
	return out
}

func wakesOf(candidates []Candidate) []Clock {
	out := make([]Clock, len(candidates))
	for i, c := range candidates {
		out[i] = c.WakeClock
	}
	return out
}

func TestCompute_EndToEndQuality(t *testing.T) {
	res, err := Compute("22:30", 15, "07:00", PolicyQuality)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SleepOnsetMinutes != 1365 {
		t.Errorf("SleepOnsetMinutes = %d, want 1365", res.SleepOnsetMinutes)
	}
	if res.MinutesUntilTarget != 495 {
		t.Errorf("MinutesUntilTarget = %d, want 495", res.MinutesUntilTarget)
	}
	if res.BaselineCycles != 5 {
		t.Errorf("BaselineCycles = %d, want 5", res.BaselineCycles)
	}

	// Cycles 5 and 6 tie at 2.70 and keep window order; 7 cycles is too long.
	want := []Candidate{
		{WakeClock: 375, SleepDurationHours: 7.5, Cycles: 5, QualityScore: 2.70, Recommended: true, Stage: StageLight},
		{WakeClock: 465, SleepDurationHours: 9.0, Cycles: 6, QualityScore: 2.70, Recommended: true, Stage: StageLight},
		{WakeClock: 555, SleepDurationHours: 10.5, Cycles: 7, QualityScore: 1.48, Recommended: false, Stage: StageLight},
	}
	if !reflect.DeepEqual(res.Candidates, want) {
		t.Fatalf("Candidates =\n%+v\nwant\n%+v", res.Candidates, want)
	}
}

func TestCompute_MidnightWraparound(t *testing.T) {
	res, err := Compute("23:30", 15, "06:00", PolicyQuality)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SleepOnsetMinutes != 1425 {
		t.Errorf("SleepOnsetMinutes = %d, want 1425", res.SleepOnsetMinutes)
	}
	if res.SleepOnset() != 1425 {
		t.Errorf("SleepOnset() = %s, want 23:45", res.SleepOnset())
	}
	if res.MinutesUntilTarget != 375 {
		t.Errorf("MinutesUntilTarget = %d, want 375", res.MinutesUntilTarget)
	}
	if res.BaselineCycles != 4 {
		t.Errorf("BaselineCycles = %d, want 4", res.BaselineCycles)
	}

	// Window is [max(5,2), min(6,7)] = 5..6, both landing the next morning.
	got := map[int]Clock{}
	for _, c := range res.Candidates {
		got[c.Cycles] = c.WakeClock
	}
	want := map[int]Clock{5: 435, 6: 525}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wake clocks by cycle = %v, want %v", got, want)
	}
}

func TestCompute_QualityOrdering(t *testing.T) {
	res, err := Compute("22:00", 15, "06:00", PolicyQuality)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Candidates) == 0 {
		t.Fatal("expected candidates")
	}

	best := res.Candidates[0]
	if best.Cycles != 5 || best.WakeClock != 345 {
		t.Fatalf("best candidate = %+v, want 5 cycles waking 05:45", best)
	}
	if best.Stage != StageLight || !best.Recommended || ClockDistance(best.WakeClock, 360) > 30 {
		t.Fatalf("best candidate should be light, in band and near target: %+v", best)
	}

	for i := 1; i < len(res.Candidates); i++ {
		if res.Candidates[i-1].QualityScore < res.Candidates[i].QualityScore {
			t.Fatalf("candidates not sorted by score: %v", res.Candidates)
		}
	}

	// Same wake clock and duration band, but 40 minutes into a cycle.
	deep := QualityScore(5*CycleMinutes+40, best.WakeClock, 360)
	if !(best.QualityScore > deep) {
		t.Fatalf("light-sleep candidate %v should outrank deep-sleep %v", best.QualityScore, deep)
	}
}

func TestCompute_Latency(t *testing.T) {
	tests := []struct {
		latency int
		wantErr bool
	}{
		{latency: 0},
		{latency: 120},
		{latency: -1, wantErr: true},
		{latency: 121, wantErr: true},
	}

	for _, tt := range tests {
		_, err := Compute("22:00", tt.latency, "06:00", PolicyQuality)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidLatency) {
				t.Errorf("latency %d: error = %v, want ErrInvalidLatency", tt.latency, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("latency %d: unexpected error %v", tt.latency, err)
		}
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	if _, err := Compute("10pm", 15, "06:00", PolicyQuality); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("bad bedtime: error = %v, want ErrInvalidTimeFormat", err)
	}
	if _, err := Compute("22:00", 15, "6", PolicyQuality); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("bad wake time: error = %v, want ErrInvalidTimeFormat", err)
	}
	if _, err := Compute("22:00", 15, "06:00", Policy("nearest")); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("bad policy: error = %v, want ErrUnknownPolicy", err)
	}
	if _, err := Calculate(Input{Bedtime: 1440, Target: 0}); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("out of range clock: error = %v, want ErrInvalidTimeFormat", err)
	}
}

func TestCalculate_EmptyPolicyDefaultsToQuality(t *testing.T) {
	res, err := Calculate(Input{Bedtime: 1350, FallAsleepMinutes: 15, Target: 420})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Policy != PolicyQuality {
		t.Errorf("Policy = %q, want quality", res.Policy)
	}
}

func TestCompute_ProximityPolicy(t *testing.T) {
	res, err := Compute("23:30", 15, "06:00", PolicyProximity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := cyclesOf(res.Candidates), []int{2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("cycles = %v, want %v", got, want)
	}
	if got, want := wakesOf(res.Candidates), []Clock{165, 255, 345, 435}; !reflect.DeepEqual(got, want) {
		t.Errorf("wake clocks = %v, want %v", got, want)
	}
	for _, c := range res.Candidates {
		if c.Scored() {
			t.Errorf("proximity candidate should not be scored: %+v", c)
		}
	}
}

func TestCompute_ProximityCrossMidnightOrder(t *testing.T) {
	// Onset 21:00, four hours to target: 22:30, 00:00 and 01:30 in that order.
	res, err := Compute("21:00", 0, "01:00", PolicyProximity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := wakesOf(res.Candidates), []Clock{1350, 0, 90}; !reflect.DeepEqual(got, want) {
		t.Fatalf("wake clocks = %v, want %v", got, want)
	}
}

func TestCompute_ProximityLongerThanADay(t *testing.T) {
	// Target equal to onset leaves a full day: 16 cycles, so 17 runs past it.
	res, err := Compute("07:00", 0, "07:00", PolicyProximity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := cyclesOf(res.Candidates), []int{14, 15, 16, 17}; !reflect.DeepEqual(got, want) {
		t.Errorf("cycles = %v, want %v", got, want)
	}
	if got, want := wakesOf(res.Candidates), []Clock{240, 330, 420, 510}; !reflect.DeepEqual(got, want) {
		t.Errorf("wake clocks = %v, want %v", got, want)
	}
}

func TestCompute_ProximityDegenerateWindow(t *testing.T) {
	// Sleep onset 06:30 with a 07:00 target leaves less than one cycle.
	res, err := Compute("06:00", 30, "07:00", PolicyProximity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BaselineCycles != 0 {
		t.Fatalf("BaselineCycles = %d, want 0", res.BaselineCycles)
	}
	if len(res.Candidates) != 0 {
		t.Fatalf("expected empty candidate list, got %v", res.Candidates)
	}
}

func TestPolicyWindow(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		baseline int
		want     []int
	}{
		{"quality baseline 5", PolicyQuality, 5, []int{5, 6, 7}},
		{"quality baseline 4", PolicyQuality, 4, []int{5, 6}},
		{"quality baseline 3", PolicyQuality, 3, []int{5}},
		{"quality baseline 9", PolicyQuality, 9, []int{7}},
		{"quality baseline 1 falls back to lower edge", PolicyQuality, 1, []int{5}},
		{"quality baseline 0 falls back to lower edge", PolicyQuality, 0, []int{5}},
		{"quality negative baseline", PolicyQuality, -3, []int{5}},
		{"quality baseline 12 falls back to upper edge", PolicyQuality, 12, []int{7}},
		{"proximity baseline 5", PolicyProximity, 5, []int{3, 4, 5, 6}},
		{"proximity baseline 3", PolicyProximity, 3, []int{1, 2, 3, 4}},
		{"proximity baseline 2", PolicyProximity, 2, []int{1, 2, 3}},
		{"proximity baseline 1", PolicyProximity, 1, []int{1, 2}},
		{"proximity baseline 0", PolicyProximity, 0, nil},
		{"proximity negative baseline", PolicyProximity, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Window(tt.baseline)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window(%d) = %v, want %v", tt.baseline, got, tt.want)
			}
		})
	}
}

func TestTimeline(t *testing.T) {
	tests := []struct {
		name      string
		bedtime   Clock
		latency   int
		target    Clock
		wantOnset int
		wantUntil int
	}{
		{"same evening target next morning", 1350, 15, 420, 1365, 495},
		{"target equal to onset is a full day", 420, 0, 420, 420, 1440},
		{"onset already past midnight", 1439, 120, 30, 1559, 1351},
		{"afternoon nap", 780, 10, 900, 790, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onset, until := Timeline(tt.bedtime, tt.latency, tt.target)
			if onset != tt.wantOnset || until != tt.wantUntil {
				t.Errorf("Timeline() = (%d, %d), want (%d, %d)", onset, until, tt.wantOnset, tt.wantUntil)
			}
		})
	}
}

func TestCompute_Properties(t *testing.T) {
	targets := []string{"00:00", "05:30", "06:00", "07:15", "12:00", "23:59"}
	latencies := []int{0, 15, 45, 120}

	for _, policy := range []Policy{PolicyQuality, PolicyProximity} {
		for h := 0; h < 24; h++ {
			bedtime := Clock(h*60 + 17).String()
			for _, target := range targets {
				for _, latency := range latencies {
					first, err := Compute(bedtime, latency, target, policy)
					if err != nil {
						t.Fatalf("Compute(%s, %d, %s, %s): %v", bedtime, latency, target, policy, err)
					}
					if first.MinutesUntilTarget <= 0 || first.MinutesUntilTarget > MinutesPerDay {
						t.Fatalf("MinutesUntilTarget out of range: %d", first.MinutesUntilTarget)
					}

					for _, c := range first.Candidates {
						if c.WakeClock < 0 || c.WakeClock >= MinutesPerDay {
							t.Fatalf("wake clock out of range: %+v", c)
						}
						if c.SleepDurationHours != float64(c.Cycles)*1.5 {
							t.Fatalf("duration %v != cycles %d * 1.5", c.SleepDurationHours, c.Cycles)
						}
						if c.Cycles < 1 {
							t.Fatalf("non-positive cycle count: %+v", c)
						}
						if policy == PolicyQuality && c.QualityScore <= 0 {
							t.Fatalf("quality candidate without score: %+v", c)
						}
					}
					if policy == PolicyQuality && len(first.Candidates) == 0 {
						t.Fatalf("quality policy returned no candidates for %s/%d/%s", bedtime, latency, target)
					}

					second, _ := Compute(bedtime, latency, target, policy)
					if !reflect.DeepEqual(first, second) {
						t.Fatalf("Compute is not idempotent for %s/%d/%s", bedtime, latency, target)
					}
				}
			}
		}
	}
}
