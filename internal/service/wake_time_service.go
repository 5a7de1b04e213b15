package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/blaisecz/sleep-calculator/internal/domain"
	"github.com/blaisecz/sleep-calculator/internal/sleepcycle"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultFallAsleepMinutes is used when neither the request nor the
// configuration supplies a latency.
const DefaultFallAsleepMinutes = 15

// WakeTimeService computes wake-up time candidates.
type WakeTimeService interface {
	// Compute evaluates a request, filling in omitted fields from defaults.
	Compute(ctx context.Context, req *domain.WakeTimesRequest) (*domain.WakeTimesResponse, error)
}

// Defaults are applied to fields a request leaves empty.
type Defaults struct {
	Policy     sleepcycle.Policy
	TimeFormat sleepcycle.TimeFormat
	// Zero, negative or above 120 falls back to DefaultFallAsleepMinutes.
	FallAsleepMinutes int
	// Debug logs every calculation.
	Debug bool
}

type wakeTimeService struct {
	defaults Defaults
}

// NewWakeTimeService creates a new WakeTimeService.
func NewWakeTimeService(defaults Defaults) WakeTimeService {
	if defaults.Policy == "" {
		defaults.Policy = sleepcycle.PolicyQuality
	}
	if defaults.TimeFormat == "" {
		defaults.TimeFormat = sleepcycle.Format24h
	}
	if defaults.FallAsleepMinutes <= 0 || defaults.FallAsleepMinutes > sleepcycle.MaxFallAsleepMinutes {
		defaults.FallAsleepMinutes = DefaultFallAsleepMinutes
	}
	return &wakeTimeService{defaults: defaults}
}

func (s *wakeTimeService) Compute(ctx context.Context, req *domain.WakeTimesRequest) (*domain.WakeTimesResponse, error) {
	tracer := otel.Tracer("sleep-calculator/wake-times")
	_, span := tracer.Start(ctx, "WakeTimeService.Compute")
	defer span.End()

	// Resolve defaults
	latency := s.defaults.FallAsleepMinutes
	if req.FallAsleepMinutes != nil {
		latency = *req.FallAsleepMinutes
	}

	policy := s.defaults.Policy
	if req.Policy != "" {
		p, err := sleepcycle.ParsePolicy(req.Policy)
		if err != nil {
			return nil, recordError(span, &sleepcycle.InputError{Field: sleepcycle.FieldPolicy, Err: err})
		}
		policy = p
	}

	format := s.defaults.TimeFormat
	if req.TimeFormat != "" {
		f, err := sleepcycle.ParseTimeFormat(req.TimeFormat)
		if err != nil {
			return nil, recordError(span, &sleepcycle.InputError{Field: sleepcycle.FieldTimeFormat, Err: err})
		}
		format = f
	}

	span.SetAttributes(
		attribute.String("wake.bedtime", req.Bedtime),
		attribute.String("wake.target", req.WakeTime),
		attribute.Int("wake.fall_asleep_minutes", latency),
		attribute.String("wake.policy", string(policy)),
	)

	bedtime, err := sleepcycle.ParseClock(req.Bedtime)
	if err != nil {
		return nil, recordError(span, &sleepcycle.InputError{Field: sleepcycle.FieldBedtime, Err: err})
	}
	target, err := sleepcycle.ParseClock(req.WakeTime)
	if err != nil {
		return nil, recordError(span, &sleepcycle.InputError{Field: sleepcycle.FieldWakeTime, Err: err})
	}

	result, err := sleepcycle.Calculate(sleepcycle.Input{
		Bedtime:           bedtime,
		FallAsleepMinutes: latency,
		Target:            target,
		Policy:            policy,
	})
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(
		attribute.Int("wake.baseline_cycles", result.BaselineCycles),
		attribute.Int("wake.candidates", len(result.Candidates)),
	)

	response := domain.NewWakeTimesResponse(result, bedtime, target, latency, format)

	if s.defaults.Debug {
		if out, err := json.Marshal(response); err == nil {
			log.Printf("[wake-times] %s", out)
		}
	}

	return response, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
