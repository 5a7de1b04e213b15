package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/blaisecz/sleep-calculator/internal/domain"
	"github.com/maypok86/otter/v2"
)

// cachedWakeTimeService memoizes responses of a WakeTimeService. Results
// depend only on the request and the fixed defaults, so entries never expire;
// the cache is bounded by size alone.
type cachedWakeTimeService struct {
	next  WakeTimeService
	cache *otter.Cache[string, domain.WakeTimesResponse]
}

// NewCachedWakeTimeService wraps next with an in-memory cache holding up to
// size responses. A size of zero or less returns next unchanged.
func NewCachedWakeTimeService(next WakeTimeService, size int) WakeTimeService {
	if size <= 0 {
		return next
	}
	return &cachedWakeTimeService{
		next: next,
		cache: otter.Must(&otter.Options[string, domain.WakeTimesResponse]{
			MaximumSize: size,
		}),
	}
}

func (s *cachedWakeTimeService) Compute(ctx context.Context, req *domain.WakeTimesRequest) (*domain.WakeTimesResponse, error) {
	key := cacheKey(req)
	if resp, ok := s.cache.GetIfPresent(key); ok {
		return &resp, nil
	}

	resp, err := s.next.Compute(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, *resp)
	return resp, nil
}

func cacheKey(req *domain.WakeTimesRequest) string {
	latency := "-"
	if req.FallAsleepMinutes != nil {
		latency = strconv.Itoa(*req.FallAsleepMinutes)
	}
	return strings.Join([]string{
		strings.TrimSpace(req.Bedtime),
		latency,
		strings.TrimSpace(req.WakeTime),
		req.Policy,
		req.TimeFormat,
	}, "|")
}
