package handler

import (
	"context"

	"github.com/blaisecz/sleep-calculator/internal/domain"
)

// MockWakeTimeService is a mock implementation of WakeTimeService
type MockWakeTimeService struct {
	computeFunc func(ctx context.Context, req *domain.WakeTimesRequest) (*domain.WakeTimesResponse, error)
	lastRequest *domain.WakeTimesRequest
}

func (m *MockWakeTimeService) Compute(ctx context.Context, req *domain.WakeTimesRequest) (*domain.WakeTimesResponse, error) {
	m.lastRequest = req
	if m.computeFunc != nil {
		return m.computeFunc(ctx, req)
	}
	return &domain.WakeTimesResponse{
		Policy:     "quality",
		TimeFormat: "24h",
		Bedtime:    req.Bedtime,
		Candidates: []domain.WakeTimeCandidate{},
	}, nil
}
