package telemetry

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-box ingest rate limiters: box id -> limiter
type RateLimiterStore struct {
	limiters     map[int64]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[int64]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(boxID int64) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[boxID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[boxID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(boxID int64, boxRate rate.Limit, boxBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[boxID] = rate.NewLimiter(boxRate, boxBurst)
}
