package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether a caller identified by key may perform one more request.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

type Policy struct {
	RPM   int
	Burst int
}

func (p Policy) perSecond() float64 {
	rate := float64(p.RPM) / 60.0
	if rate <= 0 {
		return 1.0
	}
	return rate
}

func (p Policy) burst() int {
	if p.Burst <= 0 {
		return 1
	}
	return p.Burst
}
