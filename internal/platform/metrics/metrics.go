package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps process-lifetime counters. The zero value is ready to use.
type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	serverErrors    atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64
	calculations    atomic.Uint64
	rejected        atomic.Uint64
	bracketRejected atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.totalRequests.Add(1)
	switch {
	case status == 429:
		c.rateLimited.Add(1)
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(max(duration.Milliseconds(), 0)))
}

// RecordCalculation counts one calculator outcome.
func (c *Collector) RecordCalculation(ok, bracketFailure bool) {
	if c == nil {
		return
	}
	switch {
	case ok:
		c.calculations.Add(1)
	case bracketFailure:
		c.bracketRejected.Add(1)
	default:
		c.rejected.Add(1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	if c == nil {
		c = &Collector{}
	}
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":           total,
		"clientErrorsTotal":       c.clientErrors.Load(),
		"serverErrorsTotal":       c.serverErrors.Load(),
		"rateLimitedTotal":        c.rateLimited.Load(),
		"avgDurationMs":           avg,
		"totalDurationMs":         totalMs,
		"calculationsTotal":       c.calculations.Load(),
		"validationRejectedTotal": c.rejected.Load(),
		"bracketRejectedTotal":    c.bracketRejected.Load(),
	}
}
