package object

import (
	"context"
	"time"
)

// LoopStats provides statistics about loop execution.
type LoopStats struct {
	TickCount int64
	Phases    []PhaseStats
}

// PhaseStats provides timing statistics for a single per-tick step.
type PhaseStats struct {
	Name          string
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type phaseStatsInternal struct {
	name          string
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (p *phaseStatsInternal) record(d time.Duration) {
	p.lastDuration = d
	p.totalDuration += d
	if d < p.minDuration {
		p.minDuration = d
	}
	if d > p.maxDuration {
		p.maxDuration = d
	}
}

const (
	phaseReclaim = iota
	phasePreUpdate
	phaseUpdate
	phasePostUpdate
	phaseCount
)

// Loop is the controlling per-tick driver for a Manager. Each tick first runs
// the manager's reclamation pass, then drives PreUpdate, Update and
// PostUpdate across every object that is still live and active.
type Loop struct {
	manager *Manager
	ticks   int64
	stats   [phaseCount]*phaseStatsInternal
}

// NewLoop creates a loop driving the given manager.
func NewLoop(manager *Manager) *Loop {
	l := &Loop{manager: manager}
	for i, name := range [phaseCount]string{"Reclaim", "PreUpdate", "Update", "PostUpdate"} {
		l.stats[i] = &phaseStatsInternal{
			name:        name,
			minDuration: time.Duration(1<<63 - 1),
		}
	}
	return l
}

// Once runs a single tick: reclamation, then the three phases for each
// object in this tick's live snapshot. Objects generated by hooks mid-tick
// are picked up next tick; objects deactivated mid-tick no-op their
// remaining phases and are reclaimed next tick.
func (l *Loop) Once() {
	l.ticks++

	start := time.Now()
	l.manager.Update()
	l.stats[phaseReclaim].record(time.Since(start))

	var pre, upd, post time.Duration
	for _, obj := range l.manager.Objects() {
		if !obj.IsActive() {
			continue
		}
		start = time.Now()
		obj.PreUpdate()
		pre += time.Since(start)

		start = time.Now()
		obj.Update()
		upd += time.Since(start)

		start = time.Now()
		obj.PostUpdate()
		post += time.Since(start)
	}
	l.stats[phasePreUpdate].record(pre)
	l.stats[phaseUpdate].record(upd)
	l.stats[phasePostUpdate].record(post)
}

// Run ticks the loop at the given interval until the context is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Once()
		}
	}
}

// GetStats returns statistics about loop execution.
func (l *Loop) GetStats() *LoopStats {
	stats := &LoopStats{
		TickCount: l.ticks,
		Phases:    make([]PhaseStats, phaseCount),
	}

	for i, internal := range l.stats {
		avgDuration := time.Duration(0)
		if l.ticks > 0 {
			avgDuration = internal.totalDuration / time.Duration(l.ticks)
		}

		stats.Phases[i] = PhaseStats{
			Name:          internal.name,
			MinDuration:   internal.minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avgDuration,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
	}

	return stats
}
