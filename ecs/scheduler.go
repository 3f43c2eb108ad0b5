package ecs

import (
	"context"
	"errors"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// ErrTickLimit is returned by RunUntil when the tick budget runs out before
// the stop condition holds.
var ErrTickLimit = errors.New("ecs: tick limit reached")

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Mask           Signature
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in order against one table.
// It is not safe for concurrent use.
type Scheduler struct {
	table       *Table
	commands    *Commands
	logger      *zap.Logger
	systems     []System
	systemStats []*systemStatsInternal
	ticks       uint64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger used for tick and lifecycle messages.
func WithLogger(logger *zap.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler creates a new scheduler for the given table.
func NewScheduler(table *Table, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		table:    table,
		commands: NewCommands(),
		logger:   zap.NewNop(),
		systems:  make([]System, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register appends a system. Systems tick in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	systemName := systemType.Name()

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName,
		minDuration: time.Duration(1<<63 - 1),
	})

	s.logger.Debug("registered system",
		zap.String("system", systemName),
		zap.Stringer("mask", system.Mask()),
	)
}

// Table returns the table the scheduler ticks.
func (s *Scheduler) Table() *Table {
	return s.table
}

// Commands returns the buffer flushed at the end of every tick.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Once runs every system once, then flushes queued commands.
func (s *Scheduler) Once() {
	for i, system := range s.systems {
		start := time.Now()
		system.Tick(s.table)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.commands.Flush(s.table)
	s.ticks++

	if ce := s.logger.Check(zap.DebugLevel, "tick complete"); ce != nil {
		ce.Write(zap.Uint64("tick", s.ticks))
	}
}

// Run ticks repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once()
		}
	}
}

// RunUntil ticks back to back until stop reports true after a tick, and
// returns the number of ticks run by this call. A maxTicks of zero or less
// means no limit.
func (s *Scheduler) RunUntil(ctx context.Context, stop func() bool, maxTicks int) (int, error) {
	ran := 0
	for {
		if err := ctx.Err(); err != nil {
			return ran, err
		}
		if maxTicks > 0 && ran >= maxTicks {
			s.logger.Warn("tick limit reached", zap.Int("max_ticks", maxTicks))
			return ran, ErrTickLimit
		}

		s.Once()
		ran++

		if stop() {
			s.logger.Info("stop condition met", zap.Uint64("tick", s.ticks))
			return ran, nil
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Mask:           s.systems[i].Mask(),
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
