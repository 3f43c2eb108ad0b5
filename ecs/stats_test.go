package ecs

import (
	"testing"
	"time"
)

func TestCollectStats(t *testing.T) {
	table := NewTable(8)

	stats := CollectStats(table)
	if stats.Capacity != 8 {
		t.Errorf("expected capacity 8, got %d", stats.Capacity)
	}
	if stats.OccupiedCount != 0 {
		t.Errorf("expected 0 occupied slots, got %d", stats.OccupiedCount)
	}
	if len(stats.SignatureBreakdown) != 0 {
		t.Errorf("expected empty breakdown, got %+v", stats.SignatureBreakdown)
	}

	table.Entity(0).AddPosition(0, 0)
	table.Entity(0).AddVelocity(1, 1)
	table.Entity(3).AddPosition(0, 0)
	table.Entity(5).AddPosition(0, 0)
	table.Entity(6).AddVelocity(0, 0)

	stats = CollectStats(table)

	if stats.OccupiedCount != 4 {
		t.Errorf("expected 4 occupied slots, got %d", stats.OccupiedCount)
	}

	want := []SignatureStats{
		{Signature: PositionFlag, EntityCount: 2},
		{Signature: VelocityFlag, EntityCount: 1},
		{Signature: PositionFlag | VelocityFlag, EntityCount: 1},
	}
	if len(stats.SignatureBreakdown) != len(want) {
		t.Fatalf("expected breakdown %+v, got %+v", want, stats.SignatureBreakdown)
	}
	for i := range want {
		if stats.SignatureBreakdown[i] != want[i] {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, stats.SignatureBreakdown[i], want[i])
		}
	}
}

type TestSystem struct {
	Query
	executeCount int
	sleepDur     time.Duration
}

func (s *TestSystem) Tick(table *Table) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerStats(t *testing.T) {
	scheduler := NewScheduler(NewTable(1))

	stats := scheduler.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 total executions, got %d", stats.TotalExecutions)
	}

	sys1 := &TestSystem{Query: NewQuery(PositionFlag), sleepDur: 1 * time.Millisecond}
	sys2 := &TestSystem{Query: NewQuery(VelocityFlag), sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	stats = scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any tick, got %v", stats.Systems[0].MinDuration)
	}

	scheduler.Once()
	scheduler.Once()
	scheduler.Once()

	stats = scheduler.GetStats()

	if stats.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", stats.Ticks)
	}

	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 runs), got %d", stats.TotalExecutions)
	}

	if len(stats.Systems) != 2 {
		t.Fatalf("expected 2 system stats, got %d", len(stats.Systems))
	}

	if stats.Systems[0].Mask != PositionFlag || stats.Systems[1].Mask != VelocityFlag {
		t.Errorf("unexpected masks %v %v", stats.Systems[0].Mask, stats.Systems[1].Mask)
	}

	for _, sysStats := range stats.Systems {
		if sysStats.Name != "TestSystem" {
			t.Errorf("expected system name 'TestSystem', got '%s'", sysStats.Name)
		}

		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}

		if sysStats.MinDuration == 0 {
			t.Errorf("expected non-zero min duration")
		}

		if sysStats.LastDuration == 0 {
			t.Errorf("expected non-zero last duration")
		}

		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}

		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	if sys1.executeCount != 3 {
		t.Errorf("expected sys1 to execute 3 times, got %d", sys1.executeCount)
	}

	if sys2.executeCount != 3 {
		t.Errorf("expected sys2 to execute 3 times, got %d", sys2.executeCount)
	}
}
