package main

import (
	"bytes"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/sigecs/ecs"
	"github.com/plus3/sigecs/ecs/inspect"
)

// Report collects the outcome of one stress run.
type Report struct {
	Duration time.Duration
	Capacity int
	Entities int
	Spatial  bool

	TotalUpdates   int64
	CollisionTicks int64
	TotalTime      time.Duration
	TickTime       TickTimes
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	Table     *ecs.Table
	Scheduler *ecs.SchedulerStats
}

// TickTimes holds the wall time of every scheduler tick and the summary
// computed from it by Summarize.
type TickTimes struct {
	Samples []time.Duration

	Min, Max, Avg time.Duration
	P50, P99      time.Duration
}

// Record appends one tick duration.
func (t *TickTimes) Record(d time.Duration) {
	t.Samples = append(t.Samples, d)
}

// Summarize sorts the samples in place and fills in the summary fields.
func (t *TickTimes) Summarize() {
	n := len(t.Samples)
	if n == 0 {
		return
	}

	slices.Sort(t.Samples)

	var total time.Duration
	for _, d := range t.Samples {
		total += d
	}
	t.Min = t.Samples[0]
	t.Max = t.Samples[n-1]
	t.Avg = total / time.Duration(n)
	t.P50 = t.Samples[n/2]
	t.P99 = t.Samples[(n*99)/100]
}

// TicksPerSecond is the sustained tick rate over the whole run.
func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalUpdates) / r.TotalTime.Seconds()
}

// HeapDelta is the allocated heap growth over the run; it can be negative.
func (r *Report) HeapDelta() int64 {
	return int64(r.MemStatsEnd.HeapAlloc) - int64(r.MemStatsStart.HeapAlloc)
}

// AllocatedDuringRun is the cumulative bytes allocated while ticking.
func (r *Report) AllocatedDuringRun() uint64 {
	return r.MemStatsEnd.TotalAlloc - r.MemStatsStart.TotalAlloc
}

// GCCycles is the number of collections completed during the run.
func (r *Report) GCCycles() uint32 {
	return r.MemStatsEnd.NumGC - r.MemStatsStart.NumGC
}

// GCPause is the stop-the-world time spent during the run.
func (r *Report) GCPause() time.Duration {
	return time.Duration(r.MemStatsEnd.PauseTotalNs - r.MemStatsStart.PauseTotalNs)
}

func render(write func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Occupancy renders slot usage of the final table.
func (r *Report) Occupancy() (string, error) {
	if r.Table == nil {
		return "", nil
	}
	return render(func(w io.Writer) error {
		return inspect.WriteTableStats(w, ecs.CollectStats(r.Table))
	})
}

// SystemTimings renders per-system scheduler statistics.
func (r *Report) SystemTimings() (string, error) {
	if r.Scheduler == nil {
		return "", nil
	}
	return render(func(w io.Writer) error {
		return inspect.WriteSchedulerStats(w, r.Scheduler)
	})
}

const stressTemplate = `
# Collision Stress Report

## Setup
- **Run Duration:** {{.Duration}}
- **Slots / Populated:** {{.Capacity}} / {{.Entities}}
- **Collision Scan:** {{if .Spatial}}spatial hash{{else}}pairwise{{end}}

## Throughput
- **Ticks:** {{.TotalUpdates}} in {{.TotalTime}} ({{printf "%.1f" .TicksPerSecond}} ticks/s)
- **Ticks With Collision:** {{.CollisionTicks}}
- **Tick Time:** avg {{.TickTime.Avg}}, p50 {{.TickTime.P50}}, p99 {{.TickTime.P99}}, min {{.TickTime.Min}}, max {{.TickTime.Max}}

## Systems
{{.SystemTimings}}
## Occupancy
{{.Occupancy}}
## Memory
- **Heap Growth:** {{.HeapDelta}} bytes
- **Allocated While Ticking:** {{.AllocatedDuringRun}} bytes
- **GC Cycles:** {{.GCCycles}}
{{- if .GCPauseMetrics}}
- **GC Pause:** {{.GCPause}}
{{- end}}
`

var reportTmpl = template.Must(template.New("stress").Parse(stressTemplate))

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
