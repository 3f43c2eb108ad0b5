// Package inspect renders plain-text views of ECS tables and scheduler
// statistics for logs, reports and debugging sessions.
package inspect

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/plus3/sigecs/ecs"
)

// EntityInfo describes one occupied slot. Only present components are
// listed.
type EntityInfo struct {
	ID         ecs.EntityId
	Signature  ecs.Signature
	Components []string
}

// CollectEntities returns occupied slots whose signature matches filter, in
// slot order. A zero filter selects every occupied slot.
func CollectEntities(table *ecs.Table, filter ecs.Signature) []EntityInfo {
	var infos []EntityInfo
	for id, e := range table.Matching(filter) {
		sig := e.Signature()
		if sig.IsZero() {
			continue
		}

		info := EntityInfo{ID: id, Signature: sig}
		if pos, ok := e.Position(); ok {
			info.Components = append(info.Components, fmt.Sprintf("Position(%d, %d)", pos.X, pos.Y))
		}
		if vel, ok := e.Velocity(); ok {
			info.Components = append(info.Components, fmt.Sprintf("Velocity(%d, %d)", vel.X, vel.Y))
		}
		infos = append(infos, info)
	}
	return infos
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// WriteEntities writes a table of occupied slots matching filter.
func WriteEntities(w io.Writer, table *ecs.Table, filter ecs.Signature) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tSIGNATURE\tCOMPONENTS")
	for _, info := range CollectEntities(table, filter) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", info.ID, info.Signature, strings.Join(info.Components, " "))
	}
	return tw.Flush()
}

// WriteTableStats writes slot occupancy grouped by signature.
func WriteTableStats(w io.Writer, stats ecs.TableStats) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Capacity:\t%d\n", stats.Capacity)
	fmt.Fprintf(tw, "Occupied:\t%d\n", stats.OccupiedCount)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SIGNATURE\tMASK\tENTITIES")
	for _, s := range stats.SignatureBreakdown {
		fmt.Fprintf(tw, "%s\t0x%X\t%d\n", s.Signature, uint64(s.Signature), s.EntityCount)
	}
	return tw.Flush()
}

// WriteSchedulerStats writes per-system execution timings.
func WriteSchedulerStats(w io.Writer, stats *ecs.SchedulerStats) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Ticks:\t%d\n", stats.Ticks)
	fmt.Fprintf(tw, "Systems:\t%d\n", stats.SystemCount)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SYSTEM\tMASK\tRUNS\tAVG\tMIN\tMAX\tLAST")
	for _, s := range stats.Systems {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			s.Name, s.Mask, s.ExecutionCount,
			s.AvgDuration, s.MinDuration, s.MaxDuration, s.LastDuration)
	}
	return tw.Flush()
}
