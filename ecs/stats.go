package ecs

import (
	"cmp"
	"slices"
)

// TableStats summarises slot occupancy of a table.
type TableStats struct {
	Capacity           int
	OccupiedCount      int
	SignatureBreakdown []SignatureStats
}

// SignatureStats counts the slots carrying one exact signature.
type SignatureStats struct {
	Signature   Signature
	EntityCount int
}

// CollectStats gathers occupancy statistics. Empty slots are not part of the
// breakdown.
func CollectStats(table *Table) TableStats {
	stats := TableStats{
		Capacity: table.Cap(),
	}

	for _, e := range table.All() {
		sig := e.Signature()
		if sig.IsZero() {
			continue
		}
		stats.OccupiedCount++

		idx := slices.IndexFunc(stats.SignatureBreakdown, func(s SignatureStats) bool {
			return s.Signature == sig
		})
		if idx < 0 {
			stats.SignatureBreakdown = append(stats.SignatureBreakdown, SignatureStats{Signature: sig})
			idx = len(stats.SignatureBreakdown) - 1
		}
		stats.SignatureBreakdown[idx].EntityCount++
	}

	slices.SortFunc(stats.SignatureBreakdown, func(a, b SignatureStats) int {
		return cmp.Compare(a.Signature, b.Signature)
	})

	return stats
}
