package report

import (
	"sort"

	"github.com/sigscan/sigscan/internal/types"
)

// Filter keeps findings at or above the severity floor. Lowering the floor
// only widens what is displayed; it never affects the verdict, which is
// always computed from the full unfiltered set.
func Filter(findings []types.Finding, floor types.Severity) []types.Finding {
	max := floor.Rank()
	var out []types.Finding
	for _, f := range findings {
		if f.Severity.Rank() <= max {
			out = append(out, f)
		}
	}
	return out
}

// SortBySeverity returns a copy stable-sorted by severity rank ascending
// (critical first), preserving discovery order within a rank.
func SortBySeverity(findings []types.Finding) []types.Finding {
	out := make([]types.Finding, len(findings))
	copy(out, findings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

// Totals tallies findings per severity.
func Totals(findings []types.Finding) map[types.Severity]int {
	totals := map[types.Severity]int{}
	for _, f := range findings {
		totals[f.Severity]++
	}
	return totals
}

// ShouldFail reports the scan verdict: failure iff at least one critical
// finding exists. High/medium/low findings are advisory.
func ShouldFail(findings []types.Finding) bool {
	for _, f := range findings {
		if f.Severity == types.SevCritical {
			return true
		}
	}
	return false
}
