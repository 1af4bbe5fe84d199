package types

import (
	"fmt"
	"strings"
)

// Severity is the risk level of a finding. The four levels are totally
// ordered: critical is the most severe and low the least.
type Severity string

const (
	SevCritical Severity = "critical"
	SevHigh     Severity = "high"
	SevMedium   Severity = "medium"
	SevLow      Severity = "low"
)

// Rank returns the ordering position of a severity: critical=0, high=1,
// medium=2, low=3. Unknown severities rank after low.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 0
	case SevHigh:
		return 1
	case SevMedium:
		return 2
	case SevLow:
		return 3
	default:
		return 4
	}
}

func (s Severity) String() string { return string(s) }

// ParseSeverity normalizes a user-supplied severity name.
func ParseSeverity(raw string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "critical":
		return SevCritical, nil
	case "high":
		return SevHigh, nil
	case "medium", "med":
		return SevMedium, nil
	case "low", "":
		return SevLow, nil
	}
	return "", fmt.Errorf("unknown severity %q (want critical|high|medium|low)", raw)
}

// Severities lists all levels from most to least severe.
func Severities() []Severity {
	return []Severity{SevCritical, SevHigh, SevMedium, SevLow}
}

// Finding describes one signature match against one source line. Severity,
// category, and message are copied from the matched rule at match time, never
// re-derived later. Findings are immutable once created.
type Finding struct {
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	File     string   `json:"file"` // path relative to the scan root
	Line     int      `json:"line"` // 1-based
	Message  string   `json:"message"`
	Snippet  string   `json:"snippet"` // offending line, truncated
}
