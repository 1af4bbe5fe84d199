package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sigscan/sigscan/internal/engine"
	"github.com/sigscan/sigscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding
type Result = engine.Result
type Severity = types.Severity

const (
	SevCritical = types.SevCritical
	SevHigh     = types.SevHigh
	SevMedium   = types.SevMedium
	SevLow      = types.SevLow
)

// Scan is the stable entrypoint for other programs. It returns the full
// ordered finding list for the configured root.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and returns findings along with totals, counts,
// and the pass/fail verdict.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// RuleIDs returns the IDs of the built-in signature catalog, in order.
func RuleIDs() []string { return engine.RuleIDs() }

// MarshalFindings writes findings to w as indented JSON. A nil slice encodes
// as [] rather than null so pipeline consumers always see an array.
func MarshalFindings(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(findings); err != nil {
		return fmt.Errorf("encode findings: %w", err)
	}
	return nil
}

// UnmarshalFindings is the inverse of MarshalFindings, for ingesting
// previously exported scans.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var findings []Finding
	if err := json.NewDecoder(r).Decode(&findings); err != nil {
		return nil, fmt.Errorf("decode findings: %w", err)
	}
	return findings, nil
}
