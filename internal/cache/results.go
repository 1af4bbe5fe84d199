package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sigscan/sigscan/internal/types"
)

// ScanResults stores the findings and metadata from the last completed scan,
// used by the interactive browser to open without rescanning.
type ScanResults struct {
	Findings  []types.Finding `json:"findings"`
	Timestamp time.Time       `json:"timestamp"`
	Root      string          `json:"root"`
	Count     int             `json:"count"`
}

func resultsPath(root string) string {
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "sigscan_last_scan.json")
	}
	return filepath.Join(root, ".sigscan_last_scan.json")
}

func SaveResults(root string, findings []types.Finding) error {
	results := ScanResults{
		Findings:  findings,
		Timestamp: time.Now(),
		Root:      root,
		Count:     len(findings),
	}
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(resultsPath(root), b, 0644)
}

func LoadResults(root string) (ScanResults, error) {
	var results ScanResults
	b, err := os.ReadFile(resultsPath(root))
	if err != nil {
		return results, err
	}
	if err := json.Unmarshal(b, &results); err != nil {
		return results, err
	}
	return results, nil
}
