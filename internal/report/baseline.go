package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sigscan/sigscan/internal/types"
)

// Baseline is a set of accepted finding keys. Baselined findings are hidden
// from reports; the verdict is still computed from the full unfiltered set.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(f, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[key(f)] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0644)
}

// FilterNewFindings drops findings already present in the baseline.
func FilterNewFindings(findings []types.Finding, base Baseline) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[key(f)] {
			out = append(out, f)
		}
	}
	return out
}

// key intentionally omits the line number so a baselined finding survives
// unrelated edits that shift it up or down.
func key(f types.Finding) string {
	return fmt.Sprintf("%s|%s|%s", f.File, f.Category, f.Snippet)
}
